package main

import (
	"github.com/spf13/cobra"

	"github.com/oceantrace/fieldsample"
)

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number",
	Long:              "version prints the version number of this build of fieldsample.",
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fieldsample v%s\n", fieldsample.Version)
	},
}
