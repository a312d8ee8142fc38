package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd is the main command. Subcommands are attached in main.
var rootCmd = &cobra.Command{
	Use:   "fieldsample",
	Short: "Sample gridded scalar fields at particle positions.",
	Long: `fieldsample is a command-line front end for the fieldsample field-sampling
core. It loads a grid and field from a NetCDF file described by a TOML run
configuration and reports interpolated values at the requested points.

Use the subcommands below to run a sampling pass or inspect a grid's extents.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
