// Command fieldsample is a command-line front end for the fieldsample
// field-sampling core.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	rootCmd.AddCommand(sampleCmd, gridInfoCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("fieldsample: command failed")
		os.Exit(1)
	}
}
