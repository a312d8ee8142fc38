package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oceantrace/fieldsample"
	"github.com/oceantrace/fieldsample/gridio"
)

var sampleConfigPath string
var sampleFieldOverride string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample a field at the points listed in a run configuration.",
	Long: `sample loads the grid and field named in a TOML run configuration and
reports the interpolated value at each configured point, in order, one per
line.`,
	DisableAutoGenTag: true,
	RunE:              runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleConfigPath, "config", "c", "", "path to a TOML run configuration (required)")
	sampleCmd.Flags().StringVar(&sampleFieldOverride, "field", "", "override the run configuration's field_var")
	sampleCmd.MarkFlagRequired("config")
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(sampleConfigPath)
	if err != nil {
		return err
	}
	fieldVar := cfg.FieldVar
	if sampleFieldOverride != "" {
		fieldVar = sampleFieldOverride
	}

	kind, err := cfg.gridKind()
	if err != nil {
		return err
	}

	f, err := cfg.open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.GridFile, err)
	}
	defer f.Close()

	grid, err := gridio.LoadGrid(f, cfg.gridSpec(kind))
	if err != nil {
		return err
	}
	field, err := gridio.LoadField(f, grid, fieldVar, false, false)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"grid_file": cfg.GridFile, "field": fieldVar, "points": len(cfg.Points),
	}).Info("fieldsample: sampling")

	hints := fieldsample.NewHintSet(1)
	method := cfg.interpMethod()
	for i, p := range cfg.Points {
		v, err := fieldsample.Sample(float32(p.X), float32(p.Y), float32(p.Z), p.T, field, hints, method)
		if err != nil {
			cmd.Printf("%d: error: %v\n", i, err)
			continue
		}
		cmd.Printf("%d: %g\n", i, v)
	}
	return nil
}
