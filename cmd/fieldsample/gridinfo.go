package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oceantrace/fieldsample/gridio"
)

var gridInfoConfigPath string

var gridInfoCmd = &cobra.Command{
	Use:   "grid-info",
	Short: "Print a grid's dimensions and extents.",
	Long:  "grid-info loads the grid named in a TOML run configuration and prints its kind, dimensions, mesh flags, and time range. The lon, lat, and depth coordinate ranges are not printed.",
	DisableAutoGenTag: true,
	RunE:              runGridInfo,
}

func init() {
	gridInfoCmd.Flags().StringVarP(&gridInfoConfigPath, "config", "c", "", "path to a TOML run configuration (required)")
	gridInfoCmd.MarkFlagRequired("config")
}

func runGridInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(gridInfoConfigPath)
	if err != nil {
		return err
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

	cmd.Printf("kind:   %s\n", grid.Kind)
	cmd.Printf("dims:   x=%d y=%d z=%d t=%d\n", grid.Xdim, grid.Ydim, grid.Zdim, grid.Tdim)
	cmd.Printf("sphere: %t  zonal_periodic: %t  z4d: %t\n", grid.SphereMesh, grid.ZonalPeriodic, grid.Z4D)
	tv := grid.Time.Elements
	cmd.Printf("time:   [%g, %g]\n", tv[0], tv[len(tv)-1])
	return nil
}
