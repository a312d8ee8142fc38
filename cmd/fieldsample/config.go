package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/oceantrace/fieldsample"
	"github.com/oceantrace/fieldsample/gridio"
)

// runConfig is the TOML run description read by the sample
// subcommand, following the teacher's top-level BurntSushi/toml
// dependency for its own config decoding.
type runConfig struct {
	GridFile string  `toml:"grid_file"`
	GridKind string  `toml:"grid_kind"`
	LonVar   string  `toml:"lon_var"`
	LatVar   string  `toml:"lat_var"`
	DepthVar string  `toml:"depth_var"`
	TimeVar  string  `toml:"time_var"`
	FieldVar string  `toml:"field_var"`
	Sphere   bool    `toml:"sphere_mesh"`
	Zonal    bool    `toml:"zonal_periodic"`
	Z4D      bool    `toml:"z4d"`
	Method   string  `toml:"method"`
	Points   []point `toml:"points"`
}

type point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
	T float64 `toml:"t"`
}

func loadRunConfig(path string) (*runConfig, error) {
	var cfg runConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("cmd/fieldsample: decoding %s: %w", path, err)
	}
	if cfg.Method == "" {
		cfg.Method = "linear"
	}
	return &cfg, nil
}

func (c *runConfig) gridKind() (fieldsample.GridKind, error) {
	switch c.GridKind {
	case "RectilinearZ":
		return fieldsample.RectilinearZ, nil
	case "RectilinearS":
		return fieldsample.RectilinearS, nil
	case "CurvilinearZ":
		return fieldsample.CurvilinearZ, nil
	case "CurvilinearS":
		return fieldsample.CurvilinearS, nil
	default:
		return 0, fmt.Errorf("unknown grid_kind %q", c.GridKind)
	}
}

func (c *runConfig) interpMethod() fieldsample.InterpMethod {
	if c.Method == "nearest" {
		return fieldsample.Nearest
	}
	return fieldsample.Linear
}

func (c *runConfig) open() (*os.File, error) {
	return os.Open(c.GridFile)
}

func (c *runConfig) gridSpec(kind fieldsample.GridKind) gridio.GridSpec {
	return gridio.GridSpec{
		Kind:          kind,
		LonVar:        c.LonVar,
		LatVar:        c.LatVar,
		DepthVar:      c.DepthVar,
		TimeVar:       c.TimeVar,
		SphereMesh:    c.Sphere,
		ZonalPeriodic: c.Zonal,
		Z4D:           c.Z4D,
	}
}
