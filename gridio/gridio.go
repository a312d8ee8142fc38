// Package gridio loads Grid and Field values for the fieldsample core
// from NEMO-convention NetCDF files. It is deliberately kept outside
// package fieldsample itself: §1 of the core's specification names
// "I/O and field loading from netCDF or similar" as an external
// collaborator's job, not the sampling core's.
//
// The loading pattern — open with github.com/ctessum/cdf, read each
// variable into a github.com/ctessum/sparse.DenseArray, converting
// from the file's storage precision as it goes — follows
// popgrid.go's LoadCTMData in the teacher codebase.
package gridio

import (
	"fmt"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/oceantrace/fieldsample"
)

// GridSpec describes which NetCDF variables make up a Grid, following
// the NEMO convention of separate lon/lat/depth/time coordinate
// variables plus data variables shaped (t,z,y,x).
type GridSpec struct {
	Kind          fieldsample.GridKind
	LonVar        string
	LatVar        string
	DepthVar      string
	TimeVar       string
	SphereMesh    bool
	ZonalPeriodic bool
	Z4D           bool
}

// LoadGrid reads the coordinate variables named in spec from rw and
// builds a Grid, validated by fieldsample.NewGrid before it is returned.
func LoadGrid(rw cdf.ReaderWriterAt, spec GridSpec) (*fieldsample.Grid, error) {
	const op = "gridio.LoadGrid"
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lon, err := readVar(f, spec.LonVar)
	if err != nil {
		return nil, fmt.Errorf("%s: lon: %w", op, err)
	}
	lat, err := readVar(f, spec.LatVar)
	if err != nil {
		return nil, fmt.Errorf("%s: lat: %w", op, err)
	}
	depth, err := readVar(f, spec.DepthVar)
	if err != nil {
		return nil, fmt.Errorf("%s: depth: %w", op, err)
	}
	tvar, err := readVar(f, spec.TimeVar)
	if err != nil {
		return nil, fmt.Errorf("%s: time: %w", op, err)
	}

	xdim, ydim := horizontalExtents(spec.Kind, lon, lat)
	zdim := depth.Shape[0]
	if !isSGrid(spec.Kind) {
		// 1-D Z depth vector: Shape is already [zdim].
	} else if spec.Z4D {
		zdim = depth.Shape[1]
	}
	tdim := tvar.Shape[0]

	logrus.WithFields(logrus.Fields{
		"kind": spec.Kind, "xdim": xdim, "ydim": ydim, "zdim": zdim, "tdim": tdim,
	}).Debug("gridio: loaded grid coordinates")

	g := &fieldsample.Grid{
		Kind:          spec.Kind,
		Xdim:          xdim,
		Ydim:          ydim,
		Zdim:          zdim,
		Tdim:          tdim,
		Lon:           lon,
		Lat:           lat,
		Depth:         depth,
		Time:          tvar,
		SphereMesh:    spec.SphereMesh,
		ZonalPeriodic: spec.ZonalPeriodic,
		Z4D:           spec.Z4D,
	}
	return fieldsample.NewGrid(g)
}

// LoadField reads the data variable named name, shaped (t,z,y,x), and
// builds a Field over grid.
func LoadField(rw cdf.ReaderWriterAt, grid *fieldsample.Grid, name string, allowTimeExtrapolation, timePeriodic bool) (*fieldsample.Field, error) {
	const op = "gridio.LoadField"
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	data, err := readVar(f, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, name, err)
	}
	logrus.WithField("variable", name).Debug("gridio: loaded field data")
	return fieldsample.NewField(grid, data, allowTimeExtrapolation, timePeriodic)
}

// readVar reads variable name from f into a *sparse.DenseArray,
// converting from the file's float32 storage to the float64 backing
// sparse.DenseArray uses — the same widening LoadCTMData performs in
// the teacher codebase.
func readVar(f *cdf.File, name string) (*sparse.DenseArray, error) {
	dims := f.Header.Lengths(name)
	r := f.Reader(name, nil, nil)
	out := sparse.ZerosDense(dims...)
	tmp := make([]float32, len(out.Elements))
	if _, err := r.Read(tmp); err != nil {
		return nil, err
	}
	for i, v := range tmp {
		out.Elements[i] = float64(v)
	}
	return out, nil
}

func isSGrid(k fieldsample.GridKind) bool {
	return k == fieldsample.RectilinearS || k == fieldsample.CurvilinearS
}

func isCurvilinear(k fieldsample.GridKind) bool {
	return k == fieldsample.CurvilinearZ || k == fieldsample.CurvilinearS
}

func horizontalExtents(kind fieldsample.GridKind, lon, lat *sparse.DenseArray) (xdim, ydim int) {
	if isCurvilinear(kind) {
		// shaped (ydim,xdim)
		return lon.Shape[1], lon.Shape[0]
	}
	return lon.Shape[0], lat.Shape[0]
}
