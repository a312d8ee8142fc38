package fieldsample

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Field is a scalar quantity defined over a Grid. Data is shaped
// (Tdim,Zdim,Ydim,Xdim), the NEMO axis-order convention (§6); when
// Zdim==1 the z-axis is degenerate and 2-D kernels are used.
type Field struct {
	Grid *Grid
	Data *sparse.DenseArray

	AllowTimeExtrapolation bool
	TimePeriodic           bool
}

// GridID returns the grid_id this field's hints are stored under.
func (f *Field) GridID() int { return f.Grid.ID }

// NewField validates that data's shape matches grid's extents and
// returns a ready-to-sample Field.
func NewField(grid *Grid, data *sparse.DenseArray, allowTimeExtrapolation, timePeriodic bool) (*Field, error) {
	const op = "fieldsample.NewField"
	want := []int{grid.Tdim, grid.Zdim, grid.Ydim, grid.Xdim}
	got := data.Shape
	if len(got) != 4 {
		return nil, Generic(op, fmt.Errorf("data has %d dimensions, want 4 (t,z,y,x)", len(got)))
	}
	for i := range want {
		if got[i] != want[i] {
			return nil, Generic(op, fmt.Errorf("data shape %v does not match grid extents %v", got, want))
		}
	}
	return &Field{
		Grid:                   grid,
		Data:                   data,
		AllowTimeExtrapolation: allowTimeExtrapolation,
		TimePeriodic:           timePeriodic,
	}, nil
}
