package fieldsample

import (
	"testing"

	"github.com/ctessum/sparse"
)

// flatSColumnDepth builds a (zdim,ydim,xdim) depth table that is
// horizontally uniform, so the S-grid bracket degenerates to the
// plain Z-grid bracket regardless of (ξ,η).
func flatSColumnDepth(levels []float64, ydim, xdim int) *sparse.DenseArray {
	d := sparse.ZerosDense(len(levels), ydim, xdim)
	for z, v := range levels {
		for y := 0; y < ydim; y++ {
			for x := 0; x < xdim; x++ {
				d.Set(v, z, y, x)
			}
		}
	}
	return d
}

func TestSampleRectilinearSGrid(t *testing.T) {
	reg := NewGridRegistry()
	g, err := NewGrid(&Grid{
		Kind: RectilinearS,
		Xdim: 2, Ydim: 2, Zdim: 3, Tdim: 1,
		Lon:   vec(0, 1),
		Lat:   vec(0, 1),
		Depth: flatSColumnDepth([]float64{0, 10, 20}, 2, 2),
		Time:  vec(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	reg.Register(g)
	data := fill4D(1, 3, 2, 2, func(ti, zi, yi, xi int) float64 { return float64(zi) })
	field, err := NewField(g, data, false, false)
	if err != nil {
		t.Fatal(err)
	}

	hints := NewHintSet(1)
	v, err := Sample(0.5, 0.5, 5, 0, field, hints, Linear)
	if err != nil {
		t.Fatal(err)
	}
	if different(float64(v), 0.5, 1e-6) {
		t.Errorf("got %v, want 0.5 (halfway between level 0 and 1)", v)
	}
	if hints.Get(g.ID).ZI != 0 {
		t.Errorf("zi = %d, want 0", hints.Get(g.ID).ZI)
	}
}

func TestSampleSGridOutOfBoundsBelowSeafloor(t *testing.T) {
	reg := NewGridRegistry()
	g, err := NewGrid(&Grid{
		Kind: RectilinearS,
		Xdim: 2, Ydim: 2, Zdim: 2, Tdim: 1,
		Lon:   vec(0, 1),
		Lat:   vec(0, 1),
		Depth: flatSColumnDepth([]float64{0, 10}, 2, 2),
		Time:  vec(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	reg.Register(g)
	data := fill4D(1, 2, 2, 2, func(ti, zi, yi, xi int) float64 { return float64(zi) })
	field, err := NewField(g, data, false, false)
	if err != nil {
		t.Fatal(err)
	}
	hints := NewHintSet(1)
	if _, err := Sample(0.5, 0.5, 15, 0, field, hints, Linear); err == nil {
		t.Fatal("expected out-of-bounds below the deepest S-level")
	}
}
