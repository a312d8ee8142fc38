package search

import (
	"testing"

	"github.com/ctessum/sparse"
)

func squareGrid() (*sparse.DenseArray, *sparse.DenseArray) {
	// 3x3 node parallelogram (identical to a rectilinear unit grid),
	// so A is exactly 0 and the linear branch is used.
	xg := sparse.ZerosDense(3, 3)
	yg := sparse.ZerosDense(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			xg.Set(float64(x), y, x)
			yg.Set(float64(y), y, x)
		}
	}
	return xg, yg
}

func TestSearchCurvilinearDegenerateParallelogram(t *testing.T) {
	xg, yg := squareGrid()
	xi, yi, xiw, etaw, err := SearchCurvilinear(xg, yg, 3, 3, 1.25, 0.75, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if xi != 1 || yi != 0 {
		t.Errorf("got cell (%d,%d), want (1,0)", xi, yi)
	}
	if d := xiw - 0.25; d > 1e-9 || d < -1e-9 {
		t.Errorf("xiw = %v, want 0.25", xiw)
	}
	if d := etaw - 0.75; d > 1e-9 || d < -1e-9 {
		t.Errorf("etaw = %v, want 0.75", etaw)
	}
}

func TestSearchCurvilinearSweptQuadConverges(t *testing.T) {
	// A swept (non-parallelogram) quad: top edge shifted and stretched
	// in x, so A != 0 and the quadratic branch is used.
	xg := sparse.ZerosDense(2, 2)
	yg := sparse.ZerosDense(2, 2)
	xg.Set(0, 0, 0)
	xg.Set(1, 0, 1)
	xg.Set(2, 1, 1)
	xg.Set(0.5, 1, 0)
	yg.Set(0, 0, 0)
	yg.Set(0, 0, 1)
	yg.Set(1, 1, 1)
	yg.Set(1, 1, 0)

	xi, yi, xiw, etaw, err := SearchCurvilinear(xg, yg, 2, 2, 0.75, 0.5, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if xi != 0 || yi != 0 {
		t.Errorf("got cell (%d,%d), want (0,0)", xi, yi)
	}
	if xiw < 0 || xiw > 1 || etaw < 0 || etaw > 1 {
		t.Errorf("xiw=%v etaw=%v out of [0,1]", xiw, etaw)
	}
}

func TestSearchCurvilinearOutOfBounds(t *testing.T) {
	xg, yg := squareGrid()
	if _, _, _, _, err := SearchCurvilinear(xg, yg, 3, 3, -5, -5, 0, 0, false); err == nil {
		t.Error("expected out-of-bounds error")
	}
}
