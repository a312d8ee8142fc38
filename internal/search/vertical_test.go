package search

import (
	"testing"

	"github.com/ctessum/sparse"
)

func TestSColumnHorizontalBilinear(t *testing.T) {
	// depth varies only in x: level l has depth = l*10 + x*1.
	depth := sparse.ZerosDense(3, 2, 2)
	for l := 0; l < 3; l++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				depth.Set(float64(l*10+x), l, y, x)
			}
		}
	}
	buf := make([]float64, 3)
	SColumn(depth, false, 3, 0, 0, 0.5, 0.5, 0, 0, 0, buf)
	want := []float64{0.5, 10.5, 20.5}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSColumnZ4DBlend(t *testing.T) {
	depth := sparse.ZerosDense(2, 2, 2, 2) // (t,z,y,x)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			depth.Set(0, 0, 0, y, x)
			depth.Set(0, 0, 1, y, x)
			depth.Set(10, 1, 0, y, x)
			depth.Set(10, 1, 1, y, x)
		}
	}
	buf := make([]float64, 2)
	SColumn(depth, true, 2, 0, 0, 0, 0, 0, 1, 0.5, buf)
	if buf[0] != 5 {
		t.Errorf("buf[0] = %v, want 5 (blend of 0 and 10)", buf[0])
	}
}

func TestSearchVerticalSUsesColumn(t *testing.T) {
	col := []float64{0, 10, 20}
	zi, zw, err := SearchVerticalS(col, 15, 0)
	if err != nil {
		t.Fatal(err)
	}
	if zi != 1 || zw != 0.5 {
		t.Errorf("got zi=%d zw=%v, want zi=1 zw=0.5", zi, zw)
	}
}
