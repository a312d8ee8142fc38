package search

import "testing"

func TestFix1DClampsOffSphere(t *testing.T) {
	if got := Fix1D(-1, 5, false); got != 0 {
		t.Errorf("Fix1D(-1,5,false) = %d, want 0", got)
	}
	if got := Fix1D(10, 5, false); got != 3 {
		t.Errorf("Fix1D(10,5,false) = %d, want 3", got)
	}
}

func TestFix1DWrapsOnSphere(t *testing.T) {
	if got := Fix1D(-1, 5, true); got != 3 {
		t.Errorf("Fix1D(-1,5,true) = %d, want 3", got)
	}
	if got := Fix1D(10, 5, true); got != 0 {
		t.Errorf("Fix1D(10,5,true) = %d, want 0", got)
	}
}

func TestFix2DPolarFold(t *testing.T) {
	xi, yi := Fix2D(2, 10, 5, 5, true)
	if yi != 3 {
		t.Fatalf("yi = %d, want 3 (clamped to ydim-2)", yi)
	}
	if xi != 3 {
		t.Fatalf("xi = %d, want 3 (reflected: xdim-xi=3)", xi)
	}
}

func TestSearchTimeIndexMonotone(t *testing.T) {
	tvals := []float64{0, 1, 2, 3}
	ti, tt, err := SearchTimeIndex(tvals, 1.5, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if ti != 1 || tt != 1.5 {
		t.Errorf("got ti=%d t=%v, want ti=1 t=1.5", ti, tt)
	}
}

func TestSearchTimeIndexPeriodicFold(t *testing.T) {
	tvals := []float64{0, 10}
	ti, tt, err := SearchTimeIndex(tvals, 25, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if ti != 0 {
		t.Errorf("ti = %d, want 0", ti)
	}
	if tt != 5 {
		t.Errorf("t = %v, want 5", tt)
	}
}

func TestSearchVerticalZBounds(t *testing.T) {
	zvals := []float64{0, 1, 2}
	if _, _, err := SearchVerticalZ(zvals, 2.5, 0); err == nil {
		t.Error("expected out-of-bounds error")
	}
	zi, zw, err := SearchVerticalZ(zvals, 1.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if zi != 1 || zw != 0.5 {
		t.Errorf("got zi=%d zw=%v, want zi=1 zw=0.5", zi, zw)
	}
}

func TestSearchRectilinearXNonSphere(t *testing.T) {
	xvals := []float64{0, 1, 2, 3}
	xi, xiw, err := SearchRectilinearX(xvals, 2.25, 0, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if xi != 2 || xiw != 0.25 {
		t.Errorf("got xi=%d xiw=%v, want xi=2 xiw=0.25", xi, xiw)
	}
	if _, _, err := SearchRectilinearX(xvals, 3.1, 0, false, false); err == nil {
		t.Error("expected out-of-bounds error")
	}
}

func TestSearchRectilinearXSphereWrap(t *testing.T) {
	xvals := []float64{-180, -90, 0, 90}
	xi1, w1, err := SearchRectilinearX(xvals, 270, 0, true, true)
	if err != nil {
		t.Fatal(err)
	}
	xi2, w2, err := SearchRectilinearX(xvals, -90, 0, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if xi1 != xi2 {
		t.Errorf("xi mismatch across wrap: %d vs %d", xi1, xi2)
	}
	if diff := w1 - w2; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("weight mismatch across wrap: %v vs %v", w1, w2)
	}
}
