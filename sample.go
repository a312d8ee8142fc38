package fieldsample

import (
	"fmt"

	"github.com/oceantrace/fieldsample/internal/kernel"
	"github.com/oceantrace/fieldsample/internal/search"
)

// InterpMethod selects the spatial sampling kernel.
type InterpMethod int

const (
	Linear InterpMethod = iota
	Nearest
)

// Sample returns field's value at (x,y,z,t), walking hints forward
// from whatever bracket it last found for field's grid. Horizontal
// and vertical coordinates are single precision at the API boundary;
// field data and all interpolation weights are handled in double
// precision internally and the result is cast to float32 on return
// (§6).
func Sample(x, y, z float32, t float64, field *Field, hints *HintSet, method InterpMethod) (float32, error) {
	const op = "fieldsample.Sample"
	grid := field.Grid
	gridID := grid.ID
	hint := hints.Get(gridID)
	tv := grid.Time.Elements

	if !field.TimePeriodic && !field.AllowTimeExtrapolation && (t < tv[0] || t > tv[grid.Tdim-1]) {
		return 0, TimeExtrapolationErr(op)
	}

	ti, foldedT, err := search.SearchTimeIndex(tv, t, hint.TI, field.TimePeriodic)
	if err != nil {
		return 0, wrapSearchErr(op, err)
	}
	t = foldedT
	hint.TI = ti

	if ti < grid.Tdim-1 && t > tv[ti] {
		t0, t1 := tv[ti], tv[ti+1]
		timew := (t - t0) / (t1 - t0)

		xiw, etaw, zetaw, err := searchIndices(grid, gridID, float64(x), float64(y), float64(z), hints, ti, ti+1, timew)
		if err != nil {
			return 0, wrapSearchErr(op, err)
		}

		f0 := sampleFrame(field, ti, hint, xiw, etaw, zetaw, method)
		f1 := sampleFrame(field, ti+1, hint, xiw, etaw, zetaw, method)
		return float32(f0 + (f1-f0)*timew), nil
	}

	// Boundary or extrapolation: the (t0, t0+1) bracket the reference
	// passes to search_indices here only matters for its degenerate
	// blend weight, which is always 0 for a single-frame sample.
	ti1 := ti + 1
	if ti1 > grid.Tdim-1 {
		ti1 = grid.Tdim - 1
	}
	xiw, etaw, zetaw, err := searchIndices(grid, gridID, float64(x), float64(y), float64(z), hints, ti, ti1, 0)
	if err != nil {
		return 0, wrapSearchErr(op, err)
	}
	f0 := sampleFrame(field, ti, hint, xiw, etaw, zetaw, method)
	return float32(f0), nil
}

// SampleUV samples u and v at the same point, sharing hints.
func SampleUV(x, y, z float32, t float64, u, v *Field, hints *HintSet, method InterpMethod) (float32, float32, error) {
	uu, err := Sample(x, y, z, t, u, hints, method)
	if err != nil {
		return 0, 0, err
	}
	vv, err := Sample(x, y, z, t, v, hints, method)
	if err != nil {
		return 0, 0, err
	}
	return uu, vv, nil
}

// SampleUVRotated samples u, v, and four angle fields at the same
// point and applies the curvilinear rotation
//
//	U' = u·cosU - v·sinV
//	V' = u·sinU + v·cosV
//
// The asymmetric pairing of U-angles and V-angles across the two
// outputs is preserved as-is from the reference implementation; a
// conventional rotation would use the same angle pair in both rows.
func SampleUVRotated(x, y, z float32, t float64, u, v, cosU, sinU, cosV, sinV *Field, hints *HintSet, method InterpMethod) (float32, float32, error) {
	uu, vv, err := SampleUV(x, y, z, t, u, v, hints, method)
	if err != nil {
		return 0, 0, err
	}
	cu, err := Sample(x, y, z, t, cosU, hints, method)
	if err != nil {
		return 0, 0, err
	}
	su, err := Sample(x, y, z, t, sinU, hints, method)
	if err != nil {
		return 0, 0, err
	}
	cv, err := Sample(x, y, z, t, cosV, hints, method)
	if err != nil {
		return 0, 0, err
	}
	sv, err := Sample(x, y, z, t, sinV, hints, method)
	if err != nil {
		return 0, 0, err
	}
	up := uu*cu - vv*sv
	vp := uu*su + vv*cv
	return up, vp, nil
}

// searchIndices resolves the horizontal and vertical bracket for
// (x,y,z) within grid, dispatching on grid.Kind, and returns the
// cell-local weights (ξ,η,ζ). hint.XI/YI/ZI are updated in place.
// ti/ti1/timew are only consumed by the S-grid vertical bracket's
// depth-table blend.
func searchIndices(grid *Grid, gridID int, x, y, z float64, hints *HintSet, ti, ti1 int, timew float64) (xiw, etaw, zetaw float64, err error) {
	const op = "fieldsample.searchIndices"
	hint := hints.Get(gridID)

	switch grid.Kind {
	case RectilinearZ, RectilinearS:
		xi, xw, xerr := search.SearchRectilinearX(grid.Lon.Elements, x, hint.XI, grid.SphereMesh, grid.ZonalPeriodic)
		if xerr != nil {
			return 0, 0, 0, xerr
		}
		yi, yw, yerr := search.SearchRectilinearY(grid.Lat.Elements, y, hint.YI)
		if yerr != nil {
			return 0, 0, 0, yerr
		}
		hint.XI, hint.YI = xi, yi
		xiw, etaw = xw, yw

	case CurvilinearZ, CurvilinearS:
		xi, yi, xw, yw, cerr := search.SearchCurvilinear(grid.Lon, grid.Lat, grid.Xdim, grid.Ydim, x, y, hint.XI, hint.YI, grid.SphereMesh)
		if cerr != nil {
			return 0, 0, 0, cerr
		}
		hint.XI, hint.YI = xi, yi
		xiw, etaw = xw, yw

	default:
		return 0, 0, 0, Generic(op, fmt.Errorf("unsupported grid kind %v", grid.Kind))
	}

	if grid.Zdim == 1 {
		hint.ZI = 0
		return xiw, etaw, 0, nil
	}

	if !grid.Kind.sGrid() {
		zi, zw, zerr := search.SearchVerticalZ(grid.Depth.Elements, z, hint.ZI)
		if zerr != nil {
			return 0, 0, 0, zerr
		}
		hint.ZI = zi
		zetaw = zw
		return xiw, etaw, zetaw, nil
	}

	zcol := hints.zcol(gridID, grid.Zdim)
	search.SColumn(grid.Depth, grid.Z4D, grid.Zdim, hint.XI, hint.YI, xiw, etaw, ti, ti1, timew, zcol)
	zi, zw, zerr := search.SearchVerticalS(zcol, z, hint.ZI)
	if zerr != nil {
		return 0, 0, 0, zerr
	}
	hint.ZI = zi
	zetaw = zw
	return xiw, etaw, zetaw, nil
}

// sampleFrame dispatches to the 2-D or 3-D, bilinear/trilinear or
// nearest kernel for a single time frame. The kernels never fail
// (§9, "unchecked err assignments" is a known brittleness preserved
// from the reference), so the error return is deliberately discarded
// here.
func sampleFrame(field *Field, ti int, hint *Hint, xiw, etaw, zetaw float64, method InterpMethod) float64 {
	if field.Grid.Zdim == 1 {
		if method == Nearest {
			v, _ := kernel.SampleNearest2D(field.Data, ti, 0, hint.YI, hint.XI, xiw, etaw)
			return v
		}
		v, _ := kernel.SampleBilinear2D(field.Data, ti, 0, hint.YI, hint.XI, xiw, etaw)
		return v
	}
	if method == Nearest {
		v, _ := kernel.SampleNearest3D(field.Data, ti, hint.ZI, hint.YI, hint.XI, xiw, etaw, zetaw)
		return v
	}
	v, _ := kernel.SampleTrilinear3D(field.Data, ti, hint.ZI, hint.YI, hint.XI, xiw, etaw, zetaw)
	return v
}

// wrapSearchErr passes a *SampleError through unchanged and wraps
// anything else as a generic Error tagged with op.
func wrapSearchErr(op string, err error) error {
	if _, ok := err.(*SampleError); ok {
		return err
	}
	return Generic(op, err)
}
