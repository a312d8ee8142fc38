package search

import (
	"github.com/ctessum/sparse"
	"github.com/oceantrace/fieldsample/internal/fserr"
	"github.com/oceantrace/fieldsample/internal/kernel"
)

// SearchVerticalZ brackets z within zvals (strictly increasing, fixed
// depth vector), walking forward/backward from the hint zi.
func SearchVerticalZ(zvals []float64, z float64, zi int) (int, float64, error) {
	const op = "search.SearchVerticalZ"
	n := len(zvals)
	if n == 1 {
		return 0, 0, nil
	}
	if z < zvals[0] || z > zvals[n-1] {
		return 0, 0, fserr.OutOfBoundsErr(op)
	}
	if zi < 0 {
		zi = 0
	}
	if zi > n-2 {
		zi = n - 2
	}
	for zi < n-1 && z > zvals[zi+1] {
		zi++
	}
	for zi > 0 && z < zvals[zi] {
		zi--
	}
	if zi == n-1 {
		zi--
	}
	zetaw := (z - zvals[zi]) / (zvals[zi+1] - zvals[zi])
	return zi, zetaw, nil
}

// SColumn builds the synthetic vertical column at the current
// horizontal cell (xi,yi) with weights (xiw,etaw) by bilinearly
// interpolating the S-grid depth table at each level. When z4d is
// true, the two bracketing time frames (ti, ti1) are each
// bilinearly interpolated and then linearly blended by timew. buf
// must have length zdim and is overwritten in place so callers can
// reuse a per-particle scratch buffer on the hot path.
func SColumn(depth *sparse.DenseArray, z4d bool, zdim, xi, yi int, xiw, etaw float64, ti, ti1 int, timew float64, buf []float64) []float64 {
	for l := 0; l < zdim; l++ {
		if !z4d {
			v00 := depth.Get(l, yi, xi)
			v10 := depth.Get(l, yi, xi+1)
			v11 := depth.Get(l, yi+1, xi+1)
			v01 := depth.Get(l, yi+1, xi)
			buf[l] = kernel.Bilinear2D(xiw, etaw, v00, v10, v11, v01)
			continue
		}
		v00a := depth.Get(ti, l, yi, xi)
		v10a := depth.Get(ti, l, yi, xi+1)
		v11a := depth.Get(ti, l, yi+1, xi+1)
		v01a := depth.Get(ti, l, yi+1, xi)
		d0 := kernel.Bilinear2D(xiw, etaw, v00a, v10a, v11a, v01a)

		v00b := depth.Get(ti1, l, yi, xi)
		v10b := depth.Get(ti1, l, yi, xi+1)
		v11b := depth.Get(ti1, l, yi+1, xi+1)
		v01b := depth.Get(ti1, l, yi+1, xi)
		d1 := kernel.Bilinear2D(xiw, etaw, v00b, v10b, v11b, v01b)

		buf[l] = d0 + (d1-d0)*timew
	}
	return buf
}

// SearchVerticalS runs the Z-case bracket walk over a synthetic
// column already built by SColumn. The out-of-bounds policy is
// identical to the Z case.
func SearchVerticalS(zcol []float64, z float64, zi int) (int, float64, error) {
	return SearchVerticalZ(zcol, z, zi)
}
