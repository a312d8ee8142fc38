package search

import "github.com/oceantrace/fieldsample/internal/fserr"

const sphereXWalkLimit = 10000

// normalizeAngle shifts val by whole multiples of 360 so it lands in
// the half-open window (ref-half, ref+half].
func normalizeAngle(val, ref, half float64) float64 {
	for val <= ref-half {
		val += 360
	}
	for val > ref+half {
		val -= 360
	}
	return val
}

// SearchRectilinearX brackets x within xvals (length xdim), starting
// from hint xi. The sphere+zonal_periodic path normalizes adjacent
// nodes into a common window before comparing so the walk can cross
// the 180/-180 discontinuity.
func SearchRectilinearX(xvals []float64, x float64, xi int, sphere, zonalPeriodic bool) (int, float64, error) {
	const op = "search.SearchRectilinearX"
	xdim := len(xvals)
	if xi < 0 {
		xi = 0
	}
	if xi > xdim-2 {
		xi = xdim - 2
	}

	if !sphere {
		for xi < xdim-2 && x > xvals[xi+1] {
			xi++
		}
		for xi > 0 && x < xvals[xi] {
			xi--
		}
		if x < xvals[0] || x > xvals[xdim-1] {
			return 0, 0, fserr.OutOfBoundsErr(op)
		}
		xiw := (x - xvals[xi]) / (xvals[xi+1] - xvals[xi])
		return xi, xiw, nil
	}

	if !zonalPeriodic {
		lo, hi := xvals[0], xvals[xdim-1]
		if lo > hi {
			lo, hi = hi, lo
		}
		if x < lo || x > hi {
			return 0, 0, fserr.OutOfBoundsErr(op)
		}
	}

	xiVal := normalizeAngle(xvals[xi], x, 225)
	xi1Val := normalizeAngle(xvals[xi+1], xiVal, 180)

	for iter := 0; ; iter++ {
		if iter >= sphereXWalkLimit {
			return 0, 0, fserr.OutOfBoundsErr(op)
		}
		lo, hi := xiVal, xi1Val
		if lo > hi {
			lo, hi = hi, lo
		}
		if x >= lo && x <= hi {
			break
		}
		if x < lo {
			xi--
		} else {
			xi++
		}
		xi = Fix1D(xi, xdim, true)
		xiVal = normalizeAngle(xvals[xi], x, 225)
		xi1Val = normalizeAngle(xvals[xi+1], xiVal, 180)
	}

	xiw := (x - xiVal) / (xi1Val - xiVal)
	return xi, xiw, nil
}

// SearchRectilinearY brackets y within yvals (length ydim), starting
// from hint yi. The y-axis never wraps, sphere or not.
func SearchRectilinearY(yvals []float64, y float64, yi int) (int, float64, error) {
	const op = "search.SearchRectilinearY"
	ydim := len(yvals)
	if y < yvals[0] || y > yvals[ydim-1] {
		return 0, 0, fserr.OutOfBoundsErr(op)
	}
	if yi < 0 {
		yi = 0
	}
	if yi > ydim-2 {
		yi = ydim - 2
	}
	for yi < ydim-2 && y > yvals[yi+1] {
		yi++
	}
	for yi > 0 && y < yvals[yi] {
		yi--
	}
	etaw := (y - yvals[yi]) / (yvals[yi+1] - yvals[yi])
	return yi, etaw, nil
}
