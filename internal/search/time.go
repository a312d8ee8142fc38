package search

import "github.com/oceantrace/fieldsample/internal/fserr"

// SearchTimeIndex brackets t within tvals, starting from the hint ti.
// When periodic is true and t falls outside [tvals[0], tvals[n-1]],
// it is folded back into range before the monotone walk runs, in one
// step that subtracts k whole closed-interval periods, with
// k = ⌊(t - tvals[0]) / period⌋; there is no recursive or repeated fold.
//
// Returns the resolved ti and the (possibly folded) t.
func SearchTimeIndex(tvals []float64, t float64, ti int, periodic bool) (int, float64, error) {
	const op = "search.SearchTimeIndex"
	n := len(tvals)
	if ti < 0 {
		ti = 0
	}

	if periodic && (t < tvals[0] || t > tvals[n-1]) {
		period := tvals[n-1] - tvals[0]
		if period <= 0 {
			return 0, t, fserr.Generic(op, nil)
		}
		belowRange := t < tvals[0]
		k := floorDiv(t-tvals[0], period)
		t = t - k*period
		if belowRange {
			ti = n - 1
		} else {
			ti = 0
		}
	}

	for ti < n-1 && t >= tvals[ti+1] {
		ti++
	}
	for ti > 0 && t < tvals[ti] {
		ti--
	}
	return ti, t, nil
}

func floorDiv(a, b float64) float64 {
	q := a / b
	f := float64(int64(q))
	if q < 0 && f != q {
		f--
	}
	return f
}
