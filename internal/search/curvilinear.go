package search

import (
	"math"

	"github.com/ctessum/sparse"
	"github.com/oceantrace/fieldsample/internal/fserr"
)

const curvilinearWalkLimit = 1000000

// quadCoeffs are the bilinear-map coefficients of the cell mapping
// (ξ,η) ↦ (X̂,Ŷ), per §4.4.
type quadCoeffs struct{ a0, a1, a2, a3, b0, b1, b2, b3 float64 }

func buildQuad(x0, x1, x2, x3, y0, y1, y2, y3 float64) quadCoeffs {
	return quadCoeffs{
		a0: x0,
		a1: -x0 + x1,
		a2: -x0 + x3,
		a3: x0 - x1 + x2 - x3,
		b0: y0,
		b1: -y0 + y1,
		b2: -y0 + y3,
		b3: y0 - y1 + y2 - y3,
	}
}

// solve inverts the bilinear cell map at physical point (x,y),
// returning (ξ,η). On a degenerate discriminant it returns the
// prior (ξ,η) unchanged, per the reference's NaN-retention rule.
func (q quadCoeffs) solve(x, y, prevXi, prevEta float64) (float64, float64) {
	A := q.a3*q.b2 - q.a2*q.b3
	B := q.a3*q.b0 - q.a0*q.b3 + q.a1*q.b2 - q.a2*q.b1 + x*q.b3 - y*q.a3
	C := q.a1*q.b0 - q.a0*q.b1 + x*q.b1 - y*q.a1

	var eta float64
	if math.Abs(A) < 1e-12 {
		if B == 0 {
			return prevXi, prevEta
		}
		eta = -C / B
	} else {
		disc := B*B - 4*A*C
		root := math.Sqrt(disc)
		if math.IsNaN(root) {
			return prevXi, prevEta
		}
		eta = (-B + root) / (2 * A)
	}

	denom := q.a1 + q.a3*eta
	if denom == 0 {
		return prevXi, prevEta
	}
	xi := (x - q.a0 - q.a2*eta) / denom
	return xi, eta
}

// SearchCurvilinear inverts the curvilinear mesh xgrid/ygrid (shaped
// (ydim,xdim)) to find the cell containing (x,y) and its cell-local
// coordinates, walking from the hint (xi,yi).
func SearchCurvilinear(xgrid, ygrid *sparse.DenseArray, xdim, ydim int, x, y float64, xi, yi int, sphere bool) (int, int, float64, float64, error) {
	const op = "search.SearchCurvilinear"
	if xi < 0 {
		xi = 0
	}
	if xi > xdim-2 {
		xi = xdim - 2
	}
	if yi < 0 {
		yi = 0
	}
	if yi > ydim-2 {
		yi = ydim - 2
	}

	var xiw, etaw float64
	for iter := 0; ; iter++ {
		if iter >= curvilinearWalkLimit {
			return 0, 0, 0, 0, fserr.OutOfBoundsErr(op)
		}

		x0, x1, x2, x3 := xgrid.Get(yi, xi), xgrid.Get(yi, xi+1), xgrid.Get(yi+1, xi+1), xgrid.Get(yi+1, xi)
		y0, y1, y2, y3 := ygrid.Get(yi, xi), ygrid.Get(yi, xi+1), ygrid.Get(yi+1, xi+1), ygrid.Get(yi+1, xi)
		qx := x
		if sphere {
			x0 = normalizeAngle(x0, x, 225)
			x1 = normalizeAngle(x1, x0, 180)
			x2 = normalizeAngle(x2, x0, 180)
			x3 = normalizeAngle(x3, x0, 180)
		}

		q := buildQuad(x0, x1, x2, x3, y0, y1, y2, y3)
		xiw, etaw = q.solve(qx, y, xiw, etaw)

		if xiw >= 0 && xiw <= 1 && etaw >= 0 && etaw <= 1 {
			break
		}
		if xiw < 0 && etaw < 0 && xi == 0 && yi == 0 {
			return 0, 0, 0, 0, fserr.OutOfBoundsErr(op)
		}
		if xiw > 1 && etaw > 1 && xi == xdim-2 && yi == ydim-2 {
			return 0, 0, 0, 0, fserr.OutOfBoundsErr(op)
		}

		dxi, dyi := 0, 0
		if xiw < 0 {
			dxi = -1
		} else if xiw > 1 {
			dxi = 1
		}
		if etaw < 0 {
			dyi = -1
		} else if etaw > 1 {
			dyi = 1
		}
		xi, yi = Fix2D(xi+dxi, yi+dyi, xdim, ydim, sphere)
	}

	if math.IsNaN(xiw) || math.IsNaN(etaw) {
		return 0, 0, 0, 0, fserr.Generic(op, nil)
	}
	return xi, yi, xiw, etaw, nil
}
