// Package kernel implements the spatial sampling kernels that read a
// single time/level plane of a field's raw data and return an
// interpolated value: bilinear and nearest-neighbor in 2-D, trilinear
// and nearest-neighbor in 3-D. Callers pass already-resolved bracket
// indices and cell-local weights; the kernels never search.
package kernel

import "github.com/ctessum/sparse"

// Bilinear2D evaluates the bilinear kernel directly on four corner
// values, per the reference weighting
//
//	v = (1-ξ)(1-η) v00 + ξ(1-η) v10 + ξη v11 + (1-ξ)η v01
func Bilinear2D(xiw, etaw, v00, v10, v11, v01 float64) float64 {
	return (1-xiw)*(1-etaw)*v00 + xiw*(1-etaw)*v10 + xiw*etaw*v11 + (1-xiw)*etaw*v01
}

// corners2D reads the four corner values of data at time index ti,
// level index zi, cell (xi,yi), following the (t,z,y,x) axis order.
func corners2D(data *sparse.DenseArray, ti, zi, yi, xi int) (v00, v10, v11, v01 float64) {
	v00 = data.Get(ti, zi, yi, xi)
	v10 = data.Get(ti, zi, yi, xi+1)
	v11 = data.Get(ti, zi, yi+1, xi+1)
	v01 = data.Get(ti, zi, yi+1, xi)
	return
}

// SampleBilinear2D bilinearly interpolates a single (t,z) plane of
// data at cell (xi,yi) with cell-local weights (xiw,etaw). err is
// always nil; it exists so this kernel has the same shape as the
// others and can be swapped without touching call sites.
func SampleBilinear2D(data *sparse.DenseArray, ti, zi, yi, xi int, xiw, etaw float64) (float64, error) {
	v00, v10, v11, v01 := corners2D(data, ti, zi, yi, xi)
	return Bilinear2D(xiw, etaw, v00, v10, v11, v01), nil
}

// SampleTrilinear3D bilinearly interpolates the (zi) and (zi+1)
// planes and linearly blends them by zetaw.
func SampleTrilinear3D(data *sparse.DenseArray, ti, zi, yi, xi int, xiw, etaw, zetaw float64) (float64, error) {
	f0, _ := SampleBilinear2D(data, ti, zi, yi, xi, xiw, etaw)
	f1, _ := SampleBilinear2D(data, ti, zi+1, yi, xi, xiw, etaw)
	return (1-zetaw)*f0 + zetaw*f1, nil
}

// SampleNearest2D picks the nearest horizontal node: xi when xiw<0.5
// else xi+1, yi when etaw<0.5 else yi+1.
func SampleNearest2D(data *sparse.DenseArray, ti, zi, yi, xi int, xiw, etaw float64) (float64, error) {
	px, py := xi, yi
	if xiw >= 0.5 {
		px = xi + 1
	}
	if etaw >= 0.5 {
		py = yi + 1
	}
	return data.Get(ti, zi, py, px), nil
}

// SampleNearest3D additionally picks the nearest vertical node.
func SampleNearest3D(data *sparse.DenseArray, ti, zi, yi, xi int, xiw, etaw, zetaw float64) (float64, error) {
	pz := zi
	if zetaw >= 0.5 {
		pz = zi + 1
	}
	return SampleNearest2D(data, ti, pz, yi, xi, xiw, etaw)
}
