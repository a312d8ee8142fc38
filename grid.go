package fieldsample

import (
	"fmt"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// GridKind identifies the horizontal/vertical coordinate scheme of a
// Grid.
type GridKind int

const (
	RectilinearZ GridKind = iota
	RectilinearS
	CurvilinearZ
	CurvilinearS
)

func (k GridKind) String() string {
	switch k {
	case RectilinearZ:
		return "RectilinearZ"
	case RectilinearS:
		return "RectilinearS"
	case CurvilinearZ:
		return "CurvilinearZ"
	case CurvilinearS:
		return "CurvilinearS"
	default:
		return "Unknown"
	}
}

func (k GridKind) curvilinear() bool { return k == CurvilinearZ || k == CurvilinearS }
func (k GridKind) sGrid() bool       { return k == RectilinearS || k == CurvilinearS }

// Grid is a structured mesh: a rectilinear or curvilinear horizontal
// layout crossed with a fixed (Z) or terrain-following (S) vertical
// coordinate. Grids are logically immutable after NewGrid validates
// them; the sampling core never mutates one.
//
// Lon and Lat hold 1-D coordinate vectors of length (Xdim) and (Ydim)
// respectively for Rectilinear kinds, or 2-D arrays shaped
// (Ydim,Xdim) for Curvilinear kinds. Depth holds a 1-D vector of
// length Zdim for Z kinds, or a (Zdim,Ydim,Xdim) table — or, when Z4D
// is set, a (Tdim,Zdim,Ydim,Xdim) table — for S kinds. Time holds a
// 1-D vector of length Tdim.
//
// Underlying storage is github.com/ctessum/sparse.DenseArray, the
// same row-major shaped-array type the teacher codebase uses to hold
// NetCDF-sourced grid data (see gridio for the loader that builds
// these from files).
type Grid struct {
	ID   int
	Kind GridKind

	Xdim, Ydim, Zdim, Tdim int

	Lon   *sparse.DenseArray
	Lat   *sparse.DenseArray
	Depth *sparse.DenseArray
	Time  *sparse.DenseArray

	SphereMesh    bool
	ZonalPeriodic bool
	Z4D           bool
}

// NewGrid validates g's extents, that all four coordinate arrays are
// set, and that Time (and, for Z kinds, Depth) is strictly increasing
// (§3), and returns it, or a generic Error describing the first
// violation. The shapes of the coordinate arrays are not checked
// against the extents, and Lon/Lat monotonicity is not checked.
func NewGrid(g *Grid) (*Grid, error) {
	const op = "fieldsample.NewGrid"
	if g.Xdim < 2 || g.Ydim < 2 {
		return nil, Generic(op, fmt.Errorf("xdim=%d ydim=%d: both must be >= 2", g.Xdim, g.Ydim))
	}
	if g.Zdim < 1 {
		return nil, Generic(op, fmt.Errorf("zdim=%d: must be >= 1", g.Zdim))
	}
	if g.Tdim < 1 {
		return nil, Generic(op, fmt.Errorf("tdim=%d: must be >= 1", g.Tdim))
	}
	if g.Lon == nil || g.Lat == nil || g.Depth == nil || g.Time == nil {
		return nil, Generic(op, fmt.Errorf("Lon, Lat, Depth, and Time arrays must all be set"))
	}
	if !g.Kind.sGrid() {
		if err := strictlyIncreasing(g.Depth.Elements); err != nil {
			return nil, Generic(op, fmt.Errorf("depth: %w", err))
		}
	}
	if err := strictlyIncreasing(g.Time.Elements); err != nil {
		return nil, Generic(op, fmt.Errorf("time: %w", err))
	}
	return g, nil
}

// strictlyIncreasing reports an error if x is not sorted in strictly
// ascending order. floats.IsSorted only guarantees non-decreasing
// order, so adjacent equality is rejected separately.
func strictlyIncreasing(x []float64) error {
	if !floats.IsSorted(x) {
		return fmt.Errorf("not monotonically increasing")
	}
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			return fmt.Errorf("not strictly increasing at index %d", i)
		}
	}
	return nil
}

// GridRegistry assigns dense grid_id values at construction time, the
// representation spec §9 assumes but does not itself define.
type GridRegistry struct {
	grids []*Grid
}

// NewGridRegistry returns an empty registry.
func NewGridRegistry() *GridRegistry { return &GridRegistry{} }

// Register assigns the next free grid_id to g, stamps it onto g.ID,
// and returns it.
func (r *GridRegistry) Register(g *Grid) int {
	id := len(r.grids)
	g.ID = id
	r.grids = append(r.grids, g)
	return id
}

// Len returns the number of grids registered so far, i.e. the size a
// HintSet needs to cover every registered grid_id.
func (r *GridRegistry) Len() int { return len(r.grids) }
