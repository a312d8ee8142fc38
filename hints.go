package fieldsample

// Hint holds the per-particle, per-grid bracket indices left by the
// last successful sample: (xi,yi,zi,ti). They are advisory — a failed
// bracket triggers a walk that may traverse arbitrarily many cells —
// but a correct hint makes the next nearby query near-constant time.
type Hint struct {
	XI, YI, ZI, TI int
}

// HintSet is the compact, grid_id-indexed hint representation spec §9
// recommends. One HintSet belongs to exactly one particle; parallel
// advection of N particles uses N disjoint HintSets.
//
// It also owns the per-grid S-column scratch buffer used while
// bracketing terrain-following depth: the buffer is sized once (on a
// particle's first S-grid sample) and reused on every later sample so
// the steady-state hot path does not allocate, mirroring the
// preallocated scratchpad fields on gofem's shp.Shape.
type HintSet struct {
	hints   []Hint
	scratch [][]float64
}

// NewHintSet returns a HintSet sized for n grids (see
// GridRegistry.Len), with every hint starting at its lowest bracket.
func NewHintSet(n int) *HintSet {
	return &HintSet{hints: make([]Hint, n)}
}

// grow extends the backing slice so grid_id is addressable, for
// registries that grew after the HintSet was created.
func (h *HintSet) grow(gridID int) {
	for len(h.hints) <= gridID {
		h.hints = append(h.hints, Hint{})
	}
}

// Get returns a pointer to the hint for gridID, mutably borrowed for
// the duration of one sample call.
func (h *HintSet) Get(gridID int) *Hint {
	h.grow(gridID)
	return &h.hints[gridID]
}

// Reset zeros the hint for gridID, e.g. when a particle is reseeded
// into a different part of the domain or handed to a new grid.
func (h *HintSet) Reset(gridID int) {
	h.grow(gridID)
	h.hints[gridID] = Hint{}
}

// zcol returns the S-column scratch buffer for gridID, allocating or
// resizing it on first use so it has exactly zdim entries.
func (h *HintSet) zcol(gridID, zdim int) []float64 {
	for len(h.scratch) <= gridID {
		h.scratch = append(h.scratch, nil)
	}
	if len(h.scratch[gridID]) != zdim {
		h.scratch[gridID] = make([]float64, zdim)
	}
	return h.scratch[gridID]
}
