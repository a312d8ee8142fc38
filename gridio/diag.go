package gridio

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// OOBRecord is one out-of-bounds query point captured for offline
// diagnosis, along with the footprint of the last cell the search
// walk was sitting in when it gave up.
type OOBRecord struct {
	X, Y float64
	Cell geom.Polygon
}

// OOBDiagnostics accumulates OOBRecords during a run so they can be
// dumped to a shapefile for inspection in GIS tooling, the same
// export format vargrid.go uses (via geom/encoding/shp) for grid
// cell footprints.
type OOBDiagnostics struct {
	records []OOBRecord
	max     int
}

// NewOOBDiagnostics returns a diagnostics collector retaining at most
// max records (oldest dropped first).
func NewOOBDiagnostics(max int) *OOBDiagnostics {
	return &OOBDiagnostics{max: max}
}

// Record adds an out-of-bounds query point and the last curvilinear
// cell footprint the search walk examined.
func (d *OOBDiagnostics) Record(x, y float64, cell geom.Polygon) {
	d.records = append(d.records, OOBRecord{X: x, Y: y, Cell: cell})
	if d.max > 0 && len(d.records) > d.max {
		d.records = d.records[len(d.records)-d.max:]
	}
}

// CurvilinearCellPolygon builds the geom.Polygon footprint of cell
// (xi,yi) in a curvilinear grid, for use with Record.
func CurvilinearCellPolygon(xgrid, ygrid *sparse.DenseArray, xi, yi int) geom.Polygon {
	pt := func(y, x int) geom.Point {
		return geom.Point{X: xgrid.Get(y, x), Y: ygrid.Get(y, x)}
	}
	ring := []geom.Point{pt(yi, xi), pt(yi, xi+1), pt(yi+1, xi+1), pt(yi+1, xi), pt(yi, xi)}
	return geom.Polygon{ring}
}

// oobShape is the shapefile record archetype for one out-of-bounds
// point: its Polygon field gives the shapefile geometry, X/Y become
// attribute columns, following the archetype-struct convention
// shp.NewEncoder uses.
type oobShape struct {
	Polygon geom.Polygon
	X, Y    float64
}

// DumpShapefile writes the accumulated records' cell footprints to a
// shapefile at path for offline plotting.
func (d *OOBDiagnostics) DumpShapefile(path string) error {
	logrus.WithFields(logrus.Fields{"path": path, "count": len(d.records)}).
		Info("gridio: writing out-of-bounds diagnostics shapefile")

	enc, err := shp.NewEncoder(path, oobShape{})
	if err != nil {
		return err
	}
	defer enc.Close()
	for _, r := range d.records {
		if err := enc.Encode(oobShape{Polygon: r.Cell, X: r.X, Y: r.Y}); err != nil {
			return err
		}
	}
	return nil
}
