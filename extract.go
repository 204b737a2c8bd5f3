package isopath

import "math"

// Extractor walks geometry trees and records their boundaries as
// [Contours]. The zero value is ready for use.
type Extractor struct {
	// CloseTolerance, when positive, turns an open LineString whose end
	// points are at most this far apart into a closed subpath, dropping the
	// last point. Zero leaves line strings open.
	CloseTolerance float64
}

// Validate checks the extractor's options.
func (e Extractor) Validate() error {
	if math.IsNaN(e.CloseTolerance) || e.CloseTolerance < 0 || math.IsInf(e.CloseTolerance, 0) {
		return &ConfigurationError{Field: "close tolerance", Value: e.CloseTolerance, Reason: "must be finite and non-negative"}
	}
	return nil
}

// Extract returns the boundary contours of g using the default [Extractor].
//
// Zero-dimensional geometries contribute nothing, line strings contribute
// open subpaths, rings contribute closed subpaths, polygons contribute their
// exterior ring followed by their holes, and collections contribute their
// members in order. Empty and degenerate parts are skipped.
//
// If the tree contains a variant that isn't supported, Extract returns an
// [*UnsupportedGeometryError] and empty contours.
func Extract(g Geometry) (Contours, error) {
	return Extractor{}.Extract(g)
}

// Extract is like the package-level [Extract] but honors e's options.
func (e Extractor) Extract(g Geometry) (Contours, error) {
	var c Contours
	if err := e.ExtractInto(&c, g); err != nil {
		return Contours{}, err
	}
	return c, nil
}

// ExtractInto appends the boundary contours of g to c. On error c is left
// exactly as it was.
func (e Extractor) ExtractInto(c *Contours, g Geometry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	var scratch Contours
	if err := e.walk(&scratch, g); err != nil {
		return err
	}
	scratch.Finish()
	c.Finish()
	c.Subpaths = append(c.Subpaths, scratch.Subpaths...)
	return nil
}

func (e Extractor) walk(c *Contours, g Geometry) error {
	switch g := deref(g).(type) {
	case PointGeometry, MultiPoint:
		// No boundary.
	case LineString:
		e.lineString(c, g.Points)
	case LinearRing:
		ring(c, g.Points)
	case Polygon:
		polygon(c, g)
	case MultiLineString:
		for _, l := range g.Lines {
			e.lineString(c, l.Points)
		}
	case MultiPolygon:
		for _, p := range g.Polygons {
			polygon(c, p)
		}
	case GeometryCollection:
		for _, m := range g.Geometries {
			if err := e.walk(c, m); err != nil {
				return err
			}
		}
	case nil:
		return &UnsupportedGeometryError{}
	default:
		return &UnsupportedGeometryError{Type: g.GeometryType(), Value: g}
	}
	return nil
}

// deref maps pointers to this package's variants to their values. Nil
// pointers become nil.
func deref(g Geometry) Geometry {
	switch p := g.(type) {
	case *PointGeometry:
		if p != nil {
			return *p
		}
	case *MultiPoint:
		if p != nil {
			return *p
		}
	case *LineString:
		if p != nil {
			return *p
		}
	case *LinearRing:
		if p != nil {
			return *p
		}
	case *Polygon:
		if p != nil {
			return *p
		}
	case *MultiLineString:
		if p != nil {
			return *p
		}
	case *MultiPolygon:
		if p != nil {
			return *p
		}
	case *GeometryCollection:
		if p != nil {
			return *p
		}
	default:
		return g
	}
	return nil
}

func (e Extractor) lineString(c *Contours, pts []Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	if e.CloseTolerance > 0 && n > 3 && pts[0].Distance(pts[n-1]) <= e.CloseTolerance {
		ring(c, pts)
		return
	}
	c.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		c.LineTo(pt)
	}
	c.end()
}

// ring emits all but the last point, which closes the ring.
func ring(c *Contours, pts []Point) {
	n := len(pts) - 1
	if n < 2 {
		return
	}
	c.MoveTo(pts[0])
	for _, pt := range pts[1:n] {
		c.LineTo(pt)
	}
	c.Close()
}

func polygon(c *Contours, p Polygon) {
	ring(c, p.Exterior.Points)
	for _, h := range p.Holes {
		ring(c, h.Points)
	}
}
