package isopath

import (
	"iter"
	"slices"
)

// Subpath is one polyline of a [Contours]. A closed subpath is a ring: its
// last point connects back to the first, which is not repeated.
type Subpath struct {
	Points []Point
	Closed bool
}

// Degenerate reports whether the subpath has fewer than two distinct points
// and therefore no extent to draw.
func (sp Subpath) Degenerate() bool {
	for _, pt := range sp.Points[min(1, len(sp.Points)):] {
		if pt != sp.Points[0] {
			return false
		}
	}
	return true
}

// Contours is an ordered collection of subpaths, built with pen commands
// like a path. The order of subpaths is the order in which they were
// started; for polygons this places the exterior ring before its holes.
//
// The zero value is an empty collection ready for use.
type Contours struct {
	Subpaths []Subpath
	// pending is true while the last subpath may still be extended.
	pending bool
}

// MoveTo starts a new subpath at pt. A previous subpath that never got past
// its first point is discarded.
func (c *Contours) MoveTo(pt Point) {
	c.dropDegenerateTail()
	c.Subpaths = append(c.Subpaths, Subpath{Points: []Point{pt}})
	c.pending = true
}

// LineTo extends the current subpath to pt. Without a current subpath it
// behaves like MoveTo.
func (c *Contours) LineTo(pt Point) {
	if !c.pending {
		c.MoveTo(pt)
		return
	}
	sp := &c.Subpaths[len(c.Subpaths)-1]
	sp.Points = append(sp.Points, pt)
}

// Close marks the current subpath as a ring and ends it.
func (c *Contours) Close() {
	if !c.pending {
		return
	}
	c.Subpaths[len(c.Subpaths)-1].Closed = true
	c.end()
}

// Finish ends the current subpath and drops every degenerate subpath.
func (c *Contours) Finish() {
	c.pending = false
	c.Subpaths = slices.DeleteFunc(c.Subpaths, Subpath.Degenerate)
}

// end ends the current subpath, leaving it open.
func (c *Contours) end() {
	c.pending = false
	c.dropDegenerateTail()
}

func (c *Contours) dropDegenerateTail() {
	if n := len(c.Subpaths); n > 0 && c.Subpaths[n-1].Degenerate() {
		c.Subpaths = c.Subpaths[:n-1]
		c.pending = false
	}
}

// Len returns the number of subpaths.
func (c Contours) Len() int { return len(c.Subpaths) }

// NumPoints returns the total number of points over all subpaths.
func (c Contours) NumPoints() int {
	n := 0
	for _, sp := range c.Subpaths {
		n += len(sp.Points)
	}
	return n
}

// All returns an iterator over the subpaths in order.
func (c Contours) All() iter.Seq[Subpath] {
	return slices.Values(c.Subpaths)
}

// BoundingBox returns the bounding box of all points, or [EmptyRect].
func (c Contours) BoundingBox() Rect {
	r := EmptyRect
	for _, sp := range c.Subpaths {
		for _, pt := range sp.Points {
			r = r.UnionPoint(pt)
		}
	}
	return r
}
