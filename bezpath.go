package isopath

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

// PathElement is a pen command. For MoveTo and LineTo, P0 is the target.
// For CubicTo, P0 and P1 are the control points and P2 is the target.
//
// A valid sequence has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Renderer consumes pen commands. [BezPath] is a Renderer that records
// them; SVG, canvas or PDF backends can implement it directly.
type Renderer interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	CubicTo(p1, p2, p3 Point)
	ClosePath()
}

// Render feeds a sequence of path elements to r.
func Render(r Renderer, seq iter.Seq[PathElement]) {
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			r.MoveTo(el.P0)
		case LineToKind:
			r.LineTo(el.P0)
		case CubicToKind:
			r.CubicTo(el.P0, el.P1, el.P2)
		case ClosePathKind:
			r.ClosePath()
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
}

// BezPath is a recorded sequence of path elements.
type BezPath []PathElement

var _ Renderer = (*BezPath)(nil)

// Push appends a path element.
func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

// MoveTo starts a new subpath at pt.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo draws a line to pt.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo draws a cubic Bézier through control points p1 and p2 to p3.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath closes the current subpath.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// SVG returns the path as SVG path data.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path data to w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
