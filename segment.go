package isopath

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

type SegmentKind int

const (
	// A straight segment from P0 to P1.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier from P0 to P3 with control points P1 and P2.
	CubicKind
)

// Segment is one piece of a fitted subpath. It acts as a tagged union of
// [Line] and [CubicBez], avoiding an allocation per segment.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return "InvalidSegment"
	}
}

func (seg Segment) Start() Point { return seg.P0 }

func (seg Segment) End() Point {
	if seg.Kind == LineKind {
		return seg.P1
	}
	return seg.P3
}

func (seg Segment) Line() Line { return Line{seg.P0, seg.End()} }

// Cubic returns the segment as a cubic Bézier. Lines are raised to cubics
// with control points at a third of their length.
func (seg Segment) Cubic() CubicBez {
	if seg.Kind == LineKind {
		return CubicBez{
			P0: seg.P0,
			P1: seg.P0.Lerp(seg.P1, 1.0/3.0),
			P2: seg.P1.Lerp(seg.P0, 1.0/3.0),
			P3: seg.P1,
		}
	}
	return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
}

func (seg Segment) Eval(t float64) Point {
	if seg.Kind == LineKind {
		return seg.Line().Eval(t)
	}
	return seg.Cubic().Eval(t)
}

func (seg Segment) BoundingBox() Rect {
	if seg.Kind == LineKind {
		return seg.Line().BoundingBox()
	}
	return seg.Cubic().BoundingBox()
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	default:
		return seg
	}
}

// SegmentedSubpath is the fitted form of one [Subpath]. Segments chain end
// to start, beginning at the subpath's first point. A closed subpath's last
// segment ends where the first one starts.
type SegmentedSubpath struct {
	Segments []Segment
	Closed   bool
}

// SegmentedPath is the fitted form of a [Contours], in the same order.
type SegmentedPath struct {
	Subpaths []SegmentedSubpath
}

// NumSegments returns the total number of segments.
func (p SegmentedPath) NumSegments() int {
	n := 0
	for _, sp := range p.Subpaths {
		n += len(sp.Segments)
	}
	return n
}

// Elements returns the path as pen commands. Each subpath starts with a
// MoveTo; closed subpaths end with a ClosePath, which replaces a final
// straight segment since closing draws that line anyway.
func (p SegmentedPath) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, sp := range p.Subpaths {
			if len(sp.Segments) == 0 {
				continue
			}
			if !yield(MoveTo(sp.Segments[0].P0)) {
				return
			}
			segs := sp.Segments
			if sp.Closed && len(segs) > 1 && segs[len(segs)-1].Kind == LineKind {
				segs = segs[:len(segs)-1]
			}
			for _, seg := range segs {
				var el PathElement
				switch seg.Kind {
				case LineKind:
					el = LineTo(seg.P1)
				case CubicKind:
					el = CubicTo(seg.P1, seg.P2, seg.P3)
				default:
					panic(fmt.Sprintf("unhandled case %v", seg.Kind))
				}
				if !yield(el) {
					return
				}
			}
			if sp.Closed {
				if !yield(ClosePath()) {
					return
				}
			}
		}
	}
}

// Render feeds the path to r.
func (p SegmentedPath) Render(r Renderer) {
	Render(r, p.Elements())
}

// BezPath records the path's elements.
func (p SegmentedPath) BezPath() BezPath {
	var bp BezPath
	p.Render(&bp)
	return bp
}

// BoundingBox returns the tight bounding box of all segments, or
// [EmptyRect] for an empty path.
func (p SegmentedPath) BoundingBox() Rect {
	r := EmptyRect
	for _, sp := range p.Subpaths {
		for _, seg := range sp.Segments {
			r = r.Union(seg.BoundingBox())
		}
	}
	return r
}

// Transform returns a copy of p with aff applied to every point.
func (p SegmentedPath) Transform(aff Affine) SegmentedPath {
	out := SegmentedPath{Subpaths: make([]SegmentedSubpath, len(p.Subpaths))}
	for i, sp := range p.Subpaths {
		segs := make([]Segment, len(sp.Segments))
		for j, seg := range sp.Segments {
			segs[j] = seg.Transform(aff)
		}
		out.Subpaths[i] = SegmentedSubpath{Segments: segs, Closed: sp.Closed}
	}
	return out
}

// SVG returns the path as SVG path data.
func (p SegmentedPath) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the path as SVG path data to w.
func (p SegmentedPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
