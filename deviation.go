package isopath

import "math"

// Nearest returns the squared distance from pt to the closest point of seg,
// and the parameter of that point.
func (seg Segment) Nearest(pt Point) (distSq, t float64) {
	if seg.Kind == LineKind {
		return seg.Line().Nearest(pt)
	}
	return seg.Cubic().Nearest(pt)
}

// Deviation returns the largest distance between a point of c and the
// closest segment of p. For a path fitted from c, it is at most the
// tolerance used for fitting. It returns +Inf if p is empty and c is not.
func (p SegmentedPath) Deviation(c Contours) float64 {
	var segs []Segment
	var boxes []Rect
	for _, sp := range p.Subpaths {
		for _, seg := range sp.Segments {
			segs = append(segs, seg)
			boxes = append(boxes, seg.BoundingBox())
		}
	}
	worst := 0.0
	for sp := range c.All() {
		for _, pt := range sp.Points {
			best := math.Inf(1)
			for i, seg := range segs {
				if rectDistance(boxes[i], pt) >= best {
					continue
				}
				d2, _ := seg.Nearest(pt)
				best = min(best, math.Sqrt(d2))
			}
			worst = max(worst, best)
		}
	}
	return worst
}

func rectDistance(r Rect, pt Point) float64 {
	dx := max(r.X0-pt.X, 0, pt.X-r.X1)
	dy := max(r.Y0-pt.Y, 0, pt.Y-r.Y1)
	return math.Hypot(dx, dy)
}
