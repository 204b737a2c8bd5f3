package isopath

import (
	"fmt"
	"math"
)

// FitOptions controls how polylines are approximated by Bézier curves.
type FitOptions struct {
	// Tolerance is the maximum distance, in input units, between any input
	// point and the fitted curve. Must be positive.
	Tolerance float64
	// CornerAngle, in degrees, is the turning angle above which a vertex is
	// treated as a corner. Corners are kept sharp; no curve is fitted across
	// them. Must be in (0, 180).
	CornerAngle float64
	// Refinements is the number of Newton-Raphson reparameterization passes
	// tried on a nearly fitting curve before the range is split.
	Refinements int
	// MaxDepth limits how often a range may be split. Ranges at the limit are
	// drawn as straight segments through their points. Zero means no limit.
	MaxDepth int
}

// DefaultFitOptions returns the options used by the command line tool when
// nothing else is configured.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Tolerance:   0.5,
		CornerAngle: 40,
		Refinements: 1,
	}
}

// Validate returns a [*ConfigurationError] describing the first invalid
// option, if any.
func (opts FitOptions) Validate() error {
	switch {
	case !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 1):
		return &ConfigurationError{Field: "tolerance", Value: opts.Tolerance, Reason: "must be positive and finite"}
	case !(opts.CornerAngle > 0 && opts.CornerAngle < 180):
		return &ConfigurationError{Field: "corner angle", Value: opts.CornerAngle, Reason: "must be in (0, 180) degrees"}
	case opts.Refinements < 0:
		return &ConfigurationError{Field: "refinements", Value: opts.Refinements, Reason: "must not be negative"}
	case opts.MaxDepth < 0:
		return &ConfigurationError{Field: "max depth", Value: opts.MaxDepth, Reason: "must not be negative"}
	}
	return nil
}

// FitSubpath approximates a polyline with lines and cubic Béziers such that
// every input point lies within opts.Tolerance of the result.
//
// The polyline is first cut at its corners, vertices where the direction
// changes by more than opts.CornerAngle. Each run between corners is fitted
// independently using the least-squares method described in Philip J.
// Schneider's "An Algorithm for Automatically Fitting Digitized Curves"
// (Graphics Gems, 1990): chord-length parameterization, a cubic constrained
// to the end tangents, Newton-Raphson reparameterization, and subdivision at
// the point of maximum error with a shared tangent. As in the paper,
// reparameterization is only tried while the error is at most four times
// opts.Tolerance; worse fits are split right away. A curve is accepted only
// if it also stays within opts.Tolerance of the polyline itself.
//
// For a closed polyline, the result starts and ends at points[0] and
// includes the closing edge. Runs of fewer than three points, and runs that
// stay within tolerance of their chord, become straight segments. Duplicate
// consecutive points are ignored; a polyline with fewer than two distinct
// points yields no segments.
//
// A point with an infinite or NaN coordinate is reported as an
// [*InvalidPointError]. The result is deterministic and never aliases points.
func FitSubpath(points []Point, closed bool, opts FitOptions) ([]Segment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkFinite(points); err != nil {
		return nil, err
	}
	return fitSubpath(points, closed, opts), nil
}

// FitContours fits every subpath of c, preserving their order. Errors about
// invalid points are wrapped with the index of their subpath.
func FitContours(c Contours, opts FitOptions) (SegmentedPath, error) {
	if err := opts.Validate(); err != nil {
		return SegmentedPath{}, err
	}
	out := SegmentedPath{Subpaths: make([]SegmentedSubpath, 0, len(c.Subpaths))}
	for i, sp := range c.Subpaths {
		if err := checkFinite(sp.Points); err != nil {
			return SegmentedPath{}, fmt.Errorf("subpath %d: %w", i, err)
		}
		segs := fitSubpath(sp.Points, sp.Closed, opts)
		if len(segs) == 0 {
			continue
		}
		out.Subpaths = append(out.Subpaths, SegmentedSubpath{Segments: segs, Closed: sp.Closed})
	}
	return out, nil
}

// Smooth extracts the boundary contours of g and fits them.
func Smooth(g Geometry, opts FitOptions) (SegmentedPath, error) {
	return SmoothWith(Extractor{}, g, opts)
}

// SmoothWith is like [Smooth] but uses the given extractor.
func SmoothWith(e Extractor, g Geometry, opts FitOptions) (SegmentedPath, error) {
	if err := opts.Validate(); err != nil {
		return SegmentedPath{}, err
	}
	c, err := e.Extract(g)
	if err != nil {
		return SegmentedPath{}, err
	}
	return FitContours(c, opts)
}

func fitSubpath(points []Point, closed bool, opts FitOptions) []Segment {
	pts := dedupe(points, closed)
	switch len(pts) {
	case 0, 1:
		if len(points) > 0 {
			Logger().Debug("isopath: dropping degenerate subpath", "points", len(points))
		}
		return nil
	case 2:
		if closed {
			return []Segment{Line{pts[0], pts[1]}.Seg(), Line{pts[1], pts[0]}.Seg()}
		}
		return []Segment{Line{pts[0], pts[1]}.Seg()}
	}
	if closed {
		pts = append(pts, pts[0])
	}
	n := len(pts)

	// After dedupe every edge has a direction.
	dirs := make([]Vec2, n-1)
	for i := range dirs {
		dirs[i], _ = pts[i+1].Sub(pts[i]).Unit()
	}

	threshold := opts.CornerAngle * math.Pi / 180
	breaks := []int{0}
	for i := 1; i < n-1; i++ {
		if turnAngle(dirs[i-1], dirs[i]) > threshold {
			breaks = append(breaks, i)
		}
	}
	breaks = append(breaks, n-1)

	// A closed polyline always starts a run at its first point. Unless that
	// point is a corner, both runs meeting there share a tangent.
	var joinTangent Vec2
	smoothJoin := false
	if closed && turnAngle(dirs[n-2], dirs[0]) <= threshold {
		joinTangent, smoothJoin = pts[1].Sub(pts[n-2]).Unit()
	}

	f := fitter{pts: pts, opts: opts}
	for k := 1; k < len(breaks); k++ {
		first, last := breaks[k-1], breaks[k]
		t1 := dirs[first]
		t2 := dirs[last-1].Negate()
		if smoothJoin && first == 0 {
			t1 = joinTangent
		}
		if smoothJoin && last == n-1 {
			t2 = joinTangent.Negate()
		}
		f.fitRun(first, last, t1, t2)
	}
	Logger().Debug("isopath: fitted subpath",
		"points", n, "closed", closed, "corners", len(breaks)-2, "segments", len(f.out))
	return f.out
}

func checkFinite(points []Point) error {
	for i, pt := range points {
		if !pt.IsFinite() {
			return &InvalidPointError{Index: i, Point: pt}
		}
	}
	return nil
}

// dedupe returns a copy of points without consecutive points too close to
// have a direction between them. For closed input, trailing points that
// coincide with the first point are dropped as well.
func dedupe(points []Point, closed bool) []Point {
	out := make([]Point, 0, len(points)+1)
	for _, pt := range points {
		if len(out) > 0 {
			if _, ok := pt.Sub(out[len(out)-1]).Unit(); !ok {
				continue
			}
		}
		out = append(out, pt)
	}
	if closed {
		for len(out) > 1 {
			if _, ok := out[0].Sub(out[len(out)-1]).Unit(); ok {
				break
			}
			out = out[:len(out)-1]
		}
	}
	return out
}

type fitTask struct {
	first, last int
	// Unit tangents at the ends, both pointing into the range.
	t1, t2 Vec2
	depth  int
}

type fitter struct {
	pts  []Point
	opts FitOptions
	out  []Segment
}

// fitRun fits pts[first:last+1], splitting with an explicit stack. The right
// half of a split is pushed first so ranges are emitted in order. Split
// points are strictly inside their range, so the loop terminates.
func (f *fitter) fitRun(first, last int, t1, t2 Vec2) {
	tol := f.opts.Tolerance
	stack := []fitTask{{first: first, last: last, t1: t1, t2: t2}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.last-task.first == 1 {
			f.out = append(f.out, Line{f.pts[task.first], f.pts[task.last]}.Seg())
			continue
		}
		if _, ok := f.pts[task.last].Sub(f.pts[task.first]).Unit(); !ok {
			// A closed loop without corners. No single cubic can start and
			// end at the same point, so cut it at its farthest point.
			split := f.farthest(task.first, task.last)
			left, right := f.centerTangents(split)
			stack = append(stack,
				fitTask{first: split, last: task.last, t1: right, t2: task.t2, depth: task.depth + 1},
				fitTask{first: task.first, last: split, t1: task.t1, t2: left, depth: task.depth + 1},
			)
			continue
		}
		if f.withinChord(task.first, task.last) {
			f.out = append(f.out, Line{f.pts[task.first], f.pts[task.last]}.Seg())
			continue
		}
		if f.opts.MaxDepth > 0 && task.depth >= f.opts.MaxDepth {
			f.polyline(task.first, task.last)
			continue
		}

		u := f.chordLengthParams(task.first, task.last)
		bez, ok := f.generateBezier(task, u)
		if !ok {
			Logger().Debug("isopath: degenerate range, using straight segments",
				"first", task.first, "last", task.last)
			f.polyline(task.first, task.last)
			continue
		}
		maxErr, split := f.check(task.first, task.last, bez, u)
		if maxErr <= tol {
			f.out = append(f.out, bez.Seg())
			continue
		}
		if maxErr <= 4*tol {
			accepted := false
			for range f.opts.Refinements {
				f.reparameterize(task.first, bez, u)
				if bez, ok = f.generateBezier(task, u); !ok {
					break
				}
				maxErr, split = f.check(task.first, task.last, bez, u)
				if maxErr <= tol {
					accepted = true
					break
				}
			}
			if accepted {
				f.out = append(f.out, bez.Seg())
				continue
			}
		}

		left, right := f.centerTangents(split)
		stack = append(stack,
			fitTask{first: split, last: task.last, t1: right, t2: task.t2, depth: task.depth + 1},
			fitTask{first: task.first, last: split, t1: task.t1, t2: left, depth: task.depth + 1},
		)
	}
}

// farthest returns the interior point of the range farthest from its first
// point.
func (f *fitter) farthest(first, last int) int {
	best, bestD2 := (first+last)/2, -1.0
	for i := first + 1; i < last; i++ {
		if d2 := f.pts[i].DistanceSquared(f.pts[first]); d2 > bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best
}

// polyline emits straight segments through every point of the range.
func (f *fitter) polyline(first, last int) {
	for i := first; i < last; i++ {
		f.out = append(f.out, Line{f.pts[i], f.pts[i+1]}.Seg())
	}
}

// withinChord reports whether all points of the range lie within tolerance
// of the straight segment between its ends.
func (f *fitter) withinChord(first, last int) bool {
	chord := Line{f.pts[first], f.pts[last]}
	tol2 := f.opts.Tolerance * f.opts.Tolerance
	for i := first + 1; i < last; i++ {
		if d2, _ := chord.Nearest(f.pts[i]); d2 > tol2 {
			return false
		}
	}
	return true
}

// chordLengthParams assigns each point of the range its relative distance
// along the polyline.
func (f *fitter) chordLengthParams(first, last int) []float64 {
	u := make([]float64, last-first+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + f.pts[i].Distance(f.pts[i-1])
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	u[len(u)-1] = 1
	return u
}

// generateBezier finds the cubic with the given end points and end tangent
// directions whose control arm lengths minimize the squared distance to the
// points at parameters u. When the least-squares system is singular or
// yields arm lengths that are not positive or exceed twice the chord, it
// falls back to arms of a third of the chord.
func (f *fitter) generateBezier(task fitTask, u []float64) (CubicBez, bool) {
	p0 := f.pts[task.first]
	p3 := f.pts[task.last]
	t1, t2 := task.t1, task.t2

	var c00, c01, c11, x0, x1 float64
	for i, ui := range u {
		b0, b1, b2, b3 := bernstein(ui)
		a0 := t1.Mul(b1)
		a1 := t2.Mul(b2)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)
		fixed := Vec2(p0).Mul(b0 + b1).Add(Vec2(p3).Mul(b2 + b3))
		tmp := Vec2(f.pts[task.first+i]).Sub(fixed)
		x0 += a0.Dot(tmp)
		x1 += a1.Dot(tmp)
	}

	segLength := p3.Distance(p0)
	if !(segLength > 0) {
		return CubicBez{}, false
	}
	var alpha1, alpha2 float64
	det := c00*c11 - c01*c01
	if math.Abs(det) > 1e-12*c00*c11 {
		alpha1 = (x0*c11 - x1*c01) / det
		alpha2 = (c00*x1 - c01*x0) / det
	}
	epsilon := 1e-6 * segLength
	if !(alpha1 >= epsilon && alpha1 <= 2*segLength) || !(alpha2 >= epsilon && alpha2 <= 2*segLength) {
		alpha1 = segLength / 3
		alpha2 = segLength / 3
	}
	return CubicBez{
		P0: p0,
		P1: p0.Translate(t1.Mul(alpha1)),
		P2: p3.Translate(t2.Mul(alpha2)),
		P3: p3,
	}, true
}

func bernstein(t float64) (b0, b1, b2, b3 float64) {
	mt := 1 - t
	return mt * mt * mt, 3 * t * mt * mt, 3 * t * t * mt, t * t * t
}

// maxError returns the largest distance between an interior point and the
// curve at that point's parameter, and the index of that point. The index is
// always strictly inside the range.
func (f *fitter) maxError(first, last int, bez CubicBez, u []float64) (float64, int) {
	split := (first + last) / 2
	maxDist := 0.0
	for i := first + 1; i < last; i++ {
		d := bez.Eval(u[i-first]).Distance(f.pts[i])
		if math.IsNaN(d) {
			return math.Inf(1), i
		}
		if d > maxDist {
			maxDist = d
			split = i
		}
	}
	return maxDist, split
}

// check returns the error of bez as a fit for the range and the index at
// which to split if it is too large. Points must lie close to the curve at
// their parameters, and the curve must lie close to the polyline.
func (f *fitter) check(first, last int, bez CubicBez, u []float64) (float64, int) {
	maxErr, split := f.maxError(first, last, bez, u)
	if maxErr > f.opts.Tolerance {
		return maxErr, split
	}
	if d, i := f.stray(first, last, bez, u); d > f.opts.Tolerance {
		return d, i
	}
	return maxErr, split
}

// stray returns an upper bound on the distance from bez to the polyline of
// the range, and the interior index closest in parameter to where the curve
// strays farthest.
//
// The curve is sampled densely enough that between samples it moves by at
// most margin, so a sample distance d bounds the distance of its neighbourhood
// by d+margin.
func (f *fitter) stray(first, last int, bez CubicBez, u []float64) (float64, int) {
	tol := f.opts.Tolerance
	maxDelta := max(bez.P1.Distance(bez.P0), bez.P2.Distance(bez.P1), bez.P3.Distance(bez.P2))
	samples := min(max(int(math.Ceil(15*maxDelta/tol)), 4*(last-first)+8), 4096)
	// |Q'| <= 3*maxDelta, and no point is farther than half a step from a
	// sample.
	margin := 1.5 * maxDelta / float64(samples)
	limit := tol - margin

	worst, worstT := 0.0, 0.5
	edge := first
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		pt := bez.Eval(t)
		if !pt.IsFinite() {
			return math.Inf(1), f.closestParam(first, last, u, t)
		}
		for edge < last-1 && u[edge+1-first] < t {
			edge++
		}
		if d := f.distanceToRange(first, last, edge, pt, limit); d > worst {
			worst, worstT = d, t
		}
	}
	return worst + margin, f.closestParam(first, last, u, worstT)
}

// distanceToRange returns the distance from pt to the polyline of the range,
// searching outwards from the edge starting at pts[start]. It stops early at
// the first edge closer than limit.
func (f *fitter) distanceToRange(first, last, start int, pt Point, limit float64) float64 {
	limit2 := -1.0
	if limit > 0 {
		limit2 = limit * limit
	}
	best := math.Inf(1)
	for off := 0; ; off++ {
		hi, lo := start+off, start-off-1
		if hi >= last && lo < first {
			break
		}
		for _, k := range [2]int{hi, lo} {
			if k < first || k >= last {
				continue
			}
			d2, _ := Line{f.pts[k], f.pts[k+1]}.Nearest(pt)
			best = min(best, d2)
		}
		if best <= limit2 {
			break
		}
	}
	return math.Sqrt(best)
}

// closestParam returns the interior index whose parameter is closest to t.
func (f *fitter) closestParam(first, last int, u []float64, t float64) int {
	best, bestD := (first+last)/2, math.Inf(1)
	for i := first + 1; i < last; i++ {
		if d := math.Abs(u[i-first] - t); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// reparameterize improves u in place with one Newton-Raphson step per
// interior point towards the closest point on bez.
func (f *fitter) reparameterize(first int, bez CubicBez, u []float64) {
	for i := 1; i < len(u)-1; i++ {
		u[i] = newtonRoot(bez, f.pts[first+i], u[i])
	}
}

func newtonRoot(bez CubicBez, pt Point, u float64) float64 {
	d := bez.Eval(u).Sub(pt)
	q1 := bez.Deriv(u)
	q2 := bez.Deriv2(u)
	num := d.Dot(q1)
	den := q1.Dot(q1) + d.Dot(q2)
	if den == 0 {
		return u
	}
	next := u - num/den
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return u
	}
	return min(max(next, 0), 1)
}

// centerTangents returns the tangents at a split point: the end tangent of
// the left half and the start tangent of the right half. They are opposite
// each other, keeping the curve smooth, unless the neighbours coincide.
func (f *fitter) centerTangents(i int) (left, right Vec2) {
	if c, ok := f.pts[i-1].Sub(f.pts[i+1]).Unit(); ok {
		return c, c.Negate()
	}
	left, _ = f.pts[i-1].Sub(f.pts[i]).Unit()
	right, _ = f.pts[i+1].Sub(f.pts[i]).Unit()
	return left, right
}
