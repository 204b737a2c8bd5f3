package isopath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// distanceToSegment returns the distance from pt to the closest point of seg.
// Cubics are sampled densely and the best sample is refined with Newton
// iterations.
func distanceToSegment(seg Segment, pt Point) float64 {
	if seg.Kind == LineKind {
		d2, _ := seg.Line().Nearest(pt)
		return math.Sqrt(d2)
	}
	c := seg.Cubic()
	const n = 512
	best, bestT := math.Inf(1), 0.0
	for i := range n + 1 {
		ts := float64(i) / n
		if d := c.Eval(ts).Distance(pt); d < best {
			best, bestT = d, ts
		}
	}
	ts := bestT
	for range 8 {
		ts = newtonRoot(c, pt, ts)
		best = min(best, c.Eval(ts).Distance(pt))
	}
	return best
}

func distanceToSegments(segs []Segment, pt Point) float64 {
	best := math.Inf(1)
	for _, seg := range segs {
		best = min(best, distanceToSegment(seg, pt))
	}
	return best
}

func distanceToPolyline(pts []Point, closed bool, pt Point) float64 {
	best := math.Inf(1)
	for i := range pts {
		j := i + 1
		if j == len(pts) {
			if !closed {
				break
			}
			j = 0
		}
		d2, _ := Line{pts[i], pts[j]}.Nearest(pt)
		best = min(best, d2)
	}
	return math.Sqrt(best)
}

// assertFollowsPolyline checks that no part of the fitted segments is more
// than tol away from the input polyline.
func assertFollowsPolyline(t *testing.T, segs []Segment, pts []Point, closed bool, tol float64) {
	t.Helper()
	const n = 64
	for i, seg := range segs {
		for j := range n + 1 {
			ts := float64(j) / n
			pt := seg.Eval(ts)
			if d := distanceToPolyline(pts, closed, pt); d > tol*(1+1e-6)+1e-9 {
				t.Errorf("segment %d %s at t=%g is %g away from the polyline, tolerance %g", i, seg, ts, d, tol)
				break
			}
		}
	}
}

// assertChained checks that segments connect end to start, begin at the first
// point and, for closed input, return to it.
func assertChained(t *testing.T, segs []Segment, first Point, closed bool) {
	t.Helper()
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	if segs[0].Start() != first {
		t.Errorf("first segment starts at %s, want %s", segs[0].Start(), first)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Start() != segs[i-1].End() {
			t.Errorf("segment %d starts at %s, previous ends at %s", i, segs[i].Start(), segs[i-1].End())
		}
	}
	if closed {
		if end := segs[len(segs)-1].End(); end != first {
			t.Errorf("closed subpath ends at %s, want %s", end, first)
		}
	}
}

func circlePoints(center Point, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Pt(center.X+r*c, center.Y+r*s)
	}
	return pts
}

func sinePoints(n int, amplitude, period float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		x := float64(i)
		pts[i] = Pt(x, amplitude*math.Sin(2*math.Pi*x/period))
	}
	return pts
}
