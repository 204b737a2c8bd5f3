package isopath

import "math"

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Deriv2 evaluates the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	a := Vec2(c.P2).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P0))
	b := Vec2(c.P3).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P1))
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Extrema returns the parameters in (0, 1) at which x or y reach a local
// extremum, unsorted.
func (c CubicBez) Extrema() ([4]float64, int) {
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := solveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	return out, outN
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	r := NewRectFromPoints(c.P0, c.P3)
	ts, n := c.Extrema()
	for _, t := range ts[:n] {
		r = r.UnionPoint(c.Eval(t))
	}
	return r
}

// Nearest returns the squared distance from pt to the closest point of the
// curve, and the parameter of that point. The curve is sampled and the best
// samples are refined with Newton iterations.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	const samples = 32
	distSq, t = math.Inf(1), 0
	for i := range samples + 1 {
		u := float64(i) / samples
		if d := c.Eval(u).DistanceSquared(pt); d < distSq {
			distSq, t = d, u
		}
	}
	// Refine from the best sample and its neighbours.
	for _, u := range [3]float64{t, max(t-1.0/samples, 0), min(t+1.0/samples, 1)} {
		for range 12 {
			next := newtonRoot(c, pt, u)
			if next == u {
				break
			}
			u = next
		}
		if d := c.Eval(u).DistanceSquared(pt); d < distSq {
			distSq, t = d, u
		}
	}
	return distSq, t
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// solveQuadratic finds real roots of c0 + c1 x + c2 x² = 0. A nearly linear
// equation is solved as linear; the degenerate all-zero equation yields a
// single 0.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
