package isopath_test

import (
	"context"
	"fmt"
	"math"
	"os"

	"honnef.co/go/isopath"
)

func ExampleSmooth() {
	g := isopath.Polygon{
		Exterior: isopath.LinearRing{Points: []isopath.Point{
			isopath.Pt(0, 0), isopath.Pt(10, 0), isopath.Pt(10, 10), isopath.Pt(0, 10), isopath.Pt(0, 0),
		}},
		Holes: []isopath.LinearRing{{Points: []isopath.Point{
			isopath.Pt(2, 2), isopath.Pt(2, 4), isopath.Pt(4, 4), isopath.Pt(4, 2), isopath.Pt(2, 2),
		}}},
	}
	p, err := isopath.Smooth(g, isopath.DefaultFitOptions())
	if err != nil {
		panic(err)
	}
	p.WriteSVG(os.Stdout, isopath.SVGOptions{})
	fmt.Println()
	// Output:
	// M0,0 L10,0 L10,10 L0,10 Z M2,2 L2,4 L4,4 L4,2 Z
}

func ExampleFitSubpath() {
	pts := []isopath.Point{
		isopath.Pt(0, 0), isopath.Pt(2, 2), isopath.Pt(2, 2), isopath.Pt(5, 5), isopath.Pt(10, 10),
	}
	segs, err := isopath.FitSubpath(pts, false, isopath.DefaultFitOptions())
	if err != nil {
		panic(err)
	}
	fmt.Println(segs)
	// Output:
	// [Line((0, 0), (10, 10))]
}

func ExampleFitSubpath_circle() {
	var pts []isopath.Point
	for i := range 72 {
		s, c := math.Sincos(2 * math.Pi * float64(i) / 72)
		pts = append(pts, isopath.Pt(100*c, 100*s))
	}
	segs, err := isopath.FitSubpath(pts, true, isopath.FitOptions{Tolerance: 0.25, CornerAngle: 40, Refinements: 2})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d points, at most 8 segments: %t\n", len(pts), len(segs) <= 8)
	// Output:
	// 72 points, at most 8 segments: true
}

func ExampleFitAll() {
	geoms := []isopath.Geometry{
		isopath.LineString{Points: []isopath.Point{isopath.Pt(0, 0), isopath.Pt(1, 0), isopath.Pt(2, 0)}},
		isopath.MultiLineString{Lines: []isopath.LineString{
			{Points: []isopath.Point{isopath.Pt(0, 0), isopath.Pt(0, 3)}},
			{Points: []isopath.Point{isopath.Pt(5, 5), isopath.Pt(6, 6)}},
		}},
	}
	paths, err := isopath.FitAll(context.Background(), isopath.Extractor{}, geoms, isopath.DefaultFitOptions(), 2)
	if err != nil {
		panic(err)
	}
	for _, p := range paths {
		fmt.Println(p.SVG(isopath.SVGOptions{MaxPrecision: 3}))
	}
	// Output:
	// M0,0 L2,0
	// M0,0 L0,3 M5,5 L6,6
}
