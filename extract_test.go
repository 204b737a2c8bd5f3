package isopath

import (
	"errors"
	"testing"
)

var (
	square = []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	hole   = []Point{Pt(2, 2), Pt(2, 4), Pt(4, 4), Pt(4, 2), Pt(2, 2)}
)

func TestExtractLinearRing(t *testing.T) {
	c, err := Extract(LinearRing{Points: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 0)}})
	if err != nil {
		t.Fatal(err)
	}
	want := []Subpath{{Points: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, Closed: true}}
	diff(t, want, c.Subpaths)
}

func TestExtractVariants(t *testing.T) {
	line := []Point{Pt(0, 0), Pt(3, 1), Pt(5, 5)}
	line2 := []Point{Pt(-1, -1), Pt(-2, -3)}
	squareRing := Subpath{Points: square[:4], Closed: true}
	holeRing := Subpath{Points: hole[:4], Closed: true}

	tests := []struct {
		name string
		geom Geometry
		want []Subpath
	}{
		{"Point", PointGeometry{Point: Pt(1, 2)}, nil},
		{"MultiPoint", MultiPoint{Points: line}, nil},
		{"LineString", LineString{Points: line}, []Subpath{{Points: line}}},
		{"LinearRing", LinearRing{Points: square}, []Subpath{squareRing}},
		{
			"Polygon",
			Polygon{Exterior: LinearRing{square}, Holes: []LinearRing{{hole}}},
			[]Subpath{squareRing, holeRing},
		},
		{
			"MultiLineString",
			MultiLineString{Lines: []LineString{{line2}, {line}}},
			[]Subpath{{Points: line2}, {Points: line}},
		},
		{
			"MultiPolygon",
			MultiPolygon{Polygons: []Polygon{
				{Exterior: LinearRing{hole}},
				{Exterior: LinearRing{square}, Holes: []LinearRing{{hole}}},
			}},
			[]Subpath{holeRing, squareRing, holeRing},
		},
		{
			"GeometryCollection",
			GeometryCollection{Geometries: []Geometry{
				LineString{line},
				PointGeometry{Point: Pt(9, 9)},
				GeometryCollection{Geometries: []Geometry{
					LinearRing{hole},
					MultiLineString{Lines: []LineString{{line2}}},
				}},
				Polygon{Exterior: LinearRing{square}},
			}},
			[]Subpath{{Points: line}, holeRing, {Points: line2}, squareRing},
		},
		{"pointer", &Polygon{Exterior: LinearRing{square}}, []Subpath{squareRing}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Extract(tt.geom)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, c.Subpaths)
		})
	}
}

func TestExtractPolygonHoleOrder(t *testing.T) {
	holes := []LinearRing{
		{[]Point{Pt(1, 1), Pt(2, 1), Pt(2, 2), Pt(1, 1)}},
		{[]Point{Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 5)}},
		{[]Point{Pt(7, 1), Pt(8, 1), Pt(8, 2), Pt(7, 1)}},
	}
	c, err := Extract(Polygon{Exterior: LinearRing{square}, Holes: holes})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 4 {
		t.Fatalf("got %d subpaths, want 4", c.Len())
	}
	diff(t, square[:4], c.Subpaths[0].Points)
	for i, h := range holes {
		diff(t, h.Points[:3], c.Subpaths[i+1].Points)
	}
	if got, want := c.NumPoints(), 4+3*3; got != want {
		t.Errorf("got %d points, want %d", got, want)
	}
}

func TestExtractEmpty(t *testing.T) {
	geoms := []Geometry{
		PointGeometry{Empty: true},
		MultiPoint{},
		LineString{},
		LinearRing{},
		Polygon{},
		Polygon{Holes: []LinearRing{{}}},
		MultiLineString{},
		MultiLineString{Lines: []LineString{{}, {}}},
		MultiPolygon{},
		MultiPolygon{Polygons: []Polygon{{}}},
		GeometryCollection{},
		GeometryCollection{Geometries: []Geometry{LineString{}, GeometryCollection{}}},
	}
	for _, g := range geoms {
		if !g.IsEmpty() {
			t.Errorf("%s: IsEmpty returned false", g.GeometryType())
		}
		c, err := Extract(g)
		if err != nil {
			t.Errorf("%s: %s", g.GeometryType(), err)
			continue
		}
		if c.Len() != 0 {
			t.Errorf("%s: got %d subpaths, want 0", g.GeometryType(), c.Len())
		}
	}
}

func TestExtractDegenerate(t *testing.T) {
	geoms := []Geometry{
		LineString{[]Point{Pt(1, 1)}},
		LineString{[]Point{Pt(1, 1), Pt(1, 1), Pt(1, 1)}},
		LinearRing{[]Point{Pt(1, 1), Pt(1, 1)}},
		LinearRing{[]Point{Pt(1, 1), Pt(2, 2)}},
		Polygon{Exterior: LinearRing{[]Point{Pt(0, 0)}}},
	}
	for _, g := range geoms {
		c, err := Extract(g)
		if err != nil {
			t.Fatal(err)
		}
		if c.Len() != 0 {
			t.Errorf("%#v: got %v, want no subpaths", g, c.Subpaths)
		}
	}
}

type triangle struct{ a, b, c Point }

func (triangle) GeometryType() GeometryType { return GeometryType(100) }
func (triangle) IsEmpty() bool              { return false }

func TestExtractUnsupported(t *testing.T) {
	bad := triangle{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	geoms := []Geometry{
		bad,
		nil,
		GeometryCollection{Geometries: []Geometry{LineString{square}, bad}},
		GeometryCollection{Geometries: []Geometry{LineString{square}, nil}},
	}
	for _, g := range geoms {
		var c Contours
		c.MoveTo(Pt(5, 5))
		c.LineTo(Pt(6, 6))
		c.Finish()
		before := append([]Subpath(nil), c.Subpaths...)

		err := Extractor{}.ExtractInto(&c, g)
		var uerr *UnsupportedGeometryError
		if !errors.As(err, &uerr) {
			t.Fatalf("got error %v, want UnsupportedGeometryError", err)
		}
		diff(t, before, c.Subpaths)

		got, err := Extract(g)
		if err == nil {
			t.Fatal("expected an error")
		}
		if got.Len() != 0 {
			t.Errorf("got %d subpaths alongside an error", got.Len())
		}
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := Extract(triangle{})
	var uerr *UnsupportedGeometryError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v", err)
	}
	if uerr.Type != GeometryType(100) {
		t.Errorf("got type %v, want GeometryType(100)", uerr.Type)
	}
	if _, ok := uerr.Value.(triangle); !ok {
		t.Errorf("got value %T, want triangle", uerr.Value)
	}
}

func TestExtractCloseTolerance(t *testing.T) {
	nearlyClosed := LineString{[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0.05, 0.05)}}

	c, err := Extract(nearlyClosed)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Subpath{{Points: nearlyClosed.Points}}, c.Subpaths)

	c, err = Extractor{CloseTolerance: 0.1}.Extract(nearlyClosed)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Subpath{{Points: nearlyClosed.Points[:3], Closed: true}}, c.Subpaths)

	c, err = Extractor{CloseTolerance: 0.01}.Extract(nearlyClosed)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Subpath{{Points: nearlyClosed.Points}}, c.Subpaths)

	_, err = Extractor{CloseTolerance: -1}.Extract(nearlyClosed)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
}

func TestExtractDoesNotAliasInput(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 1)}
	c, err := Extract(LineString{pts})
	if err != nil {
		t.Fatal(err)
	}
	c.Subpaths[0].Points[0] = Pt(100, 100)
	if pts[0] != Pt(0, 0) {
		t.Error("modifying the contours modified the geometry")
	}
}
