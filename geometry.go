package isopath

import "fmt"

// GeometryType names a geometry variant.
type GeometryType int

const (
	PointType GeometryType = iota + 1
	MultiPointType
	LineStringType
	LinearRingType
	PolygonType
	MultiLineStringType
	MultiPolygonType
	GeometryCollectionType
)

func (typ GeometryType) String() string {
	switch typ {
	case PointType:
		return "Point"
	case MultiPointType:
		return "MultiPoint"
	case LineStringType:
		return "LineString"
	case LinearRingType:
		return "LinearRing"
	case PolygonType:
		return "Polygon"
	case MultiLineStringType:
		return "MultiLineString"
	case MultiPolygonType:
		return "MultiPolygon"
	case GeometryCollectionType:
		return "GeometryCollection"
	default:
		return fmt.Sprintf("GeometryType(%d)", int(typ))
	}
}

// Geometry is a node of a geometry tree. The variants in this package are
// [PointGeometry], [MultiPoint], [LineString], [LinearRing], [Polygon],
// [MultiLineString], [MultiPolygon] and [GeometryCollection]. Other
// implementations may exist, for example adapters for foreign geometry
// models; [Extract] rejects them with an [UnsupportedGeometryError].
//
// Geometries are never modified by this package and may be shared between
// goroutines.
type Geometry interface {
	GeometryType() GeometryType
	// IsEmpty reports whether the geometry has no coordinates at all.
	IsEmpty() bool
}

var (
	_ Geometry = PointGeometry{}
	_ Geometry = MultiPoint{}
	_ Geometry = LineString{}
	_ Geometry = LinearRing{}
	_ Geometry = Polygon{}
	_ Geometry = MultiLineString{}
	_ Geometry = MultiPolygon{}
	_ Geometry = GeometryCollection{}
)

// PointGeometry is a single position. It has no boundary.
type PointGeometry struct {
	Point Point
	Empty bool
}

type MultiPoint struct {
	Points []Point
}

// LineString is an open sequence of points.
type LineString struct {
	Points []Point
}

// LinearRing is a closed sequence of points. By convention the last point
// repeats the first one.
type LinearRing struct {
	Points []Point
}

// Polygon is an exterior ring with zero or more holes.
type Polygon struct {
	Exterior LinearRing
	Holes    []LinearRing
}

type MultiLineString struct {
	Lines []LineString
}

type MultiPolygon struct {
	Polygons []Polygon
}

// GeometryCollection groups arbitrary geometries, including other collections.
type GeometryCollection struct {
	Geometries []Geometry
}

func (PointGeometry) GeometryType() GeometryType      { return PointType }
func (MultiPoint) GeometryType() GeometryType         { return MultiPointType }
func (LineString) GeometryType() GeometryType         { return LineStringType }
func (LinearRing) GeometryType() GeometryType         { return LinearRingType }
func (Polygon) GeometryType() GeometryType            { return PolygonType }
func (MultiLineString) GeometryType() GeometryType    { return MultiLineStringType }
func (MultiPolygon) GeometryType() GeometryType       { return MultiPolygonType }
func (GeometryCollection) GeometryType() GeometryType { return GeometryCollectionType }

func (g PointGeometry) IsEmpty() bool { return g.Empty }
func (g MultiPoint) IsEmpty() bool    { return len(g.Points) == 0 }
func (g LineString) IsEmpty() bool    { return len(g.Points) == 0 }
func (g LinearRing) IsEmpty() bool    { return len(g.Points) == 0 }

func (g Polygon) IsEmpty() bool {
	if !g.Exterior.IsEmpty() {
		return false
	}
	for _, h := range g.Holes {
		if !h.IsEmpty() {
			return false
		}
	}
	return true
}

func (g MultiLineString) IsEmpty() bool {
	for _, l := range g.Lines {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

func (g MultiPolygon) IsEmpty() bool {
	for _, p := range g.Polygons {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

func (g GeometryCollection) IsEmpty() bool {
	for _, m := range g.Geometries {
		if m != nil && !m.IsEmpty() {
			return false
		}
	}
	return true
}
