// Package geojson reads isopath geometries from GeoJSON documents.
package geojson

import (
	"encoding/json"
	"fmt"

	gj "github.com/paulmach/go.geojson"
	"honnef.co/go/isopath"
)

// Feature is a decoded GeoJSON feature. Geometry is nil for features with a
// null geometry.
type Feature struct {
	ID         any
	Properties map[string]any
	Geometry   isopath.Geometry
}

// UnknownTypeError is returned for GeoJSON objects whose type has no isopath
// equivalent.
type UnknownTypeError struct {
	Type string
}

func (err *UnknownTypeError) Error() string {
	return fmt.Sprintf("geojson: unknown type %q", err.Type)
}

// InvalidPositionError is returned for positions with fewer than two
// coordinates.
type InvalidPositionError struct {
	Position []float64
}

func (err *InvalidPositionError) Error() string {
	return fmt.Sprintf("geojson: invalid position %v", err.Position)
}

// Decode parses a FeatureCollection, a single Feature or a bare geometry.
// A bare geometry is returned as a single feature without ID or
// properties.
func Decode(data []byte) ([]Feature, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := gj.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		out := make([]Feature, 0, len(fc.Features))
		for i, f := range fc.Features {
			feat, err := fromFeature(f)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			out = append(out, feat)
		}
		return out, nil
	case "Feature":
		f, err := gj.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		feat, err := fromFeature(f)
		if err != nil {
			return nil, err
		}
		return []Feature{feat}, nil
	default:
		g, err := gj.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		geom, err := FromGeometry(g)
		if err != nil {
			return nil, err
		}
		return []Feature{{Geometry: geom}}, nil
	}
}

// Geometries returns the non-nil geometries of features, in order.
func Geometries(features []Feature) []isopath.Geometry {
	out := make([]isopath.Geometry, 0, len(features))
	for _, f := range features {
		if f.Geometry != nil {
			out = append(out, f.Geometry)
		}
	}
	return out
}

func fromFeature(f *gj.Feature) (Feature, error) {
	out := Feature{ID: f.ID, Properties: f.Properties}
	if f.Geometry == nil {
		return out, nil
	}
	g, err := FromGeometry(f.Geometry)
	if err != nil {
		return Feature{}, err
	}
	out.Geometry = g
	return out, nil
}

// FromGeometry converts a GeoJSON geometry. Polygon rings become
// [isopath.LinearRing] values, keeping the repeated closing position.
// Coordinates beyond the second (altitude) are ignored.
func FromGeometry(g *gj.Geometry) (isopath.Geometry, error) {
	if g == nil {
		return nil, &UnknownTypeError{Type: "null"}
	}
	switch g.Type {
	case gj.GeometryPoint:
		if len(g.Point) == 0 {
			return isopath.PointGeometry{Empty: true}, nil
		}
		pt, err := position(g.Point)
		if err != nil {
			return nil, err
		}
		return isopath.PointGeometry{Point: pt}, nil
	case gj.GeometryMultiPoint:
		pts, err := positions(g.MultiPoint)
		if err != nil {
			return nil, err
		}
		return isopath.MultiPoint{Points: pts}, nil
	case gj.GeometryLineString:
		pts, err := positions(g.LineString)
		if err != nil {
			return nil, err
		}
		return isopath.LineString{Points: pts}, nil
	case gj.GeometryMultiLineString:
		lines := make([]isopath.LineString, len(g.MultiLineString))
		for i, l := range g.MultiLineString {
			pts, err := positions(l)
			if err != nil {
				return nil, err
			}
			lines[i] = isopath.LineString{Points: pts}
		}
		return isopath.MultiLineString{Lines: lines}, nil
	case gj.GeometryPolygon:
		return polygon(g.Polygon)
	case gj.GeometryMultiPolygon:
		polys := make([]isopath.Polygon, len(g.MultiPolygon))
		for i, rings := range g.MultiPolygon {
			p, err := polygon(rings)
			if err != nil {
				return nil, err
			}
			polys[i] = p
		}
		return isopath.MultiPolygon{Polygons: polys}, nil
	case gj.GeometryCollection:
		geoms := make([]isopath.Geometry, len(g.Geometries))
		for i, sub := range g.Geometries {
			geom, err := FromGeometry(sub)
			if err != nil {
				return nil, err
			}
			geoms[i] = geom
		}
		return isopath.GeometryCollection{Geometries: geoms}, nil
	default:
		return nil, &UnknownTypeError{Type: string(g.Type)}
	}
}

func polygon(rings [][][]float64) (isopath.Polygon, error) {
	var p isopath.Polygon
	for i, r := range rings {
		pts, err := positions(r)
		if err != nil {
			return isopath.Polygon{}, err
		}
		if i == 0 {
			p.Exterior = isopath.LinearRing{Points: pts}
		} else {
			p.Holes = append(p.Holes, isopath.LinearRing{Points: pts})
		}
	}
	return p, nil
}

func positions(coords [][]float64) ([]isopath.Point, error) {
	if len(coords) == 0 {
		return nil, nil
	}
	pts := make([]isopath.Point, len(coords))
	for i, c := range coords {
		pt, err := position(c)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

func position(c []float64) (isopath.Point, error) {
	if len(c) < 2 {
		return isopath.Point{}, &InvalidPositionError{Position: c}
	}
	return isopath.Pt(c[0], c[1]), nil
}
