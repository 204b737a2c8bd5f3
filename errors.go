package isopath

import "fmt"

// UnsupportedGeometryError is returned by [Extract] when a geometry tree
// contains a variant it cannot traverse. Extraction of that tree is
// abandoned.
type UnsupportedGeometryError struct {
	// Type is the variant reported by the geometry, or 0 for a nil member.
	Type GeometryType
	// Value is the offending geometry.
	Value Geometry
}

func (err *UnsupportedGeometryError) Error() string {
	if err.Value == nil {
		return "isopath: unsupported geometry: nil"
	}
	return fmt.Sprintf("isopath: unsupported geometry %T (%s)", err.Value, err.Type)
}

// ConfigurationError reports an invalid fitting or extraction option. It is
// returned before any work has been done.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("isopath: invalid %s %v: %s", err.Field, err.Value, err.Reason)
}

// InvalidPointError reports an input point with an infinite or NaN
// coordinate. No segments are produced for its polyline.
type InvalidPointError struct {
	// Index is the position of the point within its polyline.
	Index int
	Point Point
}

func (err *InvalidPointError) Error() string {
	return fmt.Sprintf("isopath: invalid point %d: %s", err.Index, err.Point)
}
