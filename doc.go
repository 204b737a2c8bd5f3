// Package isopath turns polygonal boundaries, such as isolines or frontiers
// contoured from a gridded scalar field, into compact smooth paths made of
// lines and cubic Béziers, ready to be drawn as SVG.
//
// # Pipeline
//
// The work happens in two steps:
//
//   - [Extract] walks a [Geometry] tree and records its boundaries as
//     [Contours]: ordered polylines, each open or closed.
//   - [FitContours] approximates every polyline with as few segments as it
//     can while staying within a tolerance of every input point, producing a
//     [SegmentedPath].
//
// [Smooth] combines both. [FitAll] processes many geometries in parallel.
//
// A SegmentedPath can be converted to pen commands with
// [SegmentedPath.Elements], fed to any [Renderer], or written as SVG path
// data with [SegmentedPath.WriteSVG]. The svgdoc subpackage assembles
// complete SVG documents, the geojson subpackage reads geometries from
// GeoJSON, and the config subpackage loads options from TOML or YAML.
//
// # Geometries
//
// Supported variants are [PointGeometry] and [MultiPoint] (which have no
// boundary and are skipped), [LineString], [LinearRing], [Polygon],
// [MultiLineString], [MultiPolygon] and [GeometryCollection]. Polygons
// contribute their exterior ring before their holes, so that renderers using
// the even-odd fill rule draw holes correctly. Any other implementation of
// Geometry makes extraction fail with an [UnsupportedGeometryError].
//
// # Fitting
//
// Fitting follows Philip J. Schneider's algorithm from Graphics Gems, with
// two additions. Vertices where the polyline turns by more than
// [FitOptions.CornerAngle] are kept as sharp corners, and the subdivision is
// driven by an explicit work stack instead of recursion. Straight runs come
// out as line segments.
//
// Degenerate input, such as repeated points, never causes an error: it is
// either dropped (a polyline with a single distinct point) or drawn with
// straight segments. Such decisions are logged at debug level; see
// [SetLogger].
//
// # Concurrency
//
// All functions are safe for concurrent use. Geometries are never modified,
// and every call allocates its own output.
package isopath
