// Package svgdoc assembles fitted paths into standalone SVG documents.
//
// All paths of a document share one transform, which scales their combined
// bounding box uniformly into the document's drawing area.
package svgdoc

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"honnef.co/go/isopath"
)

// Layer is a group of paths drawn with the same style. Empty style fields
// are omitted and fall back to SVG defaults.
type Layer struct {
	ID          string
	Class       string
	Fill        string
	Stroke      string
	StrokeWidth float64
	// FillRule defaults to "evenodd", which draws holes correctly since
	// exterior rings are emitted before their holes.
	FillRule string
	Paths    []isopath.SegmentedPath
}

// Document is an SVG document of Width×Height user units.
type Document struct {
	Width  float64
	Height float64
	// Margin is kept free on every side.
	Margin float64
	// Precision is the maximum number of decimals of path coordinates. Zero
	// means as many as needed.
	Precision int
	// FlipY mirrors the y axis, for input in a y-up coordinate system.
	FlipY  bool
	Layers []Layer
}

// New returns an empty document of the given size.
func New(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// Add appends a layer. Later layers are drawn on top of earlier ones.
func (d *Document) Add(l Layer) {
	d.Layers = append(d.Layers, l)
}

func (d *Document) Size() isopath.Size {
	return isopath.Sz(d.Width, d.Height)
}

// Validate reports invalid dimensions as an [*isopath.ConfigurationError].
func (d *Document) Validate() error {
	switch {
	case !(d.Width > 0):
		return &isopath.ConfigurationError{Field: "svg width", Value: d.Width, Reason: "must be positive"}
	case !(d.Height > 0):
		return &isopath.ConfigurationError{Field: "svg height", Value: d.Height, Reason: "must be positive"}
	case !(d.Margin >= 0) || 2*d.Margin >= d.Size().MinSide():
		return &isopath.ConfigurationError{Field: "svg margin", Value: d.Margin, Reason: "must be non-negative and leave room to draw"}
	case d.Precision < 0:
		return &isopath.ConfigurationError{Field: "svg precision", Value: d.Precision, Reason: "must not be negative"}
	}
	return nil
}

// BoundingBox returns the union of all paths' bounding boxes, in input
// coordinates.
func (d *Document) BoundingBox() isopath.Rect {
	r := isopath.EmptyRect
	for _, l := range d.Layers {
		for _, p := range l.Paths {
			r = r.Union(p.BoundingBox())
		}
	}
	return r
}

// Transform returns the mapping from input coordinates to document
// coordinates.
func (d *Document) Transform() isopath.Affine {
	bbox := d.BoundingBox()
	if bbox.IsEmpty() {
		return isopath.Identity
	}
	dst := d.Size().Rect().Inflate(-d.Margin, -d.Margin)
	return isopath.FitInto(bbox, dst, d.FlipY)
}

// Build returns the document as an XML tree. Empty paths are skipped.
func (d *Document) Build() (*etree.Document, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	aff := d.Transform()
	opts := isopath.SVGOptions{MaxPrecision: d.Precision}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("version", "1.1")
	svg.CreateAttr("width", formatFloat(d.Width))
	svg.CreateAttr("height", formatFloat(d.Height))
	svg.CreateAttr("viewBox", "0 0 "+formatFloat(d.Width)+" "+formatFloat(d.Height))

	for _, l := range d.Layers {
		g := svg.CreateElement("g")
		if l.ID != "" {
			g.CreateAttr("id", l.ID)
		}
		if l.Class != "" {
			g.CreateAttr("class", l.Class)
		}
		if l.Fill != "" {
			g.CreateAttr("fill", l.Fill)
		}
		if l.Stroke != "" {
			g.CreateAttr("stroke", l.Stroke)
		}
		if l.StrokeWidth > 0 {
			g.CreateAttr("stroke-width", formatFloat(l.StrokeWidth))
		}
		rule := l.FillRule
		if rule == "" {
			rule = "evenodd"
		}
		for _, p := range l.Paths {
			if p.NumSegments() == 0 {
				continue
			}
			path := g.CreateElement("path")
			path.CreateAttr("d", p.Transform(aff).SVG(opts))
			path.CreateAttr("fill-rule", rule)
		}
	}
	doc.Indent(2)
	return doc, nil
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	doc, err := d.Build()
	if err != nil {
		return 0, err
	}
	return doc.WriteTo(w)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
