package isopath

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum number of decimals with which to format coordinates. A
	// value of 0 chooses the highest precision necessary to unambiguously
	// represent any given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w. Commands are absolute and separated by single
// spaces, for example "M0,0 C1,2 3,4 5,6 Z".
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s", formatPoint(el.P0, opts.MaxPrecision))
		case LineToKind:
			writef("L%s", formatPoint(el.P0, opts.MaxPrecision))
		case CubicToKind:
			writef("C%s %s %s",
				formatPoint(el.P0, opts.MaxPrecision),
				formatPoint(el.P1, opts.MaxPrecision),
				formatPoint(el.P2, opts.MaxPrecision))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

func formatPoint(pt Point, maxPrec int) string {
	return formatCoord(pt.X, maxPrec) + "," + formatCoord(pt.Y, maxPrec)
}

func formatCoord(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
