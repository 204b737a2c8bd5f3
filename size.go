package isopath

import "fmt"

// Size is the extent of a rectangle.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// FitScale returns the largest uniform factor by which sz can be scaled to
// fit inside o. Zero sides impose no limit; if both sides of sz are zero,
// FitScale returns 1.
func (sz Size) FitScale(o Size) float64 {
	s := -1.0
	if sz.Width > 0 {
		s = o.Width / sz.Width
	}
	if sz.Height > 0 {
		if h := o.Height / sz.Height; s < 0 || h < s {
			s = h
		}
	}
	if s < 0 {
		return 1
	}
	return s
}

// Rect returns the rectangle of this size at the origin.
func (sz Size) Rect() Rect {
	return Rect{0, 0, sz.Width, sz.Height}
}
