package reveal

import (
	"fmt"
	"math"
)

// Size is the extent of a rectangle or a viewport.
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

// Fit returns the largest factor by which sz can be scaled to fit within o.
func (sz Size) Fit(o Size) float64 {
	return math.Min(o.Width/sz.Width, o.Height/sz.Height)
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Sz(r.Width(), r.Height())
}

// RectFromCenter returns the rectangle of size sz centered on c.
func RectFromCenter(c Point, sz Size) Rect {
	return Rect{
		X0: c.X - 0.5*sz.Width,
		Y0: c.Y - 0.5*sz.Height,
		X1: c.X + 0.5*sz.Width,
		Y1: c.Y + 0.5*sz.Height,
	}
}
