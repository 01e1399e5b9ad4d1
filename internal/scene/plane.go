package scene

import (
	"fmt"

	"github.com/sgostarter/i/commerr"

	"honnef.co/go/reveal"
)

// Plane is a coordinate system that curves are drawn in: a rectangular window
// of the complex plane (or of any x/y plane), and the size it occupies in the
// scene. Lengths are in scene units, which sinks scale to their viewport.
type Plane struct {
	XMin    float64 `toml:"x_min" yaml:"x_min"`
	XMax    float64 `toml:"x_max" yaml:"x_max"`
	YMin    float64 `toml:"y_min" yaml:"y_min"`
	YMax    float64 `toml:"y_max" yaml:"y_max"`
	XLength float64 `toml:"x_length" yaml:"x_length"`
	YLength float64 `toml:"y_length" yaml:"y_length"`
}

// SquarePlane returns a plane spanning [-r, r] on both axes, drawn as a
// square with sides of the given length.
func SquarePlane(r, length float64) Plane {
	return Plane{XMin: -r, XMax: r, YMin: -r, YMax: r, XLength: length, YLength: length}
}

// Validate reports whether the plane has a non-empty range and a positive
// size.
func (p Plane) Validate() error {
	if !(p.XMax > p.XMin) || !(p.YMax > p.YMin) {
		return fmt.Errorf("scene: empty plane range [%v, %v]×[%v, %v]: %w",
			p.XMin, p.XMax, p.YMin, p.YMax, commerr.ErrInvalidArgument)
	}
	if !(p.XLength > 0) || !(p.YLength > 0) {
		return fmt.Errorf("scene: plane size %v×%v isn't positive: %w",
			p.XLength, p.YLength, commerr.ErrInvalidArgument)
	}
	return nil
}

// Bounds returns the plane's window in its own coordinates, as a y-up
// rectangle: (X0, Y0) is the top left corner, so Y0 is YMax.
func (p Plane) Bounds() reveal.Rect {
	return reveal.Rect{X0: p.XMin, Y0: p.YMax, X1: p.XMax, Y1: p.YMin}
}

// ToView returns the transform that maps plane coordinates into view, a
// y-down rectangle such as a region of a screen or an SVG document.
func (p Plane) ToView(view reveal.Rect) reveal.Affine {
	return reveal.MapRect(p.Bounds(), view)
}

// Size returns the size the plane occupies in its scene.
func (p Plane) Size() reveal.Size {
	return reveal.Sz(p.XLength, p.YLength)
}

// Contains reports whether pt lies within the plane's window.
func (p Plane) Contains(pt reveal.Point) bool {
	return p.Bounds().Abs().Contains(pt)
}
