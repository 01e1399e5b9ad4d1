package reveal

// DefaultSamples is the number of points a [Trace] samples when asked for
// zero or fewer. A full period of a phasor drawn with this many points is
// visually indistinguishable from a circle at typical display sizes.
const DefaultSamples = 100

// ParametricCurve describes parametrized curves. Evaluating the curve at t
// returns a point, commonly interpreted as a point in a 2D Cartesian
// coordinate system or as a value on the complex plane.
//
// Implementations must be pure: evaluating the same t twice yields the same
// point. Unlike Bézier curves, curves in this package are not restricted to
// t ∈ [0, 1]; the domain a curve is drawn over is determined by the
// [Revealer] that drives it.
type ParametricCurve interface {
	Eval(t float64) Point
}

// CurveFunc adapts an ordinary function to [ParametricCurve].
type CurveFunc func(t float64) Point

func (f CurveFunc) Eval(t float64) Point { return f(t) }

// ComplexFunc adapts a complex-valued function to [ParametricCurve], placing
// its values on the complex plane.
type ComplexFunc func(t float64) complex128

func (f ComplexFunc) Eval(t float64) Point { return PointFromComplex(f(t)) }

// Sample evaluates c at n evenly spaced parameters in [t0, t1], both
// endpoints included. The first sample is exactly c.Eval(t0) and the last is
// exactly c.Eval(t1).
//
// For n < 2, Sample returns the single point c.Eval(t0), or nothing at all
// for n < 1.
func Sample(c ParametricCurve, t0, t1 float64, n int) Polyline {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return Polyline{c.Eval(t0)}
	}
	out := make(Polyline, n)
	step := (t1 - t0) / float64(n-1)
	for i := range n - 1 {
		out[i] = c.Eval(t0 + float64(i)*step)
	}
	// Avoid rounding errors in t0 + (n-1)*step so the last sample lands on t1.
	out[n-1] = c.Eval(t1)
	return out
}

// BoundingBox returns the bounding box of n samples of c over [t0, t1]. It is
// an approximation that becomes tight as n grows.
func BoundingBox(c ParametricCurve, t0, t1 float64, n int) Rect {
	return Sample(c, t0, t1, n).BoundingBox()
}
