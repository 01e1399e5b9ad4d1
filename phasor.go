package reveal

import (
	"math"
	"math/cmplx"
)

// Phasor is the rotating complex signal u(t) = A·e^{j(ωt+φ)}, the complex
// representation of the sinusoid A·cos(ωt+φ). Its trajectory on the complex
// plane is a circle of radius A around the origin, traced once every
// [Phasor.Period].
type Phasor struct {
	// Amplitude is the modulus A of the phasor.
	Amplitude float64
	// Omega is the angular frequency ω in radians per unit of t. Negative
	// values rotate clockwise.
	Omega float64
	// Phase is the phase φ at t = 0, in radians.
	Phase float64
}

var _ ParametricCurve = Phasor{}

// At returns u(t).
func (p Phasor) At(t float64) complex128 {
	return cmplx.Rect(p.Amplitude, p.Omega*t+p.Phase)
}

// Eval returns u(t) as a point on the complex plane.
func (p Phasor) Eval(t float64) Point {
	return PointFromComplex(p.At(t))
}

// DerivAt returns du/dt = jω·u(t).
func (p Phasor) DerivAt(t float64) complex128 {
	return complex(0, p.Omega) * p.At(t)
}

// Deriv returns the phasor describing du/dt. Differentiating scales the
// amplitude by |ω| and advances the phase by π/2 (or retards it, for negative
// ω). The derivative of a phasor with ω = 0 is zero.
func (p Phasor) Deriv() Phasor {
	switch {
	case p.Omega > 0:
		return Phasor{Amplitude: p.Amplitude * p.Omega, Omega: p.Omega, Phase: p.Phase + math.Pi/2}
	case p.Omega < 0:
		return Phasor{Amplitude: -p.Amplitude * p.Omega, Omega: p.Omega, Phase: p.Phase - math.Pi/2}
	default:
		return Phasor{Phase: p.Phase}
	}
}

// Normalized returns a phasor with the same frequency and phase as p but
// with the given amplitude. A derivative drawn with the amplitude of the
// phasor it was derived from shows the quarter-turn phase lead but hides the
// factor of ω.
func (p Phasor) Normalized(amplitude float64) Phasor {
	p.Amplitude = amplitude
	return p
}

// Period returns 2π/|ω|, the time it takes the phasor to complete one
// revolution. It is +Inf for ω = 0.
func (p Phasor) Period() float64 {
	return 2 * math.Pi / math.Abs(p.Omega)
}

// Part selects the real or imaginary part of a complex value.
type Part int

const (
	Real Part = iota
	Imag
)

func (part Part) String() string {
	switch part {
	case Real:
		return "Re"
	case Imag:
		return "Im"
	default:
		return "Part(?)"
	}
}

// Of returns the selected part of z.
func (part Part) Of(z complex128) float64 {
	if part == Imag {
		return imag(z)
	}
	return real(z)
}

// Component returns the graph of one part of f against t, that is, the curve
// t ↦ (t, part(f(t))). The component graphs of a phasor are its cosine
// (real) and sine (imaginary) waves.
func Component(f func(t float64) complex128, part Part) CurveFunc {
	return func(t float64) Point {
		return Pt(t, part.Of(f(t)))
	}
}
