package reveal

import (
	"fmt"
	"math"
	"time"

	"github.com/sgostarter/i/commerr"
)

// DefaultEpsilon is the parameter a [Revealer] starts at, so that a curve is
// never drawn over an empty domain.
const DefaultEpsilon = 0.01

var (
	// ErrInvalidBound is returned when a revealer's upper bound is not a
	// positive, finite number.
	ErrInvalidBound = fmt.Errorf("reveal: invalid bound: %w", commerr.ErrInvalidArgument)
	// ErrInvalidDuration is returned when a revealer's duration is not
	// positive.
	ErrInvalidDuration = fmt.Errorf("reveal: invalid duration: %w", commerr.ErrInvalidArgument)
)

// RevealerOptions specifies optional settings for [NewRevealerOpt].
type RevealerOptions struct {
	// Epsilon is the smallest upper bound of the visible domain. A value of
	// 0 selects [DefaultEpsilon]; a negative value allows the visible domain
	// to collapse to [0, 0].
	Epsilon float64
}

// A Revealer progressively reveals the domain [0, TMax] of a parametric
// curve over a duration of wall-clock time. It holds the one mutable value of
// a progressive reveal, the current upper bound of the visible domain.
//
// Revealers are driven by their owner, once per frame, by calling
// [Revealer.Advance] or [Revealer.Seek] with monotonically increasing
// arguments. Because both clamp their argument, a revealer that has reached
// TMax stays there for the rest of the scene. Any number of [Trace] values
// may share one revealer; they then observe exactly the same bound.
//
// A Revealer is not safe for concurrent use.
type Revealer struct {
	tMax     float64
	duration time.Duration
	epsilon  float64
	current  float64
}

// NewRevealer returns a revealer for the domain [0, tMax] that takes d to
// complete, starting at [DefaultEpsilon].
//
// It returns an error wrapping [ErrInvalidBound] if tMax is not positive and
// finite and one wrapping [ErrInvalidDuration] if d is not positive. Neither
// is replaced with a default.
func NewRevealer(tMax float64, d time.Duration) (*Revealer, error) {
	return NewRevealerOpt(tMax, d, RevealerOptions{})
}

// NewRevealerOpt is like [NewRevealer] but allows specifying options.
func NewRevealerOpt(tMax float64, d time.Duration, opts RevealerOptions) (*Revealer, error) {
	if !(tMax > 0) || math.IsInf(tMax, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBound, tMax)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}
	eps := opts.Epsilon
	switch {
	case eps == 0:
		eps = DefaultEpsilon
	case eps < 0:
		eps = 0
	}
	r := &Revealer{
		tMax:     tMax,
		duration: d,
		epsilon:  min(eps, tMax),
	}
	r.Reset()
	return r, nil
}

// MustRevealer is like [NewRevealer] but panics on error. It is intended for
// bounds and durations that are constants.
func MustRevealer(tMax float64, d time.Duration) *Revealer {
	r, err := NewRevealer(tMax, d)
	if err != nil {
		panic(err)
	}
	return r
}

// TMax returns the upper bound of the domain that is being revealed.
func (r *Revealer) TMax() float64 { return r.tMax }

// Duration returns the wall-clock time it takes to reveal the whole domain.
func (r *Revealer) Duration() time.Duration { return r.duration }

// Epsilon returns the smallest upper bound of the visible domain.
func (r *Revealer) Epsilon() float64 { return r.epsilon }

// Current returns the parameter reached by the most recent call to
// [Revealer.Advance], or the epsilon start if there hasn't been one.
func (r *Revealer) Current() float64 { return r.current }

// Reset returns the revealer to its starting state.
func (r *Revealer) Reset() { r.current = r.epsilon }

// Advance sets the current parameter to fraction·TMax and returns it.
//
// The result only depends on fraction and TMax. Fractions outside of [0, 1]
// are clamped, and NaN is treated as 0. Advance(1) returns exactly TMax.
func (r *Revealer) Advance(fraction float64) float64 {
	f := clamp01(fraction)
	if f == 1 {
		r.current = r.tMax
	} else {
		r.current = f * r.tMax
	}
	return r.current
}

// Fraction returns elapsed divided by the revealer's duration, clamped to
// [0, 1].
func (r *Revealer) Fraction(elapsed time.Duration) float64 {
	if elapsed >= r.duration {
		return 1
	}
	return clamp01(float64(elapsed) / float64(r.duration))
}

// Seek advances the revealer to where it is after elapsed time of linear
// progress, and returns the current parameter.
func (r *Revealer) Seek(elapsed time.Duration) float64 {
	return r.Advance(r.Fraction(elapsed))
}

// Visible returns the visible domain [lo, hi]. hi is the current parameter,
// but never less than the epsilon start.
func (r *Revealer) Visible() (lo, hi float64) {
	return 0, max(r.current, r.epsilon)
}

// Done reports whether the whole domain has been revealed.
func (r *Revealer) Done() bool {
	return r.current == r.tMax
}

func clamp01(f float64) float64 {
	switch {
	case f >= 1:
		return 1
	case f > 0:
		return f
	default:
		// Also catches NaN.
		return 0
	}
}
