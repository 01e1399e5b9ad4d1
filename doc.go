// Package reveal progressively reveals parametric curves: it draws an
// increasing prefix of a curve's domain as time passes. It was written to
// animate rotating phasors and their derivatives, but works with any
// [ParametricCurve].
//
// # Revealers, traces, and groups
//
// A [Revealer] owns the one piece of mutable state of a progressive reveal,
// the current upper bound of the visible domain. Given the fraction of its
// duration that has elapsed, [Revealer.Advance] moves the bound to
// fraction·TMax. The fraction is clamped to [0, 1]. Invalid
// bounds and durations are reported as errors when the revealer is created
// (see [ErrInvalidBound] and [ErrInvalidDuration]).
//
// A [Trace] binds a curve to a revealer. [Trace.Points] samples the curve
// over the visible domain, recomputing every point from scratch each time it
// is called; no points are kept between calls. Traces that share
// a revealer, such as a function and its derivative created by [Pair],
// always observe identical bounds.
//
// A [Group] starts several revealers at the same instant. There is no global
// clock: the caller passes the elapsed time to [Group.Seek], and every member
// converts it into a fraction of its own duration. Members with shorter
// durations finish earlier; none of them waits for another.
//
// # Phasors
//
// [Phasor] implements the rotating signal u(t) = A·e^{j(ωt+φ)}, its
// derivative du/dt = jω·u(t), and its period 2π/|ω|. [Component] turns any
// complex-valued function into the graph of its real or imaginary part
// against t.
//
// # Output
//
// Revealed curves are polylines. [Polyline.Elements] converts them to path
// elements, which [WriteSVG] formats as SVG path data, and [Affine]
// transforms map them from curve coordinates to the coordinates of whatever
// draws them.
package reveal
