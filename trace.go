package reveal

// A Trace is a parametric curve drawn over the domain revealed by a
// [Revealer]. It is the sampling side of a progressive reveal: every call to
// [Trace.Points] re-samples the curve from scratch over the current visible
// domain. Nothing is cached between calls, so the same bound always produces
// the same points.
type Trace struct {
	curve    ParametricCurve
	revealer *Revealer
	samples  int
}

// NewTrace returns a trace of c driven by r, sampling the visible domain at
// the given number of points. A non-positive number of samples selects
// [DefaultSamples].
func NewTrace(c ParametricCurve, r *Revealer, samples int) Trace {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return Trace{curve: c, revealer: r, samples: samples}
}

func (tr Trace) Curve() ParametricCurve { return tr.curve }
func (tr Trace) Revealer() *Revealer    { return tr.revealer }
func (tr Trace) Samples() int           { return tr.samples }

// Current returns the current parameter of the trace's revealer.
func (tr Trace) Current() float64 { return tr.revealer.Current() }

// Visible returns the visible domain of the trace's revealer.
func (tr Trace) Visible() (lo, hi float64) { return tr.revealer.Visible() }

// Points samples the curve over the visible domain.
func (tr Trace) Points() Polyline {
	lo, hi := tr.revealer.Visible()
	return Sample(tr.curve, lo, hi, tr.samples)
}

// Head returns the point at the current end of the visible domain, where a
// pen drawing the curve would be.
func (tr Trace) Head() Point {
	_, hi := tr.revealer.Visible()
	return tr.curve.Eval(hi)
}

// Arclen returns the length of the currently visible polyline.
func (tr Trace) Arclen() float64 {
	return tr.Points().Arclen()
}

// BoundingBox returns the bounding box of the currently visible polyline.
func (tr Trace) BoundingBox() Rect {
	return tr.Points().BoundingBox()
}

// Pair returns traces of a function and its derivative that share the
// revealer r. Both traces observe the same parameter at every instant,
// because there is only one.
func Pair(fn, deriv ParametricCurve, r *Revealer, samples int) (Trace, Trace) {
	return NewTrace(fn, r, samples), NewTrace(deriv, r, samples)
}
