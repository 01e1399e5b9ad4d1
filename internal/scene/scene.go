// Package scene assembles revealed phasor curves into timed scenes and plays
// them to a [Sink].
//
// A [Script] has no clock of its own. [Script.At] maps an elapsed time to a
// [Frame], and a [Player] supplies elapsed times, either from the wall clock
// or at a fixed frame rate.
package scene

import (
	"fmt"
	"time"

	"honnef.co/go/reveal"
)

// A Scene is a set of panels whose curves are revealed together. All of a
// scene's revealers form one [reveal.Group] and start at the same instant.
type Scene struct {
	Name   string
	group  *reveal.Group
	panels []panel
}

type panel struct {
	title  string
	plane  Plane
	curves []curve
}

type curve struct {
	label string
	color string
	trace reveal.Trace
}

// Frame is a snapshot of everything visible at one instant of an animation.
// All curves of a frame are sampled at the same elapsed time.
type Frame struct {
	Elapsed time.Duration
	Scene   string
	// Opacity is 1 while a scene is shown and drops to 0 while it fades
	// out.
	Opacity float64
	Panels  []Panel
	Gap     float64
}

// Panel is a plane and the curves drawn in it.
type Panel struct {
	Title  string
	Plane  Plane
	Curves []Curve
}

// Curve is the visible part of one trace, in plane coordinates.
type Curve struct {
	Label  string
	Color  string
	Points reveal.Polyline
}

// NewScene returns an empty scene.
func NewScene(name string) *Scene {
	return &Scene{Name: name, group: reveal.NewGroup()}
}

// AddPanel appends a panel and returns its index.
func (s *Scene) AddPanel(title string, plane Plane) int {
	s.panels = append(s.panels, panel{title: title, plane: plane})
	return len(s.panels) - 1
}

// AddTrace draws tr in the panel with index i. The trace's revealer joins
// the scene's group.
func (s *Scene) AddTrace(i int, label, color string, tr reveal.Trace) {
	s.group.Add(tr.Revealer())
	s.panels[i].curves = append(s.panels[i].curves, curve{label: label, color: color, trace: tr})
}

// Group returns the group of all revealers in the scene.
func (s *Scene) Group() *reveal.Group { return s.group }

// Duration returns the time it takes for the slowest curve of the scene to
// be revealed completely.
func (s *Scene) Duration() time.Duration { return s.group.Duration() }

// Seek advances every curve to elapsed time since the scene started
// playing.
func (s *Scene) Seek(elapsed time.Duration) { s.group.Seek(elapsed) }

// Panels samples every curve at its current bound.
func (s *Scene) Panels() []Panel {
	out := make([]Panel, len(s.panels))
	for i, p := range s.panels {
		out[i] = Panel{Title: p.title, Plane: p.plane, Curves: make([]Curve, len(p.curves))}
		for j, c := range p.curves {
			out[i].Curves[j] = Curve{Label: c.label, Color: c.color, Points: c.trace.Points()}
		}
	}
	return out
}

// Split builds the scene comparing the phasor at frequency w with its
// derivative, side by side. Both curves share a revealer, so the derivative
// is always drawn up to exactly the same t as the function.
func (c Config) Split(w float64) (*Scene, error) {
	d, err := c.RunTime(w)
	if err != nil {
		return nil, err
	}
	p := reveal.Phasor{Amplitude: c.Amplitude, Omega: w}
	deriv := p.Deriv()
	if c.NormalizeDerivative {
		deriv = deriv.Normalized(c.Amplitude)
	}
	r, err := reveal.NewRevealer(p.Period(), d)
	if err != nil {
		return nil, fmt.Errorf("scene: split ω=%v: %w", w, err)
	}
	fn, dfn := reveal.Pair(p, deriv, r, c.Samples)

	s := NewScene(fmt.Sprintf("split ω=%v", w))
	i := s.AddPanel(fmt.Sprintf("u(t), ω=%v", w), c.SplitPlane)
	s.AddTrace(i, "u(t)", c.FunctionColor, fn)
	i = s.AddPanel(fmt.Sprintf("du/dt, ω=%v", w), c.SplitPlane)
	s.AddTrace(i, "du/dt", c.DerivativeColor, dfn)
	return s, nil
}

// Compare builds the scene that overlays all frequencies: the phasors in one
// plane and their derivatives in another. Every curve traces one period and
// has its own revealer, all started at once; each frequency finishes after
// its own run time.
func (c Config) Compare() (*Scene, error) {
	s := NewScene("compare")
	fi := s.AddPanel("u(t)", c.CompareFunctionPlane)
	di := s.AddPanel("du/dt", c.CompareDerivativePlane)
	for _, w := range c.Frequencies {
		d, err := c.RunTime(w)
		if err != nil {
			return nil, err
		}
		p := reveal.Phasor{Amplitude: c.Amplitude, Omega: w}
		color := c.Color(w, c.FunctionColor)
		label := fmt.Sprintf("ω=%v", w)

		// The derivative gets a revealer of its own with the same bound and
		// duration, so both advance at the same angular rate.
		for _, pc := range []struct {
			panel int
			curve reveal.ParametricCurve
		}{
			{fi, p},
			{di, p.Deriv()},
		} {
			r, err := reveal.NewRevealer(p.Period(), d)
			if err != nil {
				return nil, fmt.Errorf("scene: compare ω=%v: %w", w, err)
			}
			s.AddTrace(pc.panel, label, color, reveal.NewTrace(pc.curve, r, c.Samples))
		}
	}
	return s, nil
}

// Components builds the scene plotting the real and imaginary parts of
// du/dt against t, over three periods of the phasor at frequency w.
func (c Config) Components(w float64) (*Scene, error) {
	p := reveal.Phasor{Amplitude: c.Amplitude, Omega: w}
	tMax := 3 * p.Period()
	r, err := reveal.NewRevealer(tMax, seconds(c.ComponentRunTime))
	if err != nil {
		return nil, fmt.Errorf("scene: components ω=%v: %w", w, err)
	}
	re, im := reveal.Pair(
		reveal.Component(p.DerivAt, reveal.Real),
		reveal.Component(p.DerivAt, reveal.Imag),
		r, 3*max(c.Samples, reveal.DefaultSamples))

	peak := 1.2 * c.Amplitude * w
	plane := Plane{
		XMin: 0, XMax: tMax,
		YMin: -peak, YMax: peak,
		XLength: 10, YLength: 6,
	}
	s := NewScene(fmt.Sprintf("components ω=%v", w))
	i := s.AddPanel(fmt.Sprintf("du/dt vs t, ω=%v", w), plane)
	s.AddTrace(i, reveal.Real.String()+"(du/dt)", c.FunctionColor, re)
	s.AddTrace(i, reveal.Imag.String()+"(du/dt)", c.DerivativeColor, im)
	return s, nil
}

// Layout places the frame's panels side by side, centered in view, which
// must be a y-down rectangle. Panels keep their aspect ratio and are scaled
// uniformly so that all of them fit. It returns one rectangle per panel.
func (f Frame) Layout(view reveal.Rect) []reveal.Rect {
	if len(f.Panels) == 0 {
		return nil
	}
	var total reveal.Size
	for i, p := range f.Panels {
		if i > 0 {
			total.Width += f.Gap
		}
		total.Width += p.Plane.XLength
		total.Height = max(total.Height, p.Plane.YLength)
	}
	scale := total.Fit(view.Size())
	center := view.Center()
	x := center.X - 0.5*total.Width*scale
	out := make([]reveal.Rect, len(f.Panels))
	for i, p := range f.Panels {
		sz := p.Plane.Size().Scale(scale)
		out[i] = reveal.RectFromCenter(reveal.Pt(x+0.5*sz.Width, center.Y), sz)
		x += sz.Width + f.Gap*scale
	}
	return out
}
