// Package term draws frames to a terminal with tcell.
//
// Terminal cells are about twice as tall as they are wide. Panels are laid
// out in half-cell units vertically so that circles stay round.
package term

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/sgostarter/i/l"

	"honnef.co/go/reveal"
	"honnef.co/go/reveal/internal/scene"
)

const (
	dot  = '•'
	head = '●'

	// rows used above the panels: a status line and the panel titles.
	headerRows = 2
)

var (
	axisStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle = tcell.StyleDefault.Bold(true)
)

// Terminal is a [scene.Sink] that draws to a tcell screen.
type Terminal struct {
	screen tcell.Screen
	logger l.Wrapper
}

// New initializes the terminal. Callers must call [Terminal.Close] to
// restore it.
func New(logger l.Wrapper) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewWithScreen(screen, logger), nil
}

// NewWithScreen returns a terminal drawing to an initialized screen.
func NewWithScreen(screen tcell.Screen, logger l.Wrapper) *Terminal {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	screen.HideCursor()
	return &Terminal{
		screen: screen,
		logger: logger.WithFields(l.StringField(l.ClsKey, "Terminal")),
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Watch handles input until the screen is closed or ctx is done. Escape, q
// and Ctrl-C call cancel.
func (t *Terminal) Watch(ctx context.Context, cancel context.CancelFunc) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				t.logger.Debug("quit requested")
				cancel()
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// Draw implements [scene.Sink].
func (t *Terminal) Draw(f scene.Frame) error {
	t.screen.Clear()
	w, h := t.screen.Size()
	t.text(0, 0, fmt.Sprintf("%s  %.1fs", f.Scene, f.Elapsed.Seconds()), tcell.StyleDefault)
	if h <= headerRows {
		t.screen.Show()
		return nil
	}

	view := reveal.Rect{X0: 0, Y0: 0, X1: float64(w), Y1: 2 * float64(h-headerRows)}
	rects := f.Layout(view)
	for i, p := range f.Panels {
		aff := p.Plane.ToView(rects[i]).
			ThenScale(1, 0.5).
			ThenTranslate(reveal.Vec(0, headerRows))
		t.text(int(rects[i].X0), headerRows-1, p.Title, titleStyle)
		t.axes(p.Plane, aff)
		if f.Opacity <= 0 {
			continue
		}
		for _, c := range p.Curves {
			style := tcell.StyleDefault.Foreground(tcell.GetColor(c.Color)).Dim(f.Opacity < 1)
			t.polyline(c.Points.Transform(aff), style)
		}
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) axes(plane scene.Plane, aff reveal.Affine) {
	if plane.YMin <= 0 && 0 <= plane.YMax {
		x := reveal.Line{
			P0: reveal.Pt(plane.XMin, 0).Transform(aff),
			P1: reveal.Pt(plane.XMax, 0).Transform(aff),
		}
		t.line(x, '─', axisStyle)
	}
	if plane.XMin <= 0 && 0 <= plane.XMax {
		y := reveal.Line{
			P0: reveal.Pt(0, plane.YMin).Transform(aff),
			P1: reveal.Pt(0, plane.YMax).Transform(aff),
		}
		t.line(y, '│', axisStyle)
	}
	if plane.Contains(reveal.Pt(0, 0)) {
		o := reveal.Pt(0, 0).Transform(aff)
		t.set(o, '┼', axisStyle)
	}
}

func (t *Terminal) polyline(pl reveal.Polyline, style tcell.Style) {
	switch len(pl) {
	case 0:
		return
	case 1:
		t.set(pl[0], head, style)
		return
	}
	for seg := range pl.Segments() {
		t.line(seg, dot, style)
	}
	t.set(pl[len(pl)-1], head, style)
}

// line plots one cell per column or row crossed by ln, whichever is more.
func (t *Terminal) line(ln reveal.Line, r rune, style tcell.Style) {
	d := ln.P1.Sub(ln.P0)
	n := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if n == 0 {
		t.set(ln.P0, r, style)
		return
	}
	for i := 0; i <= n; i++ {
		t.set(ln.Eval(float64(i)/float64(n)), r, style)
	}
}

func (t *Terminal) set(p reveal.Point, r rune, style tcell.Style) {
	if p.IsNaN() || p.IsInf() {
		return
	}
	w, h := t.screen.Size()
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if x < 0 || x >= w || y < headerRows || y >= h {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}
