// Package svgout writes frames as numbered SVG files, one per frame, for
// conversion into a video by external tools.
package svgout

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/pathutils"

	"honnef.co/go/reveal"
	"honnef.co/go/reveal/internal/scene"
)

const (
	// DefaultPrecision is the number of decimals used for coordinates.
	DefaultPrecision = 2

	headerHeight = 32
	margin       = 16
)

// Writer is a [scene.Sink] that writes every frame it is given to
// Dir/frame_NNNNN.svg, numbering frames from 0.
type Writer struct {
	Dir       string
	Width     int
	Height    int
	Precision int

	logger l.Wrapper
	n      int
}

// NewWriter creates dir if necessary and returns a writer producing images
// of the given size.
func NewWriter(dir string, width, height int, logger l.Wrapper) (*Writer, error) {
	if width <= 0 || height <= headerHeight+2*margin {
		return nil, fmt.Errorf("svgout: image size %dx%d is too small", width, height)
	}
	if err := pathutils.MustDirExists(dir); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Writer{
		Dir:       dir,
		Width:     width,
		Height:    height,
		Precision: DefaultPrecision,
		logger:    logger.WithFields(l.StringField(l.ClsKey, "SVGWriter")),
	}, nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.n }

// Draw implements [scene.Sink].
func (w *Writer) Draw(f scene.Frame) error {
	name := filepath.Join(w.Dir, fmt.Sprintf("frame_%05d.svg", w.n))
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := w.Encode(bw, f); err != nil {
		file.Close()
		return fmt.Errorf("svgout: writing %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("svgout: writing %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	w.logger.WithFields(l.StringField("file", name), l.StringField("scene", f.Scene)).Debug("frame written")
	w.n++
	return nil
}

// Encode writes f as an SVG document to out.
func (w *Writer) Encode(out io.Writer, f scene.Frame) error {
	e := &encoder{w: out, opts: reveal.SVGOptions{MaxPrecision: w.Precision}}
	e.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		w.Width, w.Height, w.Width, w.Height)
	e.printf(`<rect width="100%%" height="100%%" fill="black"/>` + "\n")
	e.printf(`<text x="%d" y="%d" fill="white" font-family="monospace" font-size="14">%s %.2fs</text>`+"\n",
		margin, margin+6, html.EscapeString(f.Scene), f.Elapsed.Seconds())

	view := reveal.Rect{
		X0: margin, Y0: headerHeight + margin,
		X1: float64(w.Width - margin), Y1: float64(w.Height - margin),
	}
	rects := f.Layout(view)
	e.printf(`<g opacity="%s">`+"\n", e.num(f.Opacity))
	for i, p := range f.Panels {
		e.panel(p, rects[i])
	}
	e.printf("</g>\n</svg>\n")
	return e.err
}

type encoder struct {
	w    io.Writer
	opts reveal.SVGOptions
	err  error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) num(v float64) string { return e.opts.Format(v) }

func (e *encoder) path(pl reveal.Polyline, attrs string) {
	if len(pl) == 0 {
		return
	}
	e.printf(`<path d="`)
	if e.err == nil {
		e.err = reveal.WriteSVG(e.w, pl.Elements(), e.opts)
	}
	e.printf(`" fill="none" %s/>`+"\n", attrs)
}

func (e *encoder) panel(p scene.Panel, view reveal.Rect) {
	aff := p.Plane.ToView(view)
	e.printf(`<g class="panel">` + "\n")
	e.printf(`<text x="%s" y="%s" fill="white" font-family="sans-serif" font-size="14">%s</text>`+"\n",
		e.num(view.X0), e.num(view.Y0-4), html.EscapeString(p.Title))
	e.printf(`<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="#333"/>`+"\n",
		e.num(view.X0), e.num(view.Y0), e.num(view.Width()), e.num(view.Height()))

	plane := p.Plane
	if plane.YMin <= 0 && 0 <= plane.YMax {
		e.path(reveal.Polyline{reveal.Pt(plane.XMin, 0), reveal.Pt(plane.XMax, 0)}.Transform(aff), `class="axis" stroke="gray"`)
	}
	if plane.XMin <= 0 && 0 <= plane.XMax {
		e.path(reveal.Polyline{reveal.Pt(0, plane.YMin), reveal.Pt(0, plane.YMax)}.Transform(aff), `class="axis" stroke="gray"`)
	}
	for _, c := range p.Curves {
		e.path(c.Points.Transform(aff),
			fmt.Sprintf(`class="curve" stroke="%s" stroke-width="2"`, html.EscapeString(c.Color)))
	}
	e.printf("</g>\n")
}
