package reveal

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a path.
//
// A valid path has MoveTo at the beginning of each subpath. Revealed curves
// are never smoothed, so lines are the only drawing commands.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s%s", kind, el.P0)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Polyline is an open chain of points, connected by lines. It is what a
// [Trace] produces every time it is sampled.
type Polyline []Point

// Elements returns the polyline as a single open subpath. An empty polyline
// produces no elements.
func (p Polyline) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range p {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Segments returns the lines connecting consecutive points.
func (p Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// Arclen returns the total length of the polyline.
func (p Polyline) Arclen() float64 {
	var n float64
	for l := range p.Segments() {
		n += l.Length()
	}
	return n
}

// BoundingBox returns the smallest rectangle enclosing all points. The
// bounding box of an empty polyline is [EmptyRect].
func (p Polyline) BoundingBox() Rect {
	bbox := EmptyRect()
	for _, pt := range p {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Transform returns a new polyline with aff applied to every point.
func (p Polyline) Transform(aff Affine) Polyline {
	out := slices.Clone(p)
	for i := range out {
		out[i] = out[i].Transform(aff)
	}
	return out
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// Format formats a coordinate the way [WriteSVG] does.
func (opts SVGOptions) Format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := opts.Format
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
