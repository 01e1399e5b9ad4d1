package scene

import (
	"iter"
	"time"
)

// Segment is one scene of a script, with its timing. A segment shows its
// scene for LeadIn before revealing its curves, holds the finished curves for
// Hold and then fades the scene out over Fade.
type Segment struct {
	Scene  *Scene
	LeadIn time.Duration
	Hold   time.Duration
	Fade   time.Duration
}

// Duration returns the total time the segment is on screen.
func (seg Segment) Duration() time.Duration {
	return seg.LeadIn + seg.Scene.Duration() + seg.Hold + seg.Fade
}

// Script is a sequence of segments played one after another.
//
// There is no ambient clock: [Script.At] takes the elapsed time since the
// start of the script and returns the frame to show at that time. The
// segments' scenes are seeked to match, so a script is not safe for
// concurrent use.
type Script struct {
	Segments []Segment
	// Gap is copied into every frame for layout.
	Gap float64
}

// Duration returns the total running time of the script.
func (sc *Script) Duration() time.Duration {
	var d time.Duration
	for _, seg := range sc.Segments {
		d += seg.Duration()
	}
	return d
}

// At returns the frame at elapsed time since the start of the script.
// Elapsed times before the start show the first frame, times past the end
// show the last one.
func (sc *Script) At(elapsed time.Duration) Frame {
	if len(sc.Segments) == 0 {
		return Frame{Elapsed: elapsed, Gap: sc.Gap}
	}
	elapsed = max(elapsed, 0)
	local := elapsed
	i := 0
	for ; i < len(sc.Segments)-1; i++ {
		d := sc.Segments[i].Duration()
		if local < d {
			break
		}
		local -= d
	}
	seg := sc.Segments[i]
	local = min(local, seg.Duration())

	play := local - seg.LeadIn
	seg.Scene.Seek(play)

	opacity := 1.0
	if fading := play - seg.Scene.Duration() - seg.Hold; fading > 0 && seg.Fade > 0 {
		opacity = max(0, 1-float64(fading)/float64(seg.Fade))
	}

	return Frame{
		Elapsed: elapsed,
		Scene:   seg.Scene.Name,
		Opacity: opacity,
		Panels:  seg.Scene.Panels(),
		Gap:     sc.Gap,
	}
}

// Frames returns the frames of the script sampled at a fixed rate, without
// regard to wall-clock time. The final frame is always at the script's end.
// Rates above [MaxFPS] are clamped.
func (sc *Script) Frames(fps int) iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		if fps <= 0 {
			return
		}
		step := time.Second / time.Duration(min(fps, MaxFPS))
		total := sc.Duration()
		n := 0
		for elapsed := time.Duration(0); ; elapsed += step {
			elapsed = min(elapsed, total)
			if !yield(n, sc.At(elapsed)) || elapsed == total {
				return
			}
			n++
		}
	}
}

// Script builds the full animation: a split scene per frequency, each
// optionally followed by a components scene, and a final comparison of all
// frequencies that is held instead of faded out.
func (c Config) Script() (*Script, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sc := &Script{Gap: c.Gap}
	timing := Segment{
		LeadIn: seconds(c.LeadIn),
		Hold:   seconds(c.Hold),
		Fade:   seconds(c.Fade),
	}
	for _, w := range c.Frequencies {
		s, err := c.Split(w)
		if err != nil {
			return nil, err
		}
		seg := timing
		seg.Scene = s
		sc.Segments = append(sc.Segments, seg)

		if c.ShowComponents {
			s, err := c.Components(w)
			if err != nil {
				return nil, err
			}
			seg := timing
			seg.Scene = s
			sc.Segments = append(sc.Segments, seg)
		}
	}

	s, err := c.Compare()
	if err != nil {
		return nil, err
	}
	sc.Segments = append(sc.Segments, Segment{
		Scene:  s,
		LeadIn: seconds(c.LeadIn),
		Hold:   seconds(c.Hold + c.FinalHold),
	})
	return sc, nil
}
