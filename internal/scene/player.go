package scene

import (
	"context"
	"time"

	"github.com/sgostarter/i/l"
)

const (
	// DefaultFPS is the frame rate used when a player is given none.
	DefaultFPS = 30
	// MaxFPS is the highest frame rate a player or [Script.Frames] uses.
	// Higher rates are clamped to it.
	MaxFPS = 1000
)

// Sink consumes frames, usually by drawing them.
type Sink interface {
	Draw(f Frame) error
}

// SinkFunc adapts an ordinary function to [Sink].
type SinkFunc func(f Frame) error

func (fn SinkFunc) Draw(f Frame) error { return fn(f) }

// Player plays a script to a sink in real time.
type Player struct {
	logger l.Wrapper
	script *Script
	sink   Sink
	fps    int

	// now is replaced in tests.
	now func() time.Time
}

// NewPlayer returns a player drawing fps frames per second. A non-positive
// fps selects [DefaultFPS]; fps above [MaxFPS] is clamped.
func NewPlayer(script *Script, sink Sink, fps int, logger l.Wrapper) *Player {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	fps = min(fps, MaxFPS)
	return &Player{
		logger: logger.WithFields(l.StringField(l.ClsKey, "Player")),
		script: script,
		sink:   sink,
		fps:    fps,
		now:    time.Now,
	}
}

// Play draws frames until the script ends, the sink fails or ctx is
// canceled. Every frame is sampled at the time elapsed since Play was
// called, so a slow sink drops frames instead of slowing the animation down.
// The last frame drawn is always the end of the script, unless Play returns
// early.
func (p *Player) Play(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	start := p.now()
	total := p.script.Duration()
	p.logger.WithFields(l.StringField("duration", total.String()), l.IntField("fps", p.fps)).Info("playing script")

	var scene string
	var frames int
	for {
		elapsed := min(p.now().Sub(start), total)
		f := p.script.At(elapsed)
		if f.Scene != scene {
			scene = f.Scene
			p.logger.WithFields(l.StringField("scene", scene), l.StringField("at", elapsed.String())).Debug("scene started")
		}
		if err := p.sink.Draw(f); err != nil {
			p.logger.WithFields(l.ErrorField(err), l.IntField("frame", frames)).Error("draw failed")
			return err
		}
		frames++
		if elapsed == total {
			p.logger.WithFields(l.IntField("frames", frames)).Info("script finished")
			return nil
		}

		select {
		case <-ctx.Done():
			p.logger.WithFields(l.IntField("frames", frames)).Info("playback canceled")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Render draws the script to the sink at the player's frame rate, as fast as
// the sink accepts frames. It is meant for sinks that write files.
func (p *Player) Render(ctx context.Context) (int, error) {
	n := 0
	for _, f := range p.script.Frames(p.fps) {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := p.sink.Draw(f); err != nil {
			p.logger.WithFields(l.ErrorField(err), l.IntField("frame", n)).Error("draw failed")
			return n, err
		}
		n++
	}
	p.logger.WithFields(l.IntField("frames", n)).Info("script rendered")
	return n, nil
}
