package scene

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortScript returns a script of 200ms: one split scene and the comparison,
// without pauses.
func shortScript(t *testing.T) *Script {
	t.Helper()
	c := DefaultConfig()
	c.Frequencies = []float64{20}
	c.RunTimes = map[string]float64{"20": 0.1}
	c.LeadIn, c.Hold, c.Fade, c.FinalHold = 0, 0, 0, 0
	sc, err := c.Script()
	require.NoError(t, err)
	require.Equal(t, 200*time.Millisecond, sc.Duration())
	return sc
}

// fakeClock returns a clock that advances by step every time it is read.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

type recordingSink struct {
	frames []Frame
	err    error
}

func (s *recordingSink) Draw(f Frame) error {
	s.frames = append(s.frames, f)
	return s.err
}

func TestPlayerPlay(t *testing.T) {
	sc := shortScript(t)
	sink := &recordingSink{}
	p := NewPlayer(sc, sink, 1000, nil)
	p.now = fakeClock(50 * time.Millisecond)

	require.NoError(t, p.Play(context.Background()))
	require.Len(t, sink.frames, 4)
	for i, f := range sink.frames {
		assert.Equal(t, time.Duration(i+1)*50*time.Millisecond, f.Elapsed)
	}
	assert.Equal(t, "split ω=20", sink.frames[0].Scene)
	assert.Equal(t, "compare", sink.frames[3].Scene)
}

func TestPlayerPlayCanceled(t *testing.T) {
	sc := shortScript(t)
	sink := &recordingSink{}
	p := NewPlayer(sc, sink, 1, nil)
	p.now = fakeClock(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Play(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, sink.frames, 1)
}

func TestPlayerPlaySinkError(t *testing.T) {
	sc := shortScript(t)
	errDraw := errors.New("draw failed")
	sink := &recordingSink{err: errDraw}
	p := NewPlayer(sc, sink, 1000, nil)
	p.now = fakeClock(50 * time.Millisecond)

	assert.ErrorIs(t, p.Play(context.Background()), errDraw)
	assert.Len(t, sink.frames, 1)
}

func TestPlayerDefaultFPS(t *testing.T) {
	p := NewPlayer(shortScript(t), &recordingSink{}, 0, nil)
	assert.Equal(t, DefaultFPS, p.fps)
}

func TestPlayerMaxFPS(t *testing.T) {
	p := NewPlayer(shortScript(t), &recordingSink{}, 2_000_000_000, nil)
	assert.Equal(t, MaxFPS, p.fps)
	p = NewPlayer(shortScript(t), &recordingSink{}, MaxFPS-1, nil)
	assert.Equal(t, MaxFPS-1, p.fps)
}

func TestPlayerRender(t *testing.T) {
	sc := shortScript(t)
	var elapsed []time.Duration
	sink := SinkFunc(func(f Frame) error {
		elapsed = append(elapsed, f.Elapsed)
		return nil
	})
	p := NewPlayer(sc, sink, 10, nil)

	n, err := p.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}, elapsed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err = p.Render(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}
