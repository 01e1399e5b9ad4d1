package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/reveal/internal/scene"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	term := NewWithScreen(screen, nil)
	t.Cleanup(term.Close)
	return term, screen
}

func splitFrame(t *testing.T) scene.Frame {
	t.Helper()
	sc, err := scene.DefaultConfig().Script()
	require.NoError(t, err)
	// 0.3s lead-in and 3s of the 6s reveal.
	return sc.At(3300 * time.Millisecond)
}

// cells returns the positions of all cells holding r, with their styles.
func cells(screen tcell.Screen, r rune) map[[2]int]tcell.Style {
	out := map[[2]int]tcell.Style{}
	w, h := screen.Size()
	for y := range h {
		for x := range w {
			c, _, style, _ := screen.GetContent(x, y)
			if c == r {
				out[[2]int{x, y}] = style
			}
		}
	}
	return out
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var rs []rune
	for x := range w {
		c, _, _, _ := screen.GetContent(x, y)
		rs = append(rs, c)
	}
	return string(rs)
}

func TestTerminalDraw(t *testing.T) {
	term, screen := newSimTerminal(t)
	require.NoError(t, term.Draw(splitFrame(t)))

	assert.Contains(t, row(screen, 0), "split ω=5")
	assert.Contains(t, row(screen, 1), "u(t), ω=5")
	assert.Contains(t, row(screen, 1), "du/dt, ω=5")

	heads := cells(screen, head)
	require.Len(t, heads, 2)
	var colors []tcell.Color
	for _, style := range heads {
		fg, _, _ := style.Decompose()
		colors = append(colors, fg)
	}
	assert.ElementsMatch(t, []tcell.Color{tcell.GetColor("blue"), tcell.GetColor("red")}, colors)

	assert.NotEmpty(t, cells(screen, dot))
	// One origin per panel.
	assert.Len(t, cells(screen, '┼'), 2)

	// Nothing is drawn above the panels except text.
	for pos := range cells(screen, dot) {
		assert.GreaterOrEqual(t, pos[1], headerRows)
	}
}

func TestTerminalDrawFaded(t *testing.T) {
	term, screen := newSimTerminal(t)
	f := splitFrame(t)
	f.Opacity = 0
	require.NoError(t, term.Draw(f))
	assert.Empty(t, cells(screen, dot))
	assert.Empty(t, cells(screen, head))
	assert.Len(t, cells(screen, '┼'), 2)

	f.Opacity = 0.5
	require.NoError(t, term.Draw(f))
	for _, style := range cells(screen, head) {
		_, _, attr := style.Decompose()
		assert.NotZero(t, attr&tcell.AttrDim)
	}
}

func TestTerminalDrawTiny(t *testing.T) {
	term, screen := newSimTerminal(t)
	screen.SetSize(10, 2)
	assert.NoError(t, term.Draw(splitFrame(t)))
	assert.Empty(t, cells(screen, dot))
}

func TestTerminalWatch(t *testing.T) {
	for _, key := range []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"q", tcell.KeyRune, 'q'},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	} {
		t.Run(key.name, func(t *testing.T) {
			term, screen := newSimTerminal(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan struct{})
			go func() {
				term.Watch(ctx, cancel)
				close(done)
			}()
			screen.InjectKey(key.key, key.r, tcell.ModNone)

			select {
			case <-ctx.Done():
			case <-time.After(2 * time.Second):
				t.Fatal("key did not cancel playback")
			}
			<-done
		})
	}
}
