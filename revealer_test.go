package reveal

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
)

func TestNewRevealerErrors(t *testing.T) {
	for _, tMax := range []float64{0, -1, math.Inf(1), math.Inf(-1), math.NaN()} {
		r, err := NewRevealer(tMax, time.Second)
		if !errors.Is(err, ErrInvalidBound) {
			t.Errorf("bound %v: got error %v, want %v", tMax, err, ErrInvalidBound)
		}
		if !errors.Is(err, commerr.ErrInvalidArgument) {
			t.Errorf("bound %v: error %v doesn't wrap %v", tMax, err, commerr.ErrInvalidArgument)
		}
		if r != nil {
			t.Errorf("bound %v: got revealer %v, want nil", tMax, r)
		}
	}

	for _, d := range []time.Duration{0, -time.Second} {
		_, err := NewRevealer(1, d)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("duration %v: got error %v, want %v", d, err, ErrInvalidDuration)
		}
	}

	// The bound is checked first.
	if _, err := NewRevealer(0, 0); !errors.Is(err, ErrInvalidBound) {
		t.Errorf("got error %v, want %v", err, ErrInvalidBound)
	}
}

func TestMustRevealerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustRevealer to panic")
		}
	}()
	MustRevealer(-1, time.Second)
}

func TestRevealerStart(t *testing.T) {
	r := MustRevealer(2*math.Pi/5, 6*time.Second)
	if c := r.Current(); c != DefaultEpsilon {
		t.Errorf("got start %v, want %v", c, DefaultEpsilon)
	}
	if lo, hi := r.Visible(); lo != 0 || hi != DefaultEpsilon {
		t.Errorf("got visible domain [%v, %v], want [0, %v]", lo, hi, DefaultEpsilon)
	}
	if r.Done() {
		t.Error("new revealer is done")
	}

	tiny := MustRevealer(0.001, time.Second)
	if c := tiny.Current(); c != 0.001 {
		t.Errorf("epsilon start %v exceeds bound 0.001", c)
	}

	r, err := NewRevealerOpt(1, time.Second, RevealerOptions{Epsilon: -1})
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := r.Visible(); lo != 0 || hi != 0 {
		t.Errorf("got visible domain [%v, %v], want [0, 0]", lo, hi)
	}

	r, err = NewRevealerOpt(1, time.Second, RevealerOptions{Epsilon: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if e := r.Epsilon(); e != 0.1 {
		t.Errorf("got epsilon %v, want 0.1", e)
	}
}

func TestRevealerAdvance(t *testing.T) {
	for _, tMax := range []float64{2 * math.Pi / 5, 2 * math.Pi / 10, 2 * math.Pi / 20, 1, 37.5} {
		r := MustRevealer(tMax, 3*time.Second)
		prev := math.Inf(-1)
		for i := 0; i <= 100; i++ {
			f := float64(i) / 100
			got := r.Advance(f)
			if want := f * tMax; got != want {
				t.Errorf("T=%v: Advance(%v) = %v, want %v", tMax, f, got, want)
			}
			if got < prev {
				t.Errorf("T=%v: Advance(%v) = %v is less than the previous %v", tMax, f, got, prev)
			}
			if c := r.Current(); c != got {
				t.Errorf("T=%v: Current() = %v after Advance returned %v", tMax, c, got)
			}
			prev = got
		}
		if got := r.Advance(0); got != 0 {
			t.Errorf("T=%v: Advance(0) = %v, want 0", tMax, got)
		}
		if _, hi := r.Visible(); hi != DefaultEpsilon {
			t.Errorf("T=%v: visible domain ends at %v after Advance(0), want %v", tMax, hi, DefaultEpsilon)
		}
		if got := r.Advance(1); got != tMax {
			t.Errorf("T=%v: Advance(1) = %v, want exactly %v", tMax, got, tMax)
		}
		if !r.Done() {
			t.Errorf("T=%v: not done after Advance(1)", tMax)
		}
	}
}

func TestRevealerClamp(t *testing.T) {
	r := MustRevealer(2*math.Pi/10, 3*time.Second)
	tests := []struct {
		in, same float64
	}{
		{-0.1, 0},
		{-100, 0},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
		{1.5, 1},
		{1 + 1e-12, 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		want := r.Advance(tt.same)
		if got := r.Advance(tt.in); got != want {
			t.Errorf("Advance(%v) = %v, want Advance(%v) = %v", tt.in, got, tt.same, want)
		}
	}
}

func TestRevealerSeek(t *testing.T) {
	tMax := 2 * math.Pi / 5
	r := MustRevealer(tMax, 6*time.Second)

	tests := []struct {
		elapsed  time.Duration
		fraction float64
	}{
		{-time.Second, 0},
		{0, 0},
		{1500 * time.Millisecond, 0.25},
		{3 * time.Second, 0.5},
		{6 * time.Second, 1},
		{time.Minute, 1},
	}
	for _, tt := range tests {
		if f := r.Fraction(tt.elapsed); f != tt.fraction {
			t.Errorf("Fraction(%v) = %v, want %v", tt.elapsed, f, tt.fraction)
		}
		if got, want := r.Seek(tt.elapsed), r.Advance(tt.fraction); got != want {
			t.Errorf("Seek(%v) = %v, want %v", tt.elapsed, got, want)
		}
	}

	r.Seek(3 * time.Second)
	if c := r.Current(); c != tMax/2 {
		t.Errorf("got %v halfway through, want %v", c, tMax/2)
	}
	r.Reset()
	if c := r.Current(); c != DefaultEpsilon {
		t.Errorf("got %v after reset, want %v", c, DefaultEpsilon)
	}
}
