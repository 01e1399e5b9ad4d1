package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/spf13/cast"
)

// Config holds the parameters of the phasor animation. Durations are in
// seconds.
//
// RunTimes and Colors are keyed by angular frequency. Config files can only
// use strings as keys, so keys are converted to numbers when looked up.
type Config struct {
	Amplitude   float64            `toml:"amplitude" yaml:"amplitude"`
	Frequencies []float64          `toml:"frequencies" yaml:"frequencies"`
	RunTimes    map[string]float64 `toml:"run_times" yaml:"run_times"`
	Colors      map[string]string  `toml:"colors" yaml:"colors"`

	FunctionColor   string `toml:"function_color" yaml:"function_color"`
	DerivativeColor string `toml:"derivative_color" yaml:"derivative_color"`

	// NormalizeDerivative draws du/dt in the split scenes with the modulus
	// of u, so that both fit the same plane.
	NormalizeDerivative bool `toml:"normalize_derivative" yaml:"normalize_derivative"`

	// ShowComponents adds, after each split scene, a scene plotting the real and
	// imaginary parts of du/dt against t over three periods.
	ShowComponents   bool    `toml:"components" yaml:"components"`
	ComponentRunTime float64 `toml:"component_run_time" yaml:"component_run_time"`

	LeadIn    float64 `toml:"lead_in" yaml:"lead_in"`
	Hold      float64 `toml:"hold" yaml:"hold"`
	Fade      float64 `toml:"fade" yaml:"fade"`
	FinalHold float64 `toml:"final_hold" yaml:"final_hold"`

	Samples int `toml:"samples" yaml:"samples"`

	SplitPlane             Plane `toml:"split_plane" yaml:"split_plane"`
	CompareFunctionPlane   Plane `toml:"compare_function_plane" yaml:"compare_function_plane"`
	CompareDerivativePlane Plane `toml:"compare_derivative_plane" yaml:"compare_derivative_plane"`
	// Gap is the horizontal space between the panels of a scene.
	Gap float64 `toml:"gap" yaml:"gap"`
}

// DefaultConfig returns the parameters of the standard animation: a phasor
// of modulus 5 at ω = 5, 10 and 20, with faster oscillations revealed in
// less time.
func DefaultConfig() Config {
	return Config{
		Amplitude:   5,
		Frequencies: []float64{5, 10, 20},
		RunTimes:    map[string]float64{"5": 6, "10": 3, "20": 1.5},
		Colors:      map[string]string{"5": "red", "10": "teal", "20": "yellow"},

		FunctionColor:   "blue",
		DerivativeColor: "red",

		NormalizeDerivative: true,
		ComponentRunTime:    2,

		LeadIn:    0.3,
		Hold:      1.2,
		Fade:      1,
		FinalHold: 3,

		Samples: 100,

		SplitPlane:             SquarePlane(6, 4.2),
		CompareFunctionPlane:   SquarePlane(7, 4.2),
		CompareDerivativePlane: SquarePlane(110, 2.8),
		Gap:                    1.2,
	}
}

// Validate checks the configuration for values that cannot produce an
// animation. It does not replace invalid values with defaults.
func (c Config) Validate() error {
	if !(c.Amplitude > 0) {
		return fmt.Errorf("scene: amplitude %v isn't positive: %w", c.Amplitude, commerr.ErrInvalidArgument)
	}
	if len(c.Frequencies) == 0 {
		return fmt.Errorf("scene: no frequencies: %w", commerr.ErrInvalidArgument)
	}
	if err := checkFrequencyKeys("run time", c.RunTimes); err != nil {
		return err
	}
	if err := checkFrequencyKeys("color", c.Colors); err != nil {
		return err
	}
	for _, w := range c.Frequencies {
		if !(w > 0) {
			return fmt.Errorf("scene: frequency %v isn't positive: %w", w, commerr.ErrInvalidArgument)
		}
		d, err := c.RunTime(w)
		if err != nil {
			return err
		}
		if d <= 0 {
			return fmt.Errorf("scene: run time %v for ω=%v isn't positive: %w", d, w, commerr.ErrInvalidArgument)
		}
	}
	if c.ShowComponents && !(c.ComponentRunTime > 0) {
		return fmt.Errorf("scene: component run time %v isn't positive: %w", c.ComponentRunTime, commerr.ErrInvalidArgument)
	}
	for name, v := range map[string]float64{
		"lead_in":    c.LeadIn,
		"hold":       c.Hold,
		"fade":       c.Fade,
		"final_hold": c.FinalHold,
		"gap":        c.Gap,
	} {
		if v < 0 {
			return fmt.Errorf("scene: %s %v is negative: %w", name, v, commerr.ErrInvalidArgument)
		}
	}
	if c.Samples < 0 {
		return fmt.Errorf("scene: sample count %d is negative: %w", c.Samples, commerr.ErrInvalidArgument)
	}
	for _, p := range []Plane{c.SplitPlane, c.CompareFunctionPlane, c.CompareDerivativePlane} {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RunTime returns the time it takes to reveal one period at frequency w.
// It returns an error wrapping [commerr.ErrNotFound] if no run time is
// configured for w.
//
// If two keys name w, which one is used is unspecified; [Config.Validate]
// rejects such configurations.
func (c Config) RunTime(w float64) (time.Duration, error) {
	for k, v := range c.RunTimes {
		kw, err := cast.ToFloat64E(k)
		if err == nil && kw == w {
			return seconds(v), nil
		}
	}
	return 0, fmt.Errorf("scene: no run time for ω=%v: %w", w, commerr.ErrNotFound)
}

// Color returns the color of curves at frequency w, or fallback if none is
// configured.
func (c Config) Color(w float64, fallback string) string {
	for k, v := range c.Colors {
		if kw, err := cast.ToFloat64E(k); err == nil && kw == w {
			return v
		}
	}
	return fallback
}

// checkFrequencyKeys reports keys of m that aren't numbers, and distinct keys
// such as "5" and "5.0" that name the same frequency.
func checkFrequencyKeys[V any](name string, m map[string]V) error {
	seen := make(map[float64]string, len(m))
	for k := range m {
		w, err := cast.ToFloat64E(k)
		if err != nil {
			return fmt.Errorf("scene: %s key %q isn't a frequency: %w", name, k, commerr.ErrInvalidArgument)
		}
		if prev, ok := seen[w]; ok {
			return fmt.Errorf("scene: %s keys %q and %q are the same frequency: %w", name, prev, k, commerr.ErrInvalidArgument)
		}
		seen[w] = k
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
