// Command phasor animates a complex phasor u(t) = A·e^{jωt} next to its
// derivative du/dt, revealing both curves progressively, for several
// frequencies in turn.
//
// Usage
//
// The phasor command takes one optional argument:
//
//	phasor [config_file]
//
// It is the path to a TOML config file, or a YAML one if its name ends in
// .yaml or .yml. If no config file is specified, the animation runs with
// default parameters in the terminal.
//
// Config file
//
// Top-level keys select the output; the [scene] table holds the animation
// parameters. For example:
//
//	output = "frames"  # write SVG frames to ./frames instead of playing
//	fps = 30
//
//	[scene]
//	amplitude = 5
//	frequencies = [5, 10, 20]
//	run_times = { 5 = 6, 10 = 3, 20 = 1.5 }
//	components = true
//
// Run times are the seconds it takes to reveal one period at each
// frequency.
//
// Terminal mode
//
// Pressing Esc, q or Ctrl-C quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sgostarter/i/l"

	"honnef.co/go/reveal/internal/scene"
	"honnef.co/go/reveal/internal/svgout"
	"honnef.co/go/reveal/internal/term"
)

const usage = `Usage: phasor [config_file]

The first argument is optional and is the path to a TOML (or YAML) config
file. If no config file is specified, the animation runs with default
parameters in the terminal.
`

func main() {
	logger := l.NewConsoleLoggerWrapper()

	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConfig()
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("invalid configuration")
	}

	script, err := conf.Scene.Script()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("building script")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.Output == "" {
		err = runTerminal(ctx, conf, script)
	} else {
		err = runSVG(ctx, conf, script, logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.WithFields(l.ErrorField(err)).Fatal("animation failed")
	}
}

// runTerminal plays the script in the terminal. Logging would garble the
// screen, so the player gets no logger.
func runTerminal(ctx context.Context, conf *Config, script *scene.Script) error {
	t, err := term.New(nil)
	if err != nil {
		return err
	}
	defer t.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go t.Watch(ctx, cancel)

	return scene.NewPlayer(script, t, conf.FPS, nil).Play(ctx)
}

func runSVG(ctx context.Context, conf *Config, script *scene.Script, logger l.Wrapper) error {
	w, err := svgout.NewWriter(conf.Output, conf.Width, conf.Height, logger)
	if err != nil {
		return err
	}
	logger.WithFields(
		l.StringField("dir", conf.Output),
		l.StringField("duration", script.Duration().String()),
	).Info("rendering frames")
	_, err = scene.NewPlayer(script, w, conf.FPS, logger).Render(ctx)
	return err
}
