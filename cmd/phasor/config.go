package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"

	"honnef.co/go/reveal/internal/scene"
)

// Config holds the parameters of a run.
type Config struct {
	// Output is either a directory for SVG frames, or the empty string to
	// play the animation in the terminal.
	Output string `toml:"output" yaml:"output"`

	FPS    int `toml:"fps" yaml:"fps"`
	Width  int `toml:"width" yaml:"width"`   // pixels (svg only)
	Height int `toml:"height" yaml:"height"` // pixels (svg only)

	Scene scene.Config `toml:"scene" yaml:"scene"`
}

// DefaultConfig returns the default parameters.
func DefaultConfig() *Config {
	return &Config{
		Output: "",
		FPS:    scene.DefaultFPS,
		Width:  1280,
		Height: 720,
		Scene:  scene.DefaultConfig(),
	}
}

// ParseConfig parses the config file whose path is provided. Files ending in
// .yaml or .yml are read as YAML, anything else as TOML. Values in the file
// overwrite the defaults. Maps such as run times replace the default maps as
// a whole, so "5" and "5.0" can't both end up naming ω = 5.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	defaults := conf.Scene
	conf.Scene.RunTimes, conf.Scene.Colors = nil, nil
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		md, err := toml.DecodeFile(path, conf)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: unknown keys %v", path, undecoded)
		}
	}
	if conf.Scene.RunTimes == nil {
		conf.Scene.RunTimes = defaults.RunTimes
	}
	if conf.Scene.Colors == nil {
		conf.Scene.Colors = defaults.Colors
	}
	if conf.FPS < 0 || conf.FPS > scene.MaxFPS {
		return nil, fmt.Errorf("%s: fps %d isn't in [0, %d]: %w", path, conf.FPS, scene.MaxFPS, commerr.ErrInvalidArgument)
	}
	if err := conf.Scene.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}
