package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"slidepuzzle/internal/mathutil"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Board   BoardConfig   `yaml:"board"`
	Peek    PeekConfig    `yaml:"peek"`
	UI      UIConfig      `yaml:"ui"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
	Log     LogConfig     `yaml:"log"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type BoardConfig struct {
	Size          int     `yaml:"size"`
	Resolution    int     `yaml:"resolution"`
	OriginY       int     `yaml:"origin_y"`
	ShuffleMoves  int     `yaml:"shuffle_moves"`
	AnimationStep float64 `yaml:"animation_step"` // progress per tick, 60 ticks per second
	Easing        string  `yaml:"easing"`
}

type PeekConfig struct {
	Step   float64 `yaml:"step"`
	Easing string  `yaml:"easing"`
}

// RectConfig is a button hit box, top-left anchored.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type UIConfig struct {
	Play    RectConfig            `yaml:"play"`
	Credits RectConfig            `yaml:"credits"`
	Back    RectConfig            `yaml:"back"`
	Frames  map[string]RectConfig `yaml:"frames"` // keyed by board colour
}

type InputConfig struct {
	Actions map[string][]string `yaml:"actions"`
}

type AudioConfig struct {
	Dir        string  `yaml:"dir"` // empty: silent
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

type AssetsConfig struct {
	Dir string `yaml:"dir"` // empty: procedural textures
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the embedded configuration.
func Default() *Config {
	config, err := parse(defaultConfigYAML)
	if err != nil {
		panic("embedded config is invalid: " + err.Error())
	}
	return config
}

// LoadConfig loads the configuration from filename. Values missing from the
// file keep their embedded defaults. An empty filename returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	config, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	return config, nil
}

func parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(defaultConfigYAML, &config); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects configurations the board cannot be built from.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Scale < 1 {
		errs = append(errs, fmt.Errorf("display: scale must be at least 1, got %d", c.Display.Scale))
	}
	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("board: size must be at least 2, got %d", c.Board.Size))
	}
	if c.Board.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("board: resolution must be positive, got %d", c.Board.Resolution))
	} else if c.Board.Size > 0 && c.Board.Resolution%c.Board.Size != 0 {
		errs = append(errs, fmt.Errorf("board: resolution %d is not divisible by size %d", c.Board.Resolution, c.Board.Size))
	}
	if c.Board.ShuffleMoves < 0 {
		errs = append(errs, fmt.Errorf("board: shuffle_moves must not be negative, got %d", c.Board.ShuffleMoves))
	}
	if c.Board.AnimationStep <= 0 || c.Peek.Step <= 0 {
		errs = append(errs, errors.New("board/peek: animation steps must be positive"))
	}
	if _, ok := mathutil.ParseEasing(c.Board.Easing); !ok {
		errs = append(errs, fmt.Errorf("board: unknown easing %q", c.Board.Easing))
	}
	if _, ok := mathutil.ParseEasing(c.Peek.Easing); !ok {
		errs = append(errs, fmt.Errorf("peek: unknown easing %q", c.Peek.Easing))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetWindowSize returns the scaled window size.
func (c *Config) GetWindowSize() (int, int) {
	return c.Display.ScreenWidth * c.Display.Scale, c.Display.ScreenHeight * c.Display.Scale
}

func (c *Config) GetTileSize() float64 {
	return float64(c.Board.Resolution) / float64(c.Board.Size)
}

// GetBoardOrigin returns the board's top-left corner; the board is centred
// horizontally.
func (c *Config) GetBoardOrigin() mathutil.Vector2 {
	x := float64(c.Display.ScreenWidth)/2 - float64(c.Board.Resolution)/2
	return mathutil.V(x, float64(c.Board.OriginY))
}

func (c *Config) GetBoardEasing() mathutil.Easing {
	e, _ := mathutil.ParseEasing(c.Board.Easing)
	return e
}

func (c *Config) GetPeekEasing() mathutil.Easing {
	e, _ := mathutil.ParseEasing(c.Peek.Easing)
	return e
}
