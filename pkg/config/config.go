// Package config loads shuffle's configuration.
//
// Values are layered: built-in defaults, then an optional TOML file, then
// environment variables prefixed with SHUFFLE_ (for example
// SHUFFLE_GESTURE_OUTER=400). The file is taken from the explicit path
// given to [Load], else $SHUFFLE_CONFIG, else
// $XDG_CONFIG_HOME/shuffle/config.toml (~/.config/shuffle/config.toml).
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/shuffle/pkg/errors"
	"github.com/matzehuels/shuffle/pkg/surface"
	"github.com/matzehuels/shuffle/pkg/swap"
)

const appName = "shuffle"

// Config holds application configuration.
type Config struct {
	Gesture   GestureConfig   `mapstructure:"gesture"`
	Animation AnimationConfig `mapstructure:"animation"`
	Cards     CardsConfig     `mapstructure:"cards"`
	Terminal  TerminalConfig  `mapstructure:"terminal"`

	// File is the config file that was read, or "" if none was found.
	File string `mapstructure:"-"`
}

// GestureConfig tunes the tension mapping and the swap threshold.
type GestureConfig struct {
	Inner      float64 `mapstructure:"inner"`
	Outer      float64 `mapstructure:"outer"`
	Tension    float64 `mapstructure:"tension"`
	Affordance float64 `mapstructure:"affordance"`
}

// AnimationConfig holds animation durations in milliseconds.
type AnimationConfig struct {
	SettleMS  int `mapstructure:"settle_ms"`
	PreviewMS int `mapstructure:"preview_ms"`
}

// CardsConfig holds card geometry and elevation levels, in pixels.
type CardsConfig struct {
	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	Offset    float64 `mapstructure:"offset"`
	DepthLow  float64 `mapstructure:"depth_low"`
	DepthMid  float64 `mapstructure:"depth_mid"`
	DepthHigh float64 `mapstructure:"depth_high"`
}

// TerminalConfig maps terminal cells to surface pixels for the play host.
type TerminalConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gesture.inner", 100.0)
	v.SetDefault("gesture.outer", 370.0)
	v.SetDefault("gesture.tension", 0.8)
	v.SetDefault("gesture.affordance", 0.05)
	v.SetDefault("animation.settle_ms", 200)
	v.SetDefault("animation.preview_ms", 200)
	v.SetDefault("cards.width", 240.0)
	v.SetDefault("cards.height", 160.0)
	v.SetDefault("cards.offset", 20.0)
	v.SetDefault("cards.depth_low", 2.0)
	v.SetDefault("cards.depth_mid", 6.0)
	v.SetDefault("cards.depth_high", 12.0)
	v.SetDefault("terminal.cell_width", 10.0)
	v.SetDefault("terminal.cell_height", 20.0)
}

// Default returns the built-in configuration. It panics if the default
// table does not decode into Config.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	c, err := decode(v)
	if err != nil {
		panic(err)
	}
	return c
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "unmarshal config")
	}
	return c, nil
}

// Load reads configuration from path (may be empty), the environment and
// the defaults, and validates the result. An explicitly named file must
// exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("SHUFFLE_CONFIG")
		explicit = path != ""
	}
	if explicit {
		if err := errors.ValidatePath(path); err != nil {
			return Config{}, err
		}
		if _, err := os.Stat(path); stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		v.SetConfigFile(path)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHUFFLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !stderrors.As(err, &notFound) {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
		}
	}

	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	c.File = v.ConfigFileUsed()
	if _, err := os.Stat(c.File); err != nil {
		c.File = ""
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// configDir returns the config directory using XDG standard (~/.config/shuffle/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Validate checks every value the gesture pipeline depends on.
func (c Config) Validate() error {
	g := c.Gesture
	if err := errors.ValidateRadii(g.Inner, g.Outer); err != nil {
		return err
	}
	if err := errors.ValidateTension(g.Tension); err != nil {
		return err
	}
	if err := errors.ValidateAffordance(g.Affordance, g.Inner, g.Outer); err != nil {
		return err
	}
	if c.Animation.SettleMS < 0 || c.Animation.PreviewMS < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation durations cannot be negative")
	}
	if c.Cards.Width <= 0 || c.Cards.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "card size must be positive, got %vx%v", c.Cards.Width, c.Cards.Height)
	}
	if c.Cards.Offset < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "card offset cannot be negative, got %v", c.Cards.Offset)
	}
	d := c.Cards
	if !(d.DepthLow < d.DepthMid && d.DepthMid < d.DepthHigh) {
		return errors.New(errors.ErrCodeInvalidConfig, "depths must satisfy low < mid < high, got %v/%v/%v", d.DepthLow, d.DepthMid, d.DepthHigh)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "terminal cell size must be positive")
	}
	return nil
}

// Options converts the configuration into surface options.
func (c Config) Options() surface.Options {
	return surface.Options{
		Inner:           c.Gesture.Inner,
		Outer:           c.Gesture.Outer,
		Tension:         c.Gesture.Tension,
		Affordance:      c.Gesture.Affordance,
		SettleDuration:  time.Duration(c.Animation.SettleMS) * time.Millisecond,
		PreviewDuration: time.Duration(c.Animation.PreviewMS) * time.Millisecond,
		Offset:          c.Cards.Offset,
		Depths: swap.Depths{
			Low:  c.Cards.DepthLow,
			Mid:  c.Cards.DepthMid,
			High: c.Cards.DepthHigh,
		},
	}
}
