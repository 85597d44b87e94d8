// Package config loads the simulated device profile and simulator settings.
//
// Values come from three layers, highest precedence first: environment
// variables prefixed SHELL_LAYOUT_ (dots become underscores, so
// SHELL_LAYOUT_DEVICE_INNER_HEIGHT sets device.inner_height), the JSON file at
// ConfigPath, and the built-in defaults of a 320x545 portrait phone at 1.5x.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/treykane/shell-layout/internal/logging"
)

const (
	configDirName  = ".shell-layout"
	configFileName = "config.json"

	// PathEnv overrides the config file location.
	PathEnv = "SHELL_LAYOUT_CONFIG"

	envPrefix = "SHELL_LAYOUT"
)

// ErrInvalidProfile is returned when a device profile cannot describe a screen.
var ErrInvalidProfile = errors.New("invalid device profile")

var log = logging.New("config")

// Config is the full simulator configuration.
type Config struct {
	Device          Device          `mapstructure:"device"`
	Keyboard        Keyboard        `mapstructure:"keyboard"`
	SoftwareButtons SoftwareButtons `mapstructure:"software_buttons"`
	UI              UI              `mapstructure:"ui"`
}

// Device describes the rendering surface in logical pixels, portrait.
type Device struct {
	InnerWidth       float64 `mapstructure:"inner_width"`
	InnerHeight      float64 `mapstructure:"inner_height"`
	DevicePixelRatio float64 `mapstructure:"device_pixel_ratio"`
	// ClientWidthInset is how much narrower the document client area is than
	// the inner width (e.g. an overlay scrollbar).
	ClientWidthInset float64 `mapstructure:"client_width_inset"`
}

// Keyboard holds the on-screen keyboard height used when it is shown.
type Keyboard struct {
	Height int `mapstructure:"height"`
}

// SoftwareButtons configures the software button bar. Size is its height in
// portrait and its width in landscape.
type SoftwareButtons struct {
	Size    int  `mapstructure:"size"`
	Enabled bool `mapstructure:"enabled"`
}

// UI holds presentation preferences for the simulator.
type UI struct {
	ShowHelp bool `mapstructure:"show_help"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Device: Device{
			InnerWidth:       320,
			InnerHeight:      545,
			DevicePixelRatio: 1.5,
		},
		Keyboard:        Keyboard{Height: 100},
		SoftwareButtons: SoftwareButtons{Size: 50},
	}
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(PathEnv)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads defaults, the optional config file and environment overrides,
// then validates the result. A missing config file is not an error.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		log.Debug("no config file, using defaults", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save validates cfg and writes it to ConfigPath.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	setValues(v.Set, cfg)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// Validate checks that the profile describes a usable screen.
func (c Config) Validate() error {
	if err := c.Device.Validate(); err != nil {
		return err
	}
	if c.Keyboard.Height < 0 {
		return fmt.Errorf("%w: keyboard.height %d is negative", ErrInvalidProfile, c.Keyboard.Height)
	}
	if c.SoftwareButtons.Size < 0 {
		return fmt.Errorf("%w: software_buttons.size %d is negative", ErrInvalidProfile, c.SoftwareButtons.Size)
	}
	return nil
}

// Validate checks the screen size and pixel ratio are positive.
func (d Device) Validate() error {
	switch {
	case d.InnerWidth <= 0:
		return fmt.Errorf("%w: inner_width %v must be positive", ErrInvalidProfile, d.InnerWidth)
	case d.InnerHeight <= 0:
		return fmt.Errorf("%w: inner_height %v must be positive", ErrInvalidProfile, d.InnerHeight)
	case d.DevicePixelRatio <= 0:
		return fmt.Errorf("%w: device_pixel_ratio %v must be positive", ErrInvalidProfile, d.DevicePixelRatio)
	case d.ClientWidthInset < 0 || d.ClientWidthInset > d.InnerWidth:
		return fmt.Errorf("%w: client_width_inset %v out of range", ErrInvalidProfile, d.ClientWidthInset)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	setValues(v.SetDefault, cfg)
}

func setValues(set func(key string, value any), cfg Config) {
	set("device.inner_width", cfg.Device.InnerWidth)
	set("device.inner_height", cfg.Device.InnerHeight)
	set("device.device_pixel_ratio", cfg.Device.DevicePixelRatio)
	set("device.client_width_inset", cfg.Device.ClientWidthInset)
	set("keyboard.height", cfg.Keyboard.Height)
	set("software_buttons.size", cfg.SoftwareButtons.Size)
	set("software_buttons.enabled", cfg.SoftwareButtons.Enabled)
	set("ui.show_help", cfg.UI.ShowHelp)
}
