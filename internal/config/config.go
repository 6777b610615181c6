// Package config loads the optional localpaint.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/share"
)

// FileName is the config file looked up when no path is given.
const FileName = "localpaint.yaml"

// Config mirrors localpaint.yaml. Every field is optional.
type Config struct {
	Brush  BrushConfig  `yaml:"brush"`
	Window WindowConfig `yaml:"window"`
	Share  ShareConfig  `yaml:"share"`
}

// BrushConfig holds the brush the app starts with.
type BrushConfig struct {
	Color         string `yaml:"color,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	Mode          string `yaml:"mode,omitempty"`
	GradientColor string `yaml:"gradient_color,omitempty"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title      string  `yaml:"title,omitempty"`
	Width      float32 `yaml:"width,omitempty"`
	Height     float32 `yaml:"height,omitempty"`
	Background string  `yaml:"background,omitempty"`
}

// ShareConfig controls the live share hub.
type ShareConfig struct {
	Enabled   *bool `yaml:"enabled,omitempty"`
	Port      int   `yaml:"port,omitempty"`
	Advertise *bool `yaml:"advertise,omitempty"`
}

// Resolved is the configuration with defaults filled in and names parsed.
type Resolved struct {
	Brush        paint.BrushConfig
	Title        string
	WindowWidth  float32
	WindowHeight float32
	Background   paint.RGB
	ShareEnabled bool
	SharePort    int
	Advertise    bool
}

// LoadOptional reads path if it exists. A missing file yields an empty
// Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Load reads path (if present) and resolves it.
func Load(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve fills in defaults and validates names.
func (c *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Brush:        paint.DefaultBrush(),
		Title:        "LocalPaint",
		WindowWidth:  1024,
		WindowHeight: 768,
		Background:   paint.White,
		SharePort:    share.DefaultPort,
		Advertise:    true,
	}

	var err error
	if c.Brush.Color != "" {
		if r.Brush.Color, err = paint.ParseColor(c.Brush.Color); err != nil {
			return nil, fmt.Errorf("brush.color: %w", err)
		}
	}
	if c.Brush.GradientColor != "" {
		if r.Brush.GradientColor, err = paint.ParseColor(c.Brush.GradientColor); err != nil {
			return nil, fmt.Errorf("brush.gradient_color: %w", err)
		}
	}
	if c.Brush.Mode != "" {
		if r.Brush.Mode, err = paint.ParseMode(c.Brush.Mode); err != nil {
			return nil, fmt.Errorf("brush.mode: %w", err)
		}
	}
	if c.Brush.Width != 0 {
		r.Brush.SetWidth(c.Brush.Width)
	}

	if t := strings.TrimSpace(c.Window.Title); t != "" {
		r.Title = t
	}
	if c.Window.Width > 0 {
		r.WindowWidth = c.Window.Width
	}
	if c.Window.Height > 0 {
		r.WindowHeight = c.Window.Height
	}
	if c.Window.Background != "" {
		if r.Background, err = paint.ParseColor(c.Window.Background); err != nil {
			return nil, fmt.Errorf("window.background: %w", err)
		}
	}

	if c.Share.Enabled != nil {
		r.ShareEnabled = *c.Share.Enabled
	}
	if c.Share.Advertise != nil {
		r.Advertise = *c.Share.Advertise
	}
	if c.Share.Port != 0 {
		if c.Share.Port < 1 || c.Share.Port > 65535 {
			return nil, fmt.Errorf("share.port: %d out of range", c.Share.Port)
		}
		r.SharePort = c.Share.Port
	}
	return r, nil
}
