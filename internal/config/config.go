// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/vision-overlay-mcp/internal/graphic"
)

// Environment variables read by Load.
const (
	EnvLogLevel   = "OVERLAY_MCP_LOG_LEVEL"
	EnvLanguage   = "OVERLAY_MCP_LANGUAGE"
	EnvTextColor  = "OVERLAY_MCP_TEXT_COLOR"
	EnvLabelColor = "OVERLAY_MCP_LABEL_COLOR"
	EnvBoxColor   = "OVERLAY_MCP_BOX_COLOR"
)

// Config holds the settings shared by every tool call.
type Config struct {
	Debug    bool
	Language string

	Text      graphic.TextTheme
	Labels    graphic.LabelTheme
	Detection graphic.DetectionTheme
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Language:  "eng",
		Text:      graphic.DefaultTextTheme(),
		Labels:    graphic.DefaultLabelTheme(),
		Detection: graphic.DefaultDetectionTheme(),
	}
}

// Load builds a Config from the process environment.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which has the os.LookupEnv signature.
// An invalid color value is an error; unset values keep their defaults.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	cfg.Debug = strings.EqualFold(get(EnvLogLevel), "debug")
	if lang := get(EnvLanguage); lang != "" {
		cfg.Language = lang
	}

	colors := []struct {
		key string
		dst *color.Color
	}{
		{EnvTextColor, &cfg.Text.Color},
		{EnvLabelColor, &cfg.Labels.TextColor},
		{EnvBoxColor, &cfg.Detection.BoxColor},
	}
	for _, c := range colors {
		v := get(c.key)
		if v == "" {
			continue
		}
		parsed, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = parsed
	}

	return cfg, nil
}

// ParseColor parses "#RRGGBB" (or "RRGGBB") into an opaque color.
func ParseColor(s string) (color.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
