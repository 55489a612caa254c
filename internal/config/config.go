// Package config provides environment-sourced configuration for the CLI.
// Values are validated against the rendering whitelists at load time, so
// downstream components receive an explicit, already-checked value and
// never read the environment mid-render.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/cv-tailor/internal/rendering"
)

// Environment variable names consumed by FromEnv.
const (
	EnvOutputDir      = "CVTAILOR_OUTPUT_DIR"
	EnvTempDir        = "CVTAILOR_TEMP_DIR"
	EnvConvertTimeout = "CVTAILOR_CONVERT_TIMEOUT"
	EnvPageSize       = "CVTAILOR_PAGE_SIZE"
	EnvMarginTop      = "CVTAILOR_MARGIN_TOP"
	EnvMarginRight    = "CVTAILOR_MARGIN_RIGHT"
	EnvMarginBottom   = "CVTAILOR_MARGIN_BOTTOM"
	EnvMarginLeft     = "CVTAILOR_MARGIN_LEFT"
	EnvFontSize       = "CVTAILOR_FONT_SIZE"
	EnvHeadingSize    = "CVTAILOR_HEADING_SIZE"
	EnvLineHeight     = "CVTAILOR_LINE_HEIGHT"
)

// defaultConvertTimeout bounds the external PDF conversion step.
const defaultConvertTimeout = 30 * time.Second

// Config holds the validated runtime configuration.
type Config struct {
	OutputDir      string
	TempDir        string
	ConvertTimeout time.Duration
	Style          rendering.StyleOptions
}

// FromEnv loads configuration from the environment, applying defaults for
// unset variables. Style values are validated against the rendering
// whitelists before the config is returned.
func FromEnv() (*Config, error) {
	cfg := &Config{
		OutputDir:      envOr(EnvOutputDir, "out"),
		TempDir:        envOr(EnvTempDir, os.TempDir()),
		ConvertTimeout: defaultConvertTimeout,
		Style:          styleFromEnv(),
	}

	if raw := os.Getenv(EnvConvertTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvConvertTimeout, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive", EnvConvertTimeout)
		}
		cfg.ConvertTimeout = timeout
	}

	if err := cfg.Style.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style configuration: %w", err)
	}
	return cfg, nil
}

// styleFromEnv overlays environment values onto the rendering defaults.
func styleFromEnv() rendering.StyleOptions {
	style := rendering.DefaultStyle()
	style.PageSize = envOr(EnvPageSize, style.PageSize)
	style.MarginTop = envOr(EnvMarginTop, style.MarginTop)
	style.MarginRight = envOr(EnvMarginRight, style.MarginRight)
	style.MarginBottom = envOr(EnvMarginBottom, style.MarginBottom)
	style.MarginLeft = envOr(EnvMarginLeft, style.MarginLeft)
	style.FontSize = envOr(EnvFontSize, style.FontSize)
	style.HeadingSize = envOr(EnvHeadingSize, style.HeadingSize)
	style.LineHeight = envOr(EnvLineHeight, style.LineHeight)
	return style
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
