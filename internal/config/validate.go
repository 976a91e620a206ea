package config

import (
	"fmt"
	"strings"
)

var validStyles = map[string]bool{
	"auto":  true,
	"dark":  true,
	"light": true,
	"notty": true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Width < 20 || cfg.Width > 400 {
		return fmt.Errorf("config: 'width' must be between 20 and 400, got %d", cfg.Width)
	}
	if cfg.Style == "" {
		cfg.Style = DefaultStyle
	}
	if !validStyles[cfg.Style] {
		return fmt.Errorf("config: unknown style %q (must be auto, dark, light, or notty)", cfg.Style)
	}
	seen := make(map[string]bool)
	for i, p := range cfg.Content {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config: content %d: empty path", i+1)
		}
		if seen[p] {
			return fmt.Errorf("config: duplicate content path %q", p)
		}
		seen[p] = true
	}
	return nil
}
