// Package config provides configuration types, defaults, and persistence for
// finishline.
package config

import (
	"fmt"
	"regexp"

	"golang.org/x/text/language"
)

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool `mapstructure:"show_status_bar" yaml:"show_status_bar"`
}

// ThemeConfig holds theme color overrides as hex values.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight" yaml:"highlight"`
	Subtle    string `mapstructure:"subtle" yaml:"subtle"`
	Error     string `mapstructure:"error" yaml:"error"`
	Success   string `mapstructure:"success" yaml:"success"`
}

// Config holds all configuration options for finishline.
type Config struct {
	// Locale is a BCP 47 tag (e.g. "nb", "tr") controlling how participant
	// names are case-mapped. Empty means locale-neutral rules.
	Locale string      `mapstructure:"locale" yaml:"locale"`
	UI     UIConfig    `mapstructure:"ui" yaml:"ui"`
	Theme  ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Locale: "",
		UI: UIConfig{
			ShowStatusBar: true,
		},
		Theme: ThemeConfig{
			Highlight: "#AD58B4",
			Subtle:    "#5C5C5C",
			Error:     "#E95678",
			Success:   "#73F59F",
		},
	}
}

// LanguageTag parses the configured locale. An empty locale yields
// language.Und (locale-neutral case mapping).
func (c Config) LanguageTag() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the configuration for values that would break startup.
func Validate(cfg Config) error {
	if _, err := cfg.LanguageTag(); err != nil {
		return err
	}
	colors := map[string]string{
		"theme.highlight": cfg.Theme.Highlight,
		"theme.subtle":    cfg.Theme.Subtle,
		"theme.error":     cfg.Theme.Error,
		"theme.success":   cfg.Theme.Success,
	}
	for key, value := range colors {
		if value != "" && !hexColorPattern.MatchString(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
	}
	return nil
}
