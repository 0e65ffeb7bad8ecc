// Package config loads tool configuration from an optional YAML file, with
// HTMLPRESS_* environment overrides applied on top. CLI flags override both.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/htmlpress/internal/errors"
)

// Config holds all tool-level settings.
type Config struct {
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Build     BuildConfig     `yaml:"build"`
	Watch     WatchConfig     `yaml:"watch"`
}

// ToolchainConfig locates the Node toolchain used for the external tools.
type ToolchainConfig struct {
	// Dir is the directory holding package.json, input.css and node_modules.
	Dir string `yaml:"dir"`

	// Npx is the binary used to invoke the external tools.
	Npx string `yaml:"npx"`
}

// BuildConfig supplies defaults for the build flags.
type BuildConfig struct {
	// Minify defaults to true; a nil pointer means "not specified".
	Minify *bool `yaml:"minify"`

	Preflight     bool `yaml:"preflight"`
	ForceTailwind bool `yaml:"force_tailwind"`
}

// WatchConfig tunes watch mode. Durations are Go duration strings ("500ms").
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
	Interval string `yaml:"interval"`
}

// Load reads the configuration from path. A missing file is only an error
// when the path was given explicitly; otherwise defaults apply.
func Load(path string, explicit bool) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigInvalid(err)
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, errors.ConfigNotFound(path)
		}
	default:
		return nil, errors.ReadFailed(path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies HTMLPRESS_* environment overrides on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("HTMLPRESS_TOOLCHAIN_DIR"); v != "" {
		c.Toolchain.Dir = v
	}
	if v := os.Getenv("HTMLPRESS_NPX"); v != "" {
		c.Toolchain.Npx = v
	}
	if v := os.Getenv("HTMLPRESS_MINIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Build.Minify = &b
		}
	}
	if v := os.Getenv("HTMLPRESS_PREFLIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Build.Preflight = b
		}
	}
	if v := os.Getenv("HTMLPRESS_FORCE_TAILWIND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Build.ForceTailwind = b
		}
	}
	if v := os.Getenv("HTMLPRESS_WATCH_DEBOUNCE"); v != "" {
		c.Watch.Debounce = v
	}
	if v := os.Getenv("HTMLPRESS_WATCH_INTERVAL"); v != "" {
		c.Watch.Interval = v
	}
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() {
	if c.Toolchain.Dir == "" {
		c.Toolchain.Dir = "javascript"
	}
	if c.Toolchain.Npx == "" {
		c.Toolchain.Npx = "npx"
	}
	if c.Build.Minify == nil {
		enabled := true
		c.Build.Minify = &enabled
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = "500ms"
	}
	// Watch.Interval stays empty: periodic rebuilds are opt-in.
}

// Validate checks field values after defaults were applied.
func (c *Config) Validate() error {
	if d, err := time.ParseDuration(c.Watch.Debounce); err != nil || d < 0 {
		return errors.New(errors.CategoryConfig, "watch.debounce must be a non-negative duration: "+c.Watch.Debounce)
	}
	if c.Watch.Interval != "" {
		if d, err := time.ParseDuration(c.Watch.Interval); err != nil || d < 0 {
			return errors.New(errors.CategoryConfig, "watch.interval must be a non-negative duration: "+c.Watch.Interval)
		}
	}
	return nil
}

// MinifyEnabled resolves the minify default.
func (c *Config) MinifyEnabled() bool {
	return c.Build.Minify == nil || *c.Build.Minify
}

// DebounceDuration returns the parsed watch debounce window.
func (c *Config) DebounceDuration() time.Duration {
	d, _ := time.ParseDuration(c.Watch.Debounce)
	return d
}

// IntervalDuration returns the parsed periodic rebuild interval, zero when
// periodic rebuilds are disabled.
func (c *Config) IntervalDuration() time.Duration {
	if c.Watch.Interval == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Watch.Interval)
	return d
}
