// Package config loads inkwell's settings from a YAML file and registers
// the same fields as CLI flags, following MacroPower-x/magicschema's
// Config/RegisterFlags pattern so a flag and a config key always set the
// same field and share its default (flag names and YAML keys differ).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

var (
	ErrReadFile = errors.New("read config file")
	ErrParse    = errors.New("parse config file")
)

// Config holds every setting shared by cmd/inkwell's render, watch, and
// serve subcommands.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	MaxNestingDepth int  `yaml:"max_nesting_depth"`
	UnsafeHTML      bool `yaml:"unsafe_html"`

	// watch
	WatchDebounceMillis int      `yaml:"watch_debounce_millis"`
	IgnorePatterns      []string `yaml:"ignore_patterns"`

	// serve
	ListenAddr      string  `yaml:"listen_addr"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheDir        string  `yaml:"cache_dir"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "logfmt",
		MaxNestingDepth:     100,
		WatchDebounceMillis: 150,
		IgnorePatterns:      []string{".git", "node_modules"},
		ListenAddr:          ":8080",
		RateLimitPerSec:     10,
		RateLimitBurst:      20,
		CacheDir:            "",
	}
}

// Load reads and merges a YAML file into c. An empty path skips loading
// entirely and is not an error; a path that cannot be read returns
// ErrReadFile.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// RegisterFlags adds every Config field as a pflag, defaulting to whatever
// value c already holds (so flags layer on top of a loaded file).
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: logfmt, json")
	flags.IntVar(&c.MaxNestingDepth, "max-nesting-depth", c.MaxNestingDepth, "max container/inline nesting depth")
	flags.BoolVar(&c.UnsafeHTML, "unsafe-html", c.UnsafeHTML, "raw HTML option; has no effect, raw HTML is always emitted verbatim")
	flags.IntVar(&c.WatchDebounceMillis, "watch-debounce-ms", c.WatchDebounceMillis, "watch mode debounce window in milliseconds")
	flags.StringSliceVar(&c.IgnorePatterns, "ignore", c.IgnorePatterns, "glob patterns to ignore while watching")
	flags.StringVar(&c.ListenAddr, "listen", c.ListenAddr, "address for serve mode to listen on")
	flags.Float64Var(&c.RateLimitPerSec, "rate-limit", c.RateLimitPerSec, "render requests per second per client")
	flags.IntVar(&c.RateLimitBurst, "rate-limit-burst", c.RateLimitBurst, "render request burst per client")
	flags.StringVar(&c.CacheDir, "cache-dir", c.CacheDir, "badger cache directory; empty disables caching")
}
