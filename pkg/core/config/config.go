package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	"github.com/msto63/drawlang/foundation/utils/filex"
)

const (
	// EnvConfigPath names the environment variable holding the config path
	EnvConfigPath = "DRAWLANG_CONFIG"

	// DefaultMaxTokens is the stream length limit when none is configured.
	// An explicit max_tokens = 0 in a file disables the limit.
	DefaultMaxTokens = 100000
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Parser  ParserConfig  `toml:"parser"`
	Output  OutputConfig  `toml:"output"`
	Watch   WatchConfig   `toml:"watch"`

	// path the configuration was loaded from; empty for defaults
	source string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ParserConfig holds engine limits and diagnostics
type ParserConfig struct {
	MaxTokens int  `toml:"max_tokens"`
	Trace     bool `toml:"trace"`
}

// OutputConfig controls how drawc prints trees
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// WatchConfig controls drawc watch
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var (
	logLevels     = []string{"trace", "debug", "info", "warn", "error"}
	logFormats    = []string{"json", "text", "console"}
	outputFormats = []string{"text", "tree", "json", "yaml"}
)

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{
		Output: OutputConfig{Color: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = filex.ExpandPath(path)

	if !filex.Exists(path) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load")
	}

	// keys absent from the file keep their defaults
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, mdwerror.Newf("unknown config key %s", undecoded[0]).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from DRAWLANG_CONFIG or the default
// locations. Defaults are returned when no file exists.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if filex.IsFile(p) {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv in order
func DefaultPaths() []string {
	return []string{
		"./configs/drawlang.toml",
		"./drawlang.toml",
		filex.ExpandPath("~/.config/drawlang/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Parser.MaxTokens == 0 {
		c.Parser.MaxTokens = DefaultMaxTokens
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}

	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 200 * time.Millisecond
	}
}

// Validate rejects values drawc cannot act on
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"general.log_level", c.General.LogLevel, logLevels},
		{"general.log_format", c.General.LogFormat, logFormats},
		{"output.format", c.Output.Format, outputFormats},
	}
	for _, check := range checks {
		if !contains(check.allowed, strings.ToLower(check.value)) {
			return invalid(check.key, check.value, fmt.Sprintf("must be one of %s", strings.Join(check.allowed, ", ")))
		}
	}

	if c.Parser.MaxTokens < 0 {
		return invalid("parser.max_tokens", c.Parser.MaxTokens, "must not be negative")
	}
	if c.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce", c.Watch.Debounce, "must not be negative")
	}
	return nil
}

// Source returns the file the configuration was loaded from, or "" for
// built-in defaults
func (c *Config) Source() string {
	return c.source
}

func invalid(key string, value interface{}, reason string) error {
	return mdwerror.Newf("invalid %s %v: %s", key, value, reason).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
