package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/duration"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv is the environment variable pointing to an optional YAML
// configuration file.
const ConfigPathEnv = "NOTIFY_HOOK_CONFIG_PATH" // nolint:revive

// ErrNilConfig is returned when a nil config is passed to a function.
var ErrNilConfig = errors.New("nil config")

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// HTTPConfig is the configuration of the webhook HTTP client.
type HTTPConfig struct {
	// CAFile is a PEM bundle of extra certificate authorities to trust when
	// delivering to https hook URLs.
	CAFile string `env:"CA_FILE" yaml:"ca_file"`

	// Timeout bounds each delivery, i.e. "30s" or "2m". Deliveries never time
	// out when it is empty.
	Timeout string `env:"TIMEOUT" yaml:"timeout"`
}

// TimeoutDuration returns the parsed delivery timeout, zero when unset or
// invalid.
func (c HTTPConfig) TimeoutDuration() time.Duration {
	d, _ := duration.Parse(c.Timeout)
	return d
}

// Config is the process configuration of notify-hook. Repository settings
// live in the git config, see LoadRepoConfig.
type Config struct {
	// Debug enables debug logging and echoes payloads to stdout.
	Debug bool `env:"DEBUG" yaml:"debug"`

	// Verbose adds the caller to log lines. It only takes effect in debug
	// mode.
	Verbose bool `env:"VERBOSE" yaml:"verbose"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// HTTP is the HTTP client configuration.
	HTTP HTTPConfig `envPrefix:"HTTP_" yaml:"http"`
}

// ParseFile parses the given file as a configuration file.
// The file must be in YAML format.
// This also calls Validate() on the config.
func (c *Config) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return c.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{
		Prefix: "NOTIFY_HOOK_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return c.Validate()
}

// Parse parses the config file pointed to by NOTIFY_HOOK_CONFIG_PATH, if
// any, then the environment variables, which take precedence.
// This also calls Validate() on the config.
func (c *Config) Parse() error {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := c.ParseFile(path); err != nil {
			return err
		}
	}

	return c.ParseEnv()
}

// DefaultConfig returns the default Config.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
	}
}

// ErrInvalidLogFormat is returned when the log format is unknown.
var ErrInvalidLogFormat = errors.New("invalid log format")

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "", "json", "logfmt", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	if c.HTTP.CAFile != "" {
		if _, err := os.Stat(c.HTTP.CAFile); err != nil {
			return fmt.Errorf("http ca file: %w", err)
		}
	}

	if c.HTTP.Timeout != "" {
		d, err := duration.Parse(c.HTTP.Timeout)
		if err != nil {
			return fmt.Errorf("http timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("http timeout: negative duration %q", c.HTTP.Timeout)
		}
	}

	return nil
}
