// Package config loads the profiler's run parameters.
//
// Every parameter has a default matching the profiler's fixed run shape.
// Values can be overridden from a YAML file and from LATENCY_* environment
// variables (environment wins).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/randomizedcoder/queue-latency-profiler/internal/tick"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

const (
	// EnvPrefix prefixes environment overrides, e.g. LATENCY_MESSAGES.
	EnvPrefix = "LATENCY"

	// FileName is the config file looked up in the working directory
	// when no explicit path is given.
	FileName = "latency-profiler"
)

// Defaults for the fixed run parameters.
const (
	DefaultMessages = 1_000_000
	DefaultCapacity = 1024
)

// Config holds the parameters of one profiler run.
type Config struct {
	Messages        int           `mapstructure:"messages"`
	Capacity        int           `mapstructure:"capacity"`
	SendDelay       time.Duration `mapstructure:"send_delay"`
	Pacer           string        `mapstructure:"pacer"`
	OutputDir       string        `mapstructure:"output_dir"`
	MetricsTextfile bool          `mapstructure:"metrics_textfile"`
	LogLevel        string        `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("messages", DefaultMessages)
	v.SetDefault("capacity", DefaultCapacity)
	v.SetDefault("send_delay", tick.DefaultInterval)
	v.SetDefault("pacer", tick.KindSleep)
	v.SetDefault("output_dir", ".")
	v.SetDefault("metrics_textfile", true)
	v.SetDefault("log_level", "info")
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Messages:        DefaultMessages,
		Capacity:        DefaultCapacity,
		SendDelay:       tick.DefaultInterval,
		Pacer:           tick.KindSleep,
		OutputDir:       ".",
		MetricsTextfile: true,
		LogLevel:        "info",
	}
}

// Load reads the configuration.
//
// With an empty path, latency-profiler.yaml in the working directory is used
// if present and silently skipped otherwise. A non-empty path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first out-of-range parameter.
func (c *Config) Validate() error {
	switch {
	case c.Messages < 0:
		return fmt.Errorf("%w: messages must be >= 0, got %d", ErrInvalid, c.Messages)
	case c.Capacity < 2:
		return fmt.Errorf("%w: capacity must be >= 2, got %d", ErrInvalid, c.Capacity)
	case c.SendDelay < 0:
		return fmt.Errorf("%w: send_delay must be >= 0, got %s", ErrInvalid, c.SendDelay)
	case c.Pacer != tick.KindSleep && c.Pacer != tick.KindSpin:
		return fmt.Errorf("%w: pacer must be %q or %q, got %q", ErrInvalid, tick.KindSleep, tick.KindSpin, c.Pacer)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalid)
	}
	return nil
}
