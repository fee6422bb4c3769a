// Package config resolves runtime settings from flags, environment and
// defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the program reads,
// e.g. BROWSERQUIZ_LOG_FILE.
const EnvPrefix = "BROWSERQUIZ"

// Keys used for flag binding and lookup.
const (
	KeyLogFile  = "log_file"
	KeyLogLevel = "log_level"
)

// Config holds operational settings. The quiz content itself is compiled
// in and is not configurable.
type Config struct {
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// NewViper returns a viper instance with defaults and environment binding
// applied. Callers bind flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	// File logging is opt-in.
	v.SetDefault(KeyLogFile, "")
	return v
}

// Load reads the resolved settings out of v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", cfg.LogLevel)
	}
	if cfg.LogFile == "-" {
		cfg.LogFile = ""
	}
	return cfg, nil
}
