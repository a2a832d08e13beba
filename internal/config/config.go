// Package config loads corral's settings with viper. Sources, highest
// precedence first: command-line flags, CORRAL_* environment variables,
// <config_dir>/corral.yaml, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/pkg/validation"
)

const (
	EnvPrefix = "CORRAL"
	FileName  = "corral"

	KeyConfigDir   = "config_dir"
	KeyDockerHost  = "docker_host"
	KeyLogLevel    = "log_level"
	KeyStopTimeout = "stop_timeout"

	DefaultLogLevel    = "info"
	DefaultStopTimeout = 10
)

// Config is the resolved process configuration.
type Config struct {
	ConfigDir   string `mapstructure:"config_dir"`
	DockerHost  string `mapstructure:"docker_host"`
	LogLevel    string `mapstructure:"log_level"`
	StopSeconds int    `mapstructure:"stop_timeout"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-"`
}

// StopTimeout returns the engine stop grace period.
func (c *Config) StopTimeout() time.Duration {
	return time.Duration(c.StopSeconds) * time.Second
}

// DefaultConfigDir returns ~/.config/corral, or ~/.corral on Windows.
func DefaultConfigDir(home, goos string) string {
	if goos == "windows" {
		return filepath.Join(home, ".corral")
	}
	return filepath.Join(home, ".config", "corral")
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetDefault(KeyConfigDir, DefaultConfigDir(home, runtime.GOOS))
	v.SetDefault(KeyDockerHost, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyStopTimeout, DefaultStopTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds the global flags that override configuration keys.
// Flags missing from the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyConfigDir:  "config-dir",
		KeyDockerHost: "docker-host",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional configuration file from the resolved config
// directory and decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	home, _ := os.UserHomeDir()
	dir := validation.ExpandHome(v.GetString(KeyConfigDir), home)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read configuration: %v", domain.ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unable to decode configuration: %v", domain.ErrInvalidConfig, err)
	}

	cfg.ConfigDir = validation.ExpandHome(cfg.ConfigDir, home)
	cfg.File = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ConfigDir == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidConfig, KeyConfigDir)
	}
	if c.StopSeconds < 0 {
		return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidConfig, KeyStopTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %s must be one of debug, info, warn, error", domain.ErrInvalidConfig, KeyLogLevel)
	}
	return nil
}
