// Package config loads wayfind settings from defaults, an optional YAML
// file, WAYFIND_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Defaults for every key. Flags registered for these keys should use the
// same values so an unset flag does not shadow the config file.
const (
	// LogLevelFlag is the flag name bound to the log.level key.
	LogLevelFlag = "log-level"

	DefaultWords    = "words.txt"
	DefaultWorkers  = 4
	DefaultLogLevel = "info"
)

// ErrConfigExists is returned by WriteDefault when the target file exists
// and overwriting was not requested.
var ErrConfigExists = errors.New("config: file already exists")

// Config is the merged configuration.
type Config struct {
	// Words is the word list used by the ladder commands.
	Words string `mapstructure:"words" yaml:"words"`
	// Workers bounds concurrent searches in batch mode.
	Workers int       `mapstructure:"workers" yaml:"workers"`
	Log     LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Words:   DefaultWords,
		Workers: DefaultWorkers,
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

func defaults() map[string]any {
	return map[string]any{
		"words":     DefaultWords,
		"workers":   DefaultWorkers,
		"log.level": DefaultLogLevel,
	}
}

// DefaultPath returns the per-user config file location,
// <user config dir>/wayfind/wayfind.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: could not get user config directory: %w", err)
	}

	return filepath.Join(dir, "wayfind", "wayfind.yaml"), nil
}

// Load merges all configuration sources. When path is non-empty that file
// must exist; otherwise wayfind.yaml is looked up in the user config
// directory and the working directory, and its absence is not an error.
// cmd may be nil, in which case no flags are bound.
func Load(cmd *cobra.Command, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wayfind")
		v.SetConfigType("yaml")
		if p, err := DefaultPath(); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix("wayfind")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		flags := cmd.Flags()
		if err := v.BindPFlags(flags); err != nil {
			return c, fmt.Errorf("config: bind flags: %w", err)
		}
		// Dotted keys are spelled with a dash on the command line.
		if f := flags.Lookup(LogLevelFlag); f != nil {
			if err := v.BindPFlag("log.level", f); err != nil {
				return c, fmt.Errorf("config: bind flag %s: %w", LogLevelFlag, err)
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}
	if c.Workers < 0 {
		return c, fmt.Errorf("config: workers must be non-negative, got %d", c.Workers)
	}

	return c, nil
}

// WriteDefault writes Default() as YAML to path, creating parent
// directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	c := Default()
	data, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: could not create config directory %s: %w", dir, err)
	}

	return os.WriteFile(path, data, 0o644)
}
