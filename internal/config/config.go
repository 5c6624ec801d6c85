// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-sortbench/sortbench/contrib/dist"
	"github.com/ajroetker/go-sortbench/sortbench/contrib/sort"
)

const (
	// AppName is the application name.
	AppName = "sortbench"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "sortbench"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes every environment override, e.g. SORTBENCH_RUNS.
	EnvPrefix = "SORTBENCH"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// ElementTypes lists the integer element types a run can sort.
var ElementTypes = []string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"}

// Formats lists the supported result formats.
var Formats = []string{"table", "json", "bench"}

// Config holds the settings of one sortbench invocation.
type Config struct {
	// Lengths are the input sizes to benchmark.
	Lengths []int `mapstructure:"lengths" toml:"lengths"`
	// Runs is the number of copies each method sorts per input.
	Runs int `mapstructure:"runs" toml:"runs"`
	// Seed seeds the random source; 0 picks a fresh seed per invocation.
	Seed uint64 `mapstructure:"seed" toml:"seed"`
	// Distributions are dist registry keys, in run order.
	Distributions []string `mapstructure:"distributions" toml:"distributions"`
	// Algorithms are sort registry keys, in run order.
	Algorithms []string `mapstructure:"algorithms" toml:"algorithms"`
	// ElementType is one of ElementTypes.
	ElementType string `mapstructure:"element_type" toml:"element_type"`
	// Workers sizes the pool that clones and verifies inputs: 0 uses
	// GOMAXPROCS, 1 disables the pool.
	Workers int `mapstructure:"workers" toml:"workers"`
	// Format is one of Formats.
	Format string `mapstructure:"format" toml:"format"`
	// LogLevel is a charmbracelet/log level name.
	LogLevel string `mapstructure:"log_level" toml:"log_level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Lengths:       []int{100, 1_000, 10_000},
		Runs:          2,
		Seed:          0,
		Distributions: []string{"uniform", "sorted", "reversed", "all-equal", "shuffled", "shuffled-16"},
		Algorithms:    sort.Keys(),
		ElementType:   "int32",
		Workers:       0,
		Format:        "table",
		LogLevel:      "info",
	}
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
	// Flags, when set, are bound over file and environment values. Only
	// flags registered by RegisterFlags are consulted.
	Flags *pflag.FlagSet
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"lengths":   "lengths",
	"runs":      "runs",
	"seed":      "seed",
	"dist":      "distributions",
	"algo":      "algorithms",
	"type":      "element_type",
	"workers":   "workers",
	"format":    "format",
	"log-level": "log_level",
}

// RegisterFlags defines the run flags on fs with the default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.IntSlice("lengths", d.Lengths, "input lengths to benchmark")
	fs.Int("runs", d.Runs, "copies sorted per input")
	fs.Uint64("seed", d.Seed, "random seed (0 picks one)")
	fs.StringSlice("dist", d.Distributions, "distributions to generate ("+strings.Join(dist.Keys(), ", ")+", shuffled-N)")
	fs.StringSlice("algo", d.Algorithms, "algorithms to run ("+strings.Join(sort.Keys(), ", ")+")")
	fs.String("type", d.ElementType, "element type ("+strings.Join(ElementTypes, ", ")+")")
	fs.Int("workers", d.Workers, "workers for cloning and verification (0 = GOMAXPROCS, 1 = none)")
	fs.String("format", d.Format, "output format ("+strings.Join(Formats, ", ")+")")
	fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
}

// Load resolves the configuration and validates it. It returns the path of
// the config file that was read, or "" when only defaults, environment and
// flags applied.
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("lengths", defaults.Lengths)
	v.SetDefault("runs", defaults.Runs)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("distributions", defaults.Distributions)
	v.SetDefault("algorithms", defaults.Algorithms)
	v.SetDefault("element_type", defaults.ElementType)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	resolvedPath, err := readConfigFile(v, opts)
	if err != nil {
		return nil, "", err
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		if resolvedPath != "" {
			return nil, "", fmt.Errorf("%s: %w", resolvedPath, err)
		}
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// readConfigFile merges the TOML config file into v. An explicit path must
// exist; otherwise the config directory and then the working directory are
// searched, and finding nothing is not an error.
func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	v.SetConfigType(ConfigFileExt)

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", opts.ConfigFilePath, err)
		}
		return opts.ConfigFilePath, nil
	}

	v.SetConfigName(ConfigFileName)
	if dir, err := configDirWithOverride(opts.ConfigDirPath); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// ConfigDir returns the sortbench configuration directory under the
// platform's user configuration directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// FilePath returns the path of the config file inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
}

func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// Validate checks every setting, including that each distribution and
// algorithm key resolves.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Lengths) == 0 {
		errs = append(errs, fmt.Errorf("%w: lengths must not be empty", ErrInvalid))
	}
	seen := make(map[int]bool, len(c.Lengths))
	for _, n := range c.Lengths {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%w: negative length %d", ErrInvalid, n))
		}
		if seen[n] {
			errs = append(errs, fmt.Errorf("%w: length %d repeated", ErrInvalid, n))
		}
		seen[n] = true
	}
	if c.Runs < 1 {
		errs = append(errs, fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalid, c.Runs))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers))
	}
	if len(c.Distributions) == 0 {
		errs = append(errs, fmt.Errorf("%w: no distributions selected", ErrInvalid))
	}
	for _, name := range c.Distributions {
		if _, err := dist.Parse[int32](name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
	if len(c.Algorithms) == 0 {
		errs = append(errs, fmt.Errorf("%w: no algorithms selected", ErrInvalid))
	}
	for _, name := range c.Algorithms {
		if _, err := sort.Parse[int32](name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
	if !slices.Contains(ElementTypes, c.ElementType) {
		errs = append(errs, fmt.Errorf("%w: element type %q, want one of %s", ErrInvalid, c.ElementType, strings.Join(ElementTypes, ", ")))
	}
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("%w: format %q, want one of %s", ErrInvalid, c.Format, strings.Join(Formats, ", ")))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(data), nil
}
