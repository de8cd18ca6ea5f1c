// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danielhkuo/apportion/models"
)

// EnvPrefix prefixes every environment variable, e.g. APPORTION_LOG_LEVEL.
const EnvPrefix = "APPORTION"

type Config struct {
	LogLevel   string `mapstructure:"log-level"`
	LogFormat  string `mapstructure:"log-format"`
	LogFile    string `mapstructure:"log-file"`
	Output     string `mapstructure:"output"`
	Format     string `mapstructure:"format"`
	TieBreak   string `mapstructure:"tie-break"`
	Parallel   int    `mapstructure:"parallel"`
	ConfigFile string `mapstructure:"config"`
	EnvFile    string `mapstructure:"env-file"`
}

// RegisterFlags adds the settings to flags with their defaults
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "json", "Log encoding (json or console)")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.StringP("output", "o", "", "Write the report to this file instead of stdout")
	flags.StringP("format", "f", models.FormatJSON, "Report format (json or yaml)")
	flags.String("tie-break", models.TieBreakLot, "Tie policy (lot or votes)")
	flags.IntP("parallel", "p", 4, "Elections computed at once")
	flags.StringP("config", "c", "", "Config file (yaml, json or toml)")
	flags.String("env-file", ".env", "Dotenv file loaded before reading the environment")
}

// Load resolves the settings of flags. Precedence: flags set on the command
// line, then APPORTION_* environment variables (a dotenv file included),
// then the config file, then flag defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	envFile, err := flags.GetString("env-file")
	if err != nil {
		return Config{}, err
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFlags parses args into a fresh flag set and loads the config
func ParseFlags(args []string) (Config, error) {
	flags := pflag.NewFlagSet("apportion", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return Load(flags)
}

// Validate rejects values no command can work with
func (c Config) Validate() error {
	var errs []error
	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log-format must be json or console, got %q", c.LogFormat))
	}
	switch c.Format {
	case models.FormatJSON, models.FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("format must be json or yaml, got %q", c.Format))
	}
	switch c.TieBreak {
	case models.TieBreakLot, models.TieBreakVotes:
	default:
		errs = append(errs, fmt.Errorf("tie-break must be lot or votes, got %q", c.TieBreak))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel must be at least 1, got %d", c.Parallel))
	}
	return errors.Join(errs...)
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
