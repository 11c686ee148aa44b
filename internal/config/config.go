package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/infovalid/pkg/environment"
	"github.com/dmitrymomot/infovalid/pkg/logger"
)

// Output formats for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the CLI settings read from the environment.
type Config struct {
	Env       string `env:"INFOVALID_ENV" envDefault:"development"`
	LogLevel  string `env:"INFOVALID_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"INFOVALID_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"INFOVALID_OUTPUT" envDefault:"text"`
}

// Load reads Config from the environment. With no arguments it first loads
// ./.env when present; named files must exist. Variables already set in the
// process environment take precedence over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	var errs []error
	if _, err := environment.Parse(c.Env); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("output %q: must be %q or %q", c.Output, OutputText, OutputJSON))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// Logger builds the CLI logger. Call only on a validated Config.
func (c Config) Logger(service string) *slog.Logger {
	env, _ := environment.Parse(c.Env)
	level, _ := logger.ParseLevel(c.LogLevel)
	format, _ := logger.ParseFormat(c.LogFormat)

	return logger.New(
		logger.WithEnvironment(env, service),
		logger.WithLevel(level),
		logger.WithFormat(format),
	)
}
