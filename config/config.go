package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	astar "github.com/pdrpinto/astar/v2"
	"github.com/pdrpinto/astar/v2/observability"
)

// Validation errors.
var (
	ErrNegativeExpansions = errors.New("max_expansions must not be negative")
	ErrNegativeWorkers    = errors.New("workers must not be negative")
	ErrInvalidLogLevel    = errors.New("invalid log_level")
)

// Config holds engine settings.
type Config struct {
	TieBreak      string `yaml:"tie_break" json:"tie_break"`
	MaxExpansions int    `yaml:"max_expansions" json:"max_expansions"`
	Workers       int    `yaml:"workers" json:"workers"`
	Metrics       bool   `yaml:"metrics" json:"metrics"`
	Tracing       bool   `yaml:"tracing" json:"tracing"`
	LogLevel      string `yaml:"log_level" json:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{TieBreak: "fifo", LogLevel: "info"}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := astar.ParseTieBreak(c.TieBreak); err != nil {
		return err
	}
	if c.MaxExpansions < 0 {
		return ErrNegativeExpansions
	}
	if c.Workers < 0 {
		return ErrNegativeWorkers
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. The empty string means info.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}

// Options translates c into search options. logger may be nil.
func (c Config) Options(logger *slog.Logger) ([]astar.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	tieBreak, _ := astar.ParseTieBreak(c.TieBreak)

	opts := []astar.Option{
		astar.WithTieBreak(tieBreak),
		astar.WithMaxExpansions(c.MaxExpansions),
	}
	if c.Workers > 0 {
		opts = append(opts, astar.WithWorkers(c.Workers))
	}
	if logger != nil {
		opts = append(opts, astar.WithLogger(logger))
	}
	if c.Metrics {
		opts = append(opts, astar.WithMetrics(observability.NewMetricsRecorder()))
	}
	if c.Tracing {
		opts = append(opts, astar.WithSpanManager(observability.NewSpanManager()))
	}
	return opts, nil
}
