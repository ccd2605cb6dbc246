package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/randalmurphal/multicore/pkg/multicore/core"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
)

// Validation errors.
var (
	// ErrInvalidLogLevel indicates log_level is not a slog level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates log_format is neither "text" nor "json".
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidCore indicates an empty or repeated entry in cores.
	ErrInvalidCore = errors.New("invalid core key")
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the kernel configuration.
type Config struct {
	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `yaml:"log_format" json:"log_format"`

	// Metrics enables OpenTelemetry metrics via the global meter provider.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OpenTelemetry spans via the global tracer provider.
	Tracing bool `yaml:"tracing" json:"tracing"`

	// Cores lists core keys to create at startup.
	Cores []string `yaml:"cores" json:"cores"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: FormatText,
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	seen := make(map[string]struct{}, len(c.Cores))
	for i, key := range c.Cores {
		if key == "" {
			return fmt.Errorf("%w: cores[%d] is empty", ErrInvalidCore, i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q listed twice", ErrInvalidCore, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// NewLogger builds a logger writing to w with the configured level and
// format. Invalid values fall back to info and text.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Options converts the configuration into kernel options. If logger is nil
// a logger writing to stderr is built from the configuration.
func (c Config) Options(logger *slog.Logger) []core.Option {
	if logger == nil {
		logger = c.NewLogger(os.Stderr)
	}
	opts := []core.Option{core.WithLogger(logger)}
	if c.Metrics {
		opts = append(opts, core.WithMetrics(observability.NewMetricsRecorder()))
	}
	if c.Tracing {
		opts = append(opts, core.WithSpanManager(observability.NewSpanManager()))
	}
	return opts
}
