package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config describes logger runtime configuration.
type Config struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
	Caller     bool   `mapstructure:"caller"`
}

// NewLogger constructs a zerolog logger from config. Logs go to stderr only:
// stdout is reserved for rendered reports and exported data.
func NewLogger(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.TimeFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	builder := zerolog.New(writerFor(cfg.Format)).Level(level).With().Timestamp()
	if cfg.Caller {
		builder = builder.Caller()
	}
	return builder.Logger()
}

func writerFor(format string) io.Writer {
	if strings.EqualFold(format, "console") {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}
	return os.Stderr
}
