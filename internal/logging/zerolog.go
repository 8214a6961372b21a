package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config controls the leveled logger used for the process stderr stream.
type Config struct {
	Level      zerolog.Level
	Format     string // "console" or "json"
	TimeFormat string
}

// FileConfig controls whether (and where) log output is written to a
// rotating file on disk, and whether stderr is kept alongside it.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	WriteToStderr bool
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
}

// ParseLevel maps a config string to a zerolog level, defaulting to Info for
// anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewFromConfigValues builds a stderr-only logger, used as a fallback when
// file logging cannot be set up.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return consoleLogger(Config{Level: ParseLevel(level), Format: format}, os.Stderr)
}

func consoleLogger(cfg Config, w io.Writer) zerolog.Logger {
	var writer io.Writer = w
	if strings.ToLower(cfg.Format) != "json" {
		cw := zerolog.NewConsoleWriter(func(c *zerolog.ConsoleWriter) {
			c.Out = w
			if cfg.TimeFormat != "" {
				c.TimeFormat = cfg.TimeFormat
			}
		})
		writer = cw
	}
	return zerolog.New(writer).Level(cfg.Level).With().Timestamp().Logger()
}

// NewWithFile builds the process-lifetime logger: when file logging is
// enabled, a rotating file sink under LogDir, plus stderr (optionally
// console formatted) only if WriteToStderr is set; when file logging is
// disabled, stderr alone. The
// returned cleanup closes the file sink and must be called on shutdown.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	cleanup := func() {}
	var writers []io.Writer

	if fileCfg.WriteToStderr || !fileCfg.Enabled {
		writers = append(writers, consoleWriter(cfg, os.Stderr))
	}

	if fileCfg.Enabled {
		if err := os.MkdirAll(fileCfg.LogDir, 0750); err != nil {
			return NewFromConfigValues(levelName(cfg.Level), cfg.Format), cleanup,
				fmt.Errorf("create log directory: %w", err)
		}

		rotator, err := NewLogRotator(fileCfg.LogDir, fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
		if err != nil {
			return NewFromConfigValues(levelName(cfg.Level), cfg.Format), cleanup,
				fmt.Errorf("create log rotator: %w", err)
		}

		writers = append(writers, rotator)
		cleanup = func() {
			if cerr := rotator.Close(); cerr != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", cerr)
			}
		}
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(cfg.Level).With().Timestamp().Logger()
	return logger, cleanup, nil
}

func consoleWriter(cfg Config, w io.Writer) io.Writer {
	if strings.ToLower(cfg.Format) == "json" {
		return w
	}
	return zerolog.NewConsoleWriter(func(c *zerolog.ConsoleWriter) {
		c.Out = w
		if cfg.TimeFormat != "" {
			c.TimeFormat = cfg.TimeFormat
		}
	})
}

func levelName(lvl zerolog.Level) string {
	return lvl.String()
}
