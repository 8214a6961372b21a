package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vilosource/viloxterm/internal/application/port"
	corelogging "github.com/vilosource/viloxterm/internal/logging"
)

type SessionLoggerAdapter struct{}

var _ port.SessionLogger = (*SessionLoggerAdapter)(nil)

func NewSessionLoggerAdapter() *SessionLoggerAdapter {
	return &SessionLoggerAdapter{}
}

func (*SessionLoggerAdapter) CreateLogger(
	_ context.Context,
	cfg port.SessionLogConfig,
) (zerolog.Logger, func(), error) {
	logger, cleanup, err := corelogging.NewWithFile(
		corelogging.Config{
			Level:      corelogging.ParseLevel(cfg.Level),
			Format:     cfg.Format,
			TimeFormat: cfg.TimeFormat,
		},
		corelogging.FileConfig{
			Enabled:       cfg.EnableFileLog,
			LogDir:        cfg.LogDir,
			WriteToStderr: cfg.WriteToStderr,
			MaxSizeMB:     cfg.MaxSizeMB,
			MaxBackups:    cfg.MaxBackups,
			MaxAgeDays:    cfg.MaxAgeDays,
			Compress:      cfg.Compress,
		},
	)
	if err != nil {
		fallback := corelogging.NewFromConfigValues(cfg.Level, cfg.Format)
		return fallback, func() {}, err
	}
	return logger, cleanup, nil
}
