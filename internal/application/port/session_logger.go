package port

import (
	"context"

	"github.com/rs/zerolog"
)

// SessionLogConfig configures a rotating, leveled file+stderr logger for a
// single run of the process.
type SessionLogConfig struct {
	Level         string
	Format        string
	TimeFormat    string
	LogDir        string
	WriteToStderr bool
	EnableFileLog bool
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
}

// SessionLogger creates the process-lifetime logger.
type SessionLogger interface {
	CreateLogger(ctx context.Context, cfg SessionLogConfig) (zerolog.Logger, func(), error)
}
