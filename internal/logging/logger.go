// Package logging builds the session logger and the store observer that
// records task events.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todoapp/internal/config"
	"todoapp/internal/tasklist"
)

// New returns the logger for one session.
// With debug disabled it returns a no-op logger. Otherwise it writes JSON
// lines to cfg.LogPath(), creating the config directory if needed; the
// terminal belongs to the front end, so nothing is written to stdout or stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Encoding = "json"
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.OutputPaths = []string{cfg.LogPath()}
	zc.ErrorOutputPaths = []string{cfg.LogPath()}
	zc.EncoderConfig = zap.NewProductionEncoderConfig()
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("session", NewSessionID())), nil
}

// NewSessionID returns a random identifier used to correlate a session's log lines.
func NewSessionID() string {
	return uuid.NewString()
}

// StoreObserver returns a tasklist observer that logs every event at debug level.
func StoreObserver(logger *zap.Logger) func(tasklist.Event) {
	return func(e tasklist.Event) {
		logger.Debug("task event",
			zap.String("kind", string(e.Kind)),
			zap.Int("id", e.Task.ID),
			zap.Bool("completed", e.Task.IsCompleted),
			zap.Int("description_len", len(e.Task.Description)),
		)
	}
}
