package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hipchat_notify/internal/config"
)

// Base is the process logger before the room sink is attached. The HipChat
// client that feeds the sink must log through Base, otherwise its own records
// would be posted back to the room.
type Base struct {
	*zap.Logger
}

func NewBase(cfg *config.Config) (Base, error) {
	logger, err := New(cfg)
	if err != nil {
		return Base{}, err
	}
	return Base{Logger: logger}, nil
}

// NewAppLogger returns the logger the relay components share: base teed into
// cfg.LogRoom at cfg.LogRoomLevel, or base itself when no log room is set.
// An unparsable level falls back to error.
func NewAppLogger(cfg *config.Config, base Base, notifier RoomNotifier) *zap.Logger {
	if cfg.LogRoom == "" {
		return base.Logger
	}
	level, err := zapcore.ParseLevel(cfg.LogRoomLevel)
	if err != nil {
		level = zapcore.ErrorLevel
	}
	return WithRoomSink(base.Logger, notifier, RoomOptions{
		Room:   cfg.LogRoom,
		Level:  level,
		Label:  cfg.LogLabel,
		Notify: cfg.LogNotify,
	})
}
