package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"hipchat_notify/internal/config"
)

// debugLoggers are always written at debug, whatever LOG_LEVEL says. The
// HipChat client reports undelivered notifications at debug on its named
// logger and that record is the only trace of them.
var debugLoggers = map[string]zapcore.LevelEnabler{
	"hipchat": zapcore.DebugLevel,
}

// New builds the process logger. Release mode writes JSON to stdout and to a
// rotated cfg.LogFile; otherwise a development logger is used. cfg.LogLevel
// defaults to info in release mode and debug otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogMode != "release" {
		level, err := parseLevel(cfg.LogLevel, zapcore.DebugLevel)
		if err != nil {
			return nil, err
		}
		threshold := zap.NewAtomicLevelAt(level)
		return zap.NewDevelopmentConfig().Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return newNamedLevelCore(core, threshold, debugLoggers)
		}))
	}

	level, err := parseLevel(cfg.LogLevel, zapcore.InfoLevel)
	if err != nil {
		return nil, err
	}
	file := cfg.LogFile
	if file == "" {
		file = "logs/app.log"
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	sink := zapcore.NewMultiWriteSyncer(
		zapcore.Lock(os.Stdout),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		}),
	)
	// The inner core accepts everything; namedLevelCore does the gating.
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.DebugLevel)
	return zap.New(newNamedLevelCore(core, zap.NewAtomicLevelAt(level), debugLoggers)), nil
}

func parseLevel(raw string, fallback zapcore.Level) (zapcore.Level, error) {
	if raw == "" {
		return fallback, nil
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return fallback, fmt.Errorf("log level %q: %w", raw, err)
	}
	return level, nil
}

// namedLevelCore gates entries by logger name, falling back to a default
// level for loggers without an override. The wrapped core must be enabled at
// the lowest level any override allows.
type namedLevelCore struct {
	zapcore.Core
	level zapcore.LevelEnabler
	names map[string]zapcore.LevelEnabler
}

func newNamedLevelCore(core zapcore.Core, level zapcore.LevelEnabler, names map[string]zapcore.LevelEnabler) zapcore.Core {
	return &namedLevelCore{Core: core, level: level, names: names}
}

func (c *namedLevelCore) Enabled(lvl zapcore.Level) bool {
	if c.level.Enabled(lvl) {
		return true
	}
	for _, enabler := range c.names {
		if enabler.Enabled(lvl) {
			return true
		}
	}
	return false
}

func (c *namedLevelCore) With(fields []zapcore.Field) zapcore.Core {
	return &namedLevelCore{Core: c.Core.With(fields), level: c.level, names: c.names}
}

func (c *namedLevelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	enabler, ok := c.names[ent.LoggerName]
	if !ok {
		enabler = c.level
	}
	if enabler.Enabled(ent.Level) && c.Core.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}
