package logging

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hipchat_notify/internal/domain"
	"hipchat_notify/internal/hipchat"
)

// RoomNotifier is the part of the HipChat client the room sink needs.
type RoomNotifier interface {
	NotifyRoom(ctx context.Context, room, message string, opts ...hipchat.Option) (hipchat.Result, error)
}

var DefaultLevelColors = map[zapcore.Level]domain.Color{
	zapcore.DebugLevel:  domain.ColorGray,
	zapcore.InfoLevel:   domain.ColorYellow,
	zapcore.WarnLevel:   domain.ColorPurple,
	zapcore.ErrorLevel:  domain.ColorRed,
	zapcore.DPanicLevel: domain.ColorRed,
	zapcore.PanicLevel:  domain.ColorRed,
	zapcore.FatalLevel:  domain.ColorRed,
}

type RoomOptions struct {
	Room   string
	Level  zapcore.LevelEnabler
	Label  string
	Notify bool
	Format domain.Format
	Token  string
	// Colors overrides DefaultLevelColors per level.
	Colors  map[zapcore.Level]domain.Color
	Timeout time.Duration
	// ErrorOutput receives send failures. Defaults to stderr.
	ErrorOutput zapcore.WriteSyncer
}

// RoomCore posts every enabled log entry to a HipChat room, colored by level.
type RoomCore struct {
	zapcore.LevelEnabler
	notifier RoomNotifier
	opts     RoomOptions
	colors   map[zapcore.Level]domain.Color
	enc      zapcore.Encoder
	fields   []zapcore.Field
}

func NewRoomCore(notifier RoomNotifier, opts RoomOptions) *RoomCore {
	if opts.Level == nil {
		opts.Level = zapcore.DebugLevel
	}
	if opts.Format == "" {
		opts.Format = domain.DefaultFormat
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ErrorOutput == nil {
		opts.ErrorOutput = zapcore.Lock(os.Stderr)
	}
	colors := make(map[zapcore.Level]domain.Color, len(DefaultLevelColors))
	for lvl, c := range DefaultLevelColors {
		colors[lvl] = c
	}
	for lvl, c := range opts.Colors {
		colors[lvl] = c
	}
	return &RoomCore{
		LevelEnabler: opts.Level,
		notifier:     notifier,
		opts:         opts,
		colors:       colors,
		enc:          zapcore.NewConsoleEncoder(zapcore.EncoderConfig{}),
	}
}

// WithRoomSink tees a RoomCore onto logger.
func WithRoomSink(logger *zap.Logger, notifier RoomNotifier, opts RoomOptions) *zap.Logger {
	sink := NewRoomCore(notifier, opts)
	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, sink)
	}))
}

func (c *RoomCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *RoomCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *RoomCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	color, ok := c.colors[entry.Level]
	if !ok {
		color = domain.DefaultColor
	}
	opts := []hipchat.Option{
		hipchat.WithColor(color),
		hipchat.WithLabel(c.opts.Label),
		hipchat.WithNotify(c.opts.Notify),
		hipchat.WithFormat(c.opts.Format),
	}
	if c.opts.Token != "" {
		opts = append(opts, hipchat.WithToken(c.opts.Token))
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.Timeout)
	defer cancel()
	if _, err := c.notifier.NotifyRoom(ctx, c.opts.Room, c.message(entry, fields), opts...); err != nil {
		fmt.Fprintf(c.opts.ErrorOutput, "%s hipchat room sink: %v\n", time.Now().UTC().Format(time.RFC3339), err)
		_ = c.opts.ErrorOutput.Sync()
	}
	return nil
}

func (c *RoomCore) Sync() error {
	return nil
}

// message renders the entry message followed by its context fields.
func (c *RoomCore) message(entry zapcore.Entry, fields []zapcore.Field) string {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	if len(all) == 0 {
		return entry.Message
	}
	buf, err := c.enc.EncodeEntry(zapcore.Entry{}, all)
	if err != nil {
		return entry.Message
	}
	defer buf.Free()
	return entry.Message + " " + string(trimNewline(buf.Bytes()))
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
