// Package zappretty provides a colorized zapcore.Encoder for command line
// tools. The entry header (time, level, logger, caller and message) is
// rendered as text; fields are rendered as compact JSON after it.
package zappretty

import (
	"bytes"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	// Name is the encoding to use in zap.Config once Register has been called.
	Name       = "cli"
	timeFormat = "2006-01-02 15:04:05 MST"
)

var (
	bufPool    = buffer.NewPool()
	levelColor = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}

	registerOnce sync.Once
	registerErr  error
)

// Register makes the encoder available to zap.Config under Name. Only the
// first call has an effect.
func Register(cfg zapcore.EncoderConfig) error {
	registerOnce.Do(func() {
		registerErr = zap.RegisterEncoder(Name, func(zapcore.EncoderConfig) (zapcore.Encoder, error) {
			return NewCLIEncoder(cfg), nil
		})
	})
	return registerErr
}

type cliEncoder struct {
	// fields and context are encoded by an embedded JSON encoder.
	zapcore.Encoder
	cfg *zapcore.EncoderConfig
}

func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	fields := cfg
	fields.TimeKey = ""
	fields.LevelKey = ""
	fields.NameKey = ""
	fields.CallerKey = ""
	fields.FunctionKey = ""
	fields.MessageKey = ""
	fields.StacktraceKey = ""
	fields.SkipLineEnding = true

	return &cliEncoder{
		Encoder: zapcore.NewJSONEncoder(fields),
		cfg:     &cfg,
	}
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
		cfg:     enc.cfg,
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	body, err := enc.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return nil, err
	}
	defer body.Free()

	line := bufPool.Get()

	if enc.cfg.TimeKey != "" {
		encodeTimestamp(line, entry.Time)
	}

	if enc.cfg.LevelKey != "" && enc.cfg.EncodeLevel != nil {
		encodeLevel(line, entry.Level)
	}

	if entry.LoggerName != "" && enc.cfg.NameKey != "" {
		encodeLoggerName(line, entry.LoggerName)
	}

	if entry.Caller.Defined && enc.cfg.CallerKey != "" {
		encodeCaller(line, entry.Caller)
	}

	if enc.cfg.MessageKey != "" {
		encodeMessage(line, entry.Message)
	}

	// An entry without fields or context encodes to "{}".
	if b := bytes.TrimSpace(body.Bytes()); len(b) > 2 {
		line.AppendString(color.New(color.FgCyan).Sprint(string(b)))
	}

	if entry.Stack != "" && enc.cfg.StacktraceKey != "" {
		line.AppendString(enc.cfg.LineEnding)
		line.AppendString(color.New(color.FgHiBlack).Sprint(entry.Stack))
	}

	line.AppendString(enc.cfg.LineEnding)

	return line, nil
}

func encodeTimestamp(buf *buffer.Buffer, timestamp time.Time) {
	buf.AppendString(color.New(color.FgWhite).Sprintf("[%s]", timestamp.Format(timeFormat)))
	buf.AppendByte(' ')
}

func encodeLevel(buf *buffer.Buffer, level zapcore.Level) {
	if level == zapcore.InfoLevel || level == zapcore.WarnLevel {
		buf.AppendString(color.New(levelColor[level]).Sprint(level.CapitalString() + " "))
	} else {
		buf.AppendString(color.New(levelColor[level]).Sprint(level.CapitalString()))
	}
	buf.AppendByte(' ')
}

func encodeLoggerName(buf *buffer.Buffer, logger string) {
	buf.AppendString(color.New(color.FgHiBlack).Sprint(logger))
	buf.AppendByte(' ')
}

func encodeCaller(buf *buffer.Buffer, caller zapcore.EntryCaller) {
	buf.AppendString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
	buf.AppendByte(' ')
}

func encodeMessage(buf *buffer.Buffer, message string) {
	buf.AppendString(color.New(color.FgHiWhite).Sprint(message))
	buf.AppendByte(' ')
}
