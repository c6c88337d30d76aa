package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

// Zap adapts a zap logger to the Logger interface. Scope names from the
// context become the zap logger name, fields map one to one.
func Zap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

type zapLogger struct {
	l *zap.Logger
}

func (l *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := toZapLevel(LevelFromContext(ctx))
	if lvl == zapcore.InvalidLevel {
		return
	}

	logger := l.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		logger = logger.Named(strings.Join(names, "."))
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key(), f.AnyValue()))
	}

	if ce := logger.Check(lvl, msg); ce != nil {
		ce.Write(zapFields...)
	}
}

func toZapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InvalidLevel
	}
}
