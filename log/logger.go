package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonboulle/clockwork"
)

const (
	dateLayout = "2006-01-02 15:04:05.000"
)

var _ Logger = (*defaultLogger)(nil)

type Option func(l *defaultLogger)

func WithMinLevel(lvl Level) Option {
	return func(l *defaultLogger) {
		l.minLevel = lvl
	}
}

func WithColoring() Option {
	return func(l *defaultLogger) {
		l.coloring = true
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(l *defaultLogger) {
		l.clock = clock
	}
}

// Default is a simple console logger writing to w.
func Default(w io.Writer, opts ...Option) *defaultLogger {
	l := &defaultLogger{
		coloring: false,
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

type defaultLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock
	w        io.Writer
}

func (l *defaultLogger) format(namespace []string, msg string, logLevel Level) string {
	b := &strings.Builder{}
	if l.coloring {
		b.WriteString(logLevel.Color())
	}
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	b.WriteString(logLevel.String())
	b.WriteString(" '")
	for i, name := range namespace {
		if i != 0 {
			b.WriteByte('.')
		}
		b.WriteString(name)
	}
	b.WriteString("' => ")
	b.WriteString(msg)
	if l.coloring {
		b.WriteString(colorReset)
	}

	return b.String()
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}

	_, _ = io.WriteString(l.w, l.format(
		NamesFromContext(ctx),
		appendFields(msg, fields...),
		lvl,
	)+"\n")
}

func appendFields(msg string, fields ...Field) string {
	if len(fields) == 0 {
		return msg
	}
	b := &strings.Builder{}
	b.WriteString(msg)
	b.WriteString(" {")
	for i := range fields {
		if i != 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, `%q:%q`, fields[i].Key(), fields[i].String())
	}
	b.WriteByte('}')

	return b.String()
}
