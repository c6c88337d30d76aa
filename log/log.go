package log

import (
	"context"
)

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = Nop{}

// Nop discards every message.
type Nop struct{}

func (Nop) Log(context.Context, string, ...Field) {}
