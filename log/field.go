package log

import (
	"time"

	"github.com/beacon-telemetry/beacon-go-sdk/internal/kv"
)

type (
	Field = kv.KeyValue
)

var (
	Int        = kv.Int
	Int64      = kv.Int64
	String     = kv.String
	Bool       = kv.Bool
	Duration   = kv.Duration
	Error      = kv.Error
	NamedError = kv.NamedError
	Any        = kv.Any
	Stringer   = kv.Stringer
)

func latency(start time.Time) Field {
	return Duration("latency", time.Since(start))
}
