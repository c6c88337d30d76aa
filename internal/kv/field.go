package kv

import (
	"fmt"
	"strconv"
	"time"
)

// Type of KeyValue
type Type int

const (
	InvalidType Type = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	ErrorType
	AnyType
	StringerType
)

// KeyValue is a typed log attribute. Its value is rendered lazily, only
// when a logger actually emits the message.
type KeyValue struct {
	ftype Type
	key   string

	vint int64
	vstr string
	vbol bool
	vdur time.Duration
	verr error
	vany interface{}
	vstg fmt.Stringer
}

func (f KeyValue) Type() Type {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

// String renders the field value as text. It panics on an invalid
// zero-value field.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.vbol)
	case DurationType:
		return f.vdur.String()
	case ErrorType:
		if f.verr == nil {
			return "<nil>"
		}

		return f.verr.Error()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		return f.vstg.String()
	default:
		panic(fmt.Sprintf("invalid kv type %d", f.ftype))
	}
}

// AnyValue returns the untyped field value.
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return int(f.vint)
	case Int64Type:
		return f.vint
	case StringType:
		return f.vstr
	case BoolType:
		return f.vbol
	case DurationType:
		return f.vdur
	case ErrorType:
		return f.verr
	case AnyType:
		return f.vany
	case StringerType:
		return f.vstg
	default:
		panic(fmt.Sprintf("invalid kv type %d", f.ftype))
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{ftype: Int64Type, key: k, vint: v}
}

func String(k, v string) KeyValue {
	return KeyValue{ftype: StringType, key: k, vstr: v}
}

func Bool(k string, v bool) KeyValue {
	return KeyValue{ftype: BoolType, key: k, vbol: v}
}

func Duration(k string, v time.Duration) KeyValue {
	return KeyValue{ftype: DurationType, key: k, vdur: v}
}

// Error is a named Field containing error
func Error(v error) KeyValue {
	return NamedError("error", v)
}

func NamedError(k string, v error) KeyValue {
	return KeyValue{ftype: ErrorType, key: k, verr: v}
}

func Any(k string, v interface{}) KeyValue {
	return KeyValue{ftype: AnyType, key: k, vany: v}
}

func Stringer(k string, v fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: k, vstg: v}
}
