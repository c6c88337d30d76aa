package xerrors

import (
	"errors"
)

type isBeaconError interface {
	isBeaconError()
}

// IsBeacon reports whether err originates from this SDK.
func IsBeacon(err error) bool {
	var e isBeaconError

	return errors.As(err, &e)
}

type beaconError struct {
	err error
}

func (e *beaconError) isBeaconError() {}

func (e *beaconError) Error() string {
	return e.err.Error()
}

func (e *beaconError) Unwrap() error {
	return e.err
}

// Wrap marks err as an internal SDK error.
func Wrap(err error) error {
	return &beaconError{err: err}
}

// Is is a improved proxy to errors.Is
// This need to single import errors
func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
