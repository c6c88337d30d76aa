package storage

import (
	"github.com/beacon-telemetry/beacon-go-sdk/internal/xsync"
)

// TransformFunc computes the new value to persist from the current one.
// cur is the stored raw value, ok reports whether anything was stored.
// The function must be pure: conflict resolution correctness relies on
// callers invoking Transform from serialized dispatch tasks only.
type TransformFunc func(cur interface{}, ok bool) interface{}

// Store is a destination-scoped key-value store for recorded metrics.
// Values are kept as raw `interface{}` on purpose: readers must treat
// the shape of a stored value as untrusted and validate it.
type Store struct {
	m     xsync.RWMutex
	pings map[string]map[string]interface{}
}

func New() *Store {
	return &Store{
		pings: make(map[string]map[string]interface{}),
	}
}

// Transform fetches the current raw value under (ping, metricID),
// applies fn and persists the result.
func (s *Store) Transform(metricID, ping string, fn TransformFunc) {
	s.m.WithLock(func() {
		dest, has := s.pings[ping]
		if !has {
			dest = make(map[string]interface{})
			s.pings[ping] = dest
		}

		cur, ok := dest[metricID]
		dest[metricID] = fn(cur, ok)
	})
}

// Get returns the raw stored value under (ping, metricID).
func (s *Store) Get(ping, metricID string) (v interface{}, ok bool) {
	s.m.WithRLock(func() {
		dest, has := s.pings[ping]
		if !has {
			return
		}
		v, ok = dest[metricID]
	})

	return v, ok
}

// Delete removes the value stored under (ping, metricID).
func (s *Store) Delete(ping, metricID string) {
	s.m.WithLock(func() {
		delete(s.pings[ping], metricID)
	})
}

// Reset drops every stored value.
func (s *Store) Reset() {
	s.m.WithLock(func() {
		s.pings = make(map[string]map[string]interface{})
	})
}
