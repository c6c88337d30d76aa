package metrics

import (
	"github.com/beacon-telemetry/beacon-go-sdk/timeunit"
)

// Persisted field names of a duration record.
const (
	fieldTimeUnit = "timeUnit"
	fieldTimespan = "timespan"
)

// durationRecord is the persisted representation of a stopped timespan.
// The magnitude always keeps full millisecond precision; conversion to
// the metric's unit happens at read time only.
type durationRecord struct {
	Unit   timeunit.Unit
	Millis int64
}

// validateRecord decides whether an arbitrary stored value is a
// well-formed duration record. A record is valid iff it carries exactly
// a known unit and a non-negative integral millisecond magnitude;
// anything else is rejected, never coerced. Validation is a predicate:
// an invalid value is reported as absent, not as a failure.
func validateRecord(raw interface{}) (durationRecord, bool) {
	switch v := raw.(type) {
	case durationRecord:
		if !v.Unit.Valid() || v.Millis < 0 {
			return durationRecord{}, false
		}

		return v, true
	case map[string]interface{}:
		if len(v) != 2 {
			return durationRecord{}, false
		}
		name, ok := v[fieldTimeUnit].(string)
		if !ok {
			return durationRecord{}, false
		}
		unit, ok := timeunit.Parse(name)
		if !ok {
			return durationRecord{}, false
		}
		ms, ok := asMillis(v[fieldTimespan])
		if !ok || ms < 0 {
			return durationRecord{}, false
		}

		return durationRecord{Unit: unit, Millis: ms}, true
	default:
		return durationRecord{}, false
	}
}

// asMillis accepts the numeric kinds a dynamic store may hold the
// magnitude in. Fractional values are rejected: storage is
// millisecond-granular by contract.
func asMillis(raw interface{}) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}

		return int64(n), true
	default:
		return 0, false
	}
}

// payload converts a validated record to the value reported externally.
func payload(rec durationRecord) int64 {
	return rec.Unit.FromMillis(rec.Millis)
}
