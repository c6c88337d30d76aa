package timeunit

// Unit is the resolution a timespan metric reports in. It is fixed when
// the metric is defined and never changes for the life of the metric.
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

const (
	lblNanosecond  = "nanosecond"
	lblMicrosecond = "microsecond"
	lblMillisecond = "millisecond"
	lblSecond      = "second"
	lblMinute      = "minute"
	lblHour        = "hour"
	lblDay         = "day"
)

func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return lblNanosecond
	case Microsecond:
		return lblMicrosecond
	case Millisecond:
		return lblMillisecond
	case Second:
		return lblSecond
	case Minute:
		return lblMinute
	case Hour:
		return lblHour
	case Day:
		return lblDay
	default:
		return "unknown"
	}
}

// Parse maps the persisted unit name back to a Unit.
func Parse(s string) (Unit, bool) {
	switch s {
	case lblNanosecond:
		return Nanosecond, true
	case lblMicrosecond:
		return Microsecond, true
	case lblMillisecond:
		return Millisecond, true
	case lblSecond:
		return Second, true
	case lblMinute:
		return Minute, true
	case lblHour:
		return Hour, true
	case lblDay:
		return Day, true
	default:
		return 0, false
	}
}

func (u Unit) Valid() bool {
	return u >= Nanosecond && u <= Day
}

// FromMillis converts a millisecond magnitude to the unit. Storage keeps
// full millisecond precision, so sub-millisecond units are exact
// multiplications; Second and larger round to the nearest integer, half
// away from zero.
func (u Unit) FromMillis(ms int64) int64 {
	switch u {
	case Nanosecond:
		return ms * 1_000_000
	case Microsecond:
		return ms * 1_000
	case Millisecond:
		return ms
	case Second:
		return roundDiv(ms, 1_000)
	case Minute:
		return roundDiv(ms, 60_000)
	case Hour:
		return roundDiv(ms, 3_600_000)
	case Day:
		return roundDiv(ms, 86_400_000)
	default:
		return ms
	}
}

func roundDiv(ms, div int64) int64 {
	if ms < 0 {
		return -((-ms + div/2) / div)
	}

	return (ms + div/2) / div
}
