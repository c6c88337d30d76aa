package trace

type Details uint64

const (
	MetricsTimespanEvents Details = 1 << iota
	MetricsReadEvents
	MetricsDispatcherEvents

	MetricsEvents = MetricsTimespanEvents | MetricsReadEvents | MetricsDispatcherEvents

	DetailsAll = ^Details(0)
)

type Detailer interface {
	Details() Details
}

var _ Detailer = Details(0)

func (d Details) Details() Details {
	return d
}
