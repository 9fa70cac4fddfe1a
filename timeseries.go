package mhrono

// TimeSeries is a ScalarSeries keyed on Time — the common case of an
// irregular-but-ordered timestamped signal (ticks, quotes, fix-up events).
type TimeSeries[Y any] struct {
	ScalarSeries[Time, Y]
}

// NewTimeSeries returns an empty time series.
func NewTimeSeries[Y any]() TimeSeries[Y] {
	return TimeSeries[Y]{ScalarSeries: NewScalarSeries[Time, Y]()}
}
