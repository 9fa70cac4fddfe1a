package mhrono

// scalarElem is the (x, y) record stored by ScalarSeries.
type scalarElem[X Ordered[X], Y any] struct {
	X X
	Y Y
}

// ScalarSeries is a point-keyed series: each record's span is the
// degenerate closed point [x, x]. Duplicate x values are allowed.
type ScalarSeries[X Ordered[X], Y any] struct {
	s Series[scalarElem[X, Y], X]
}

// NewScalarSeries returns an empty scalar series.
func NewScalarSeries[X Ordered[X], Y any]() ScalarSeries[X, Y] {
	return ScalarSeries[X, Y]{s: NewSeries(
		func(e scalarElem[X, Y]) X { return e.X },
		func(e scalarElem[X, Y]) SpanAny[X] { return SpanPoint(e.X) },
	)}
}

// Len reports the number of records.
func (s ScalarSeries[X, Y]) Len() int { return s.s.Len() }

// IsEmpty reports whether the series holds no records.
func (s ScalarSeries[X, Y]) IsEmpty() bool { return s.s.IsEmpty() }

// Get returns the x and y of the record at index i.
func (s ScalarSeries[X, Y]) Get(i int) (X, Y, bool) {
	e, ok := s.s.Get(i)
	return e.X, e.Y, ok
}

// GetY returns just the y of the record at index i.
func (s ScalarSeries[X, Y]) GetY(i int) (Y, bool) {
	e, ok := s.s.Get(i)
	return e.Y, ok
}

// First returns the first record's x and y.
func (s ScalarSeries[X, Y]) First() (X, Y, bool) {
	e, ok := s.s.First()
	return e.X, e.Y, ok
}

// Last returns the last record's x and y.
func (s ScalarSeries[X, Y]) Last() (X, Y, bool) {
	e, ok := s.s.Last()
	return e.X, e.Y, ok
}

// Push appends (x, y), re-sorting by x if necessary to keep the series
// sorted (stable, so insertion order among equal x survives).
func (s *ScalarSeries[X, Y]) Push(x X, y Y) bool {
	return s.s.CheckedPush(scalarElem[X, Y]{X: x, Y: y})
}

// UpperBoundIdx returns the first index with x(data[i]) > x.
func (s ScalarSeries[X, Y]) UpperBoundIdx(x X) (int, bool) { return s.s.UpperBoundIdx(x) }

// LowerBoundIdx returns the first index with x(data[i]) >= x.
func (s ScalarSeries[X, Y]) LowerBoundIdx(x X) (int, bool) { return s.s.LowerBoundIdx(x) }

// LowerBoundLastIdx returns the last index with x(data[i]) <= x.
func (s ScalarSeries[X, Y]) LowerBoundLastIdx(x X) (int, bool) { return s.s.LowerBoundLastIdx(x) }

// LookupIdx returns the index of the record at x, if any, per Series.LookupIdx.
func (s ScalarSeries[X, Y]) LookupIdx(x X) (int, bool) { return s.s.LookupIdx(x) }

// Subseq returns the records whose point falls fully inside span.
func (s ScalarSeries[X, Y]) Subseq(span SpanAny[X]) ScalarSeries[X, Y] {
	return ScalarSeries[X, Y]{s: s.s.Subseq(span)}
}

// Slice returns the (x, y) records in index order. Must not be mutated.
func (s ScalarSeries[X, Y]) Slice() []scalarElem[X, Y] { return s.s.Slice() }
