package mhrono

// spanElem is the (span, y) record shared by SpanExcSeries and
// SpanExcSeriesRight.
type spanElem[X Ordered[X], Y any] struct {
	Span SpanExc[X]
	Y    Y
}

// SpanExcSeries is a span-keyed series ordered by each record's span start.
// Records' spans need not abut or avoid overlap; only st-ordering is
// required.
type SpanExcSeries[X Ordered[X], Y any] struct {
	s Series[spanElem[X, Y], X]
}

// NewSpanExcSeries returns an empty span series ordered by span start.
func NewSpanExcSeries[X Ordered[X], Y any]() SpanExcSeries[X, Y] {
	return SpanExcSeries[X, Y]{s: NewSeries(
		func(e spanElem[X, Y]) X { return e.Span.St },
		func(e spanElem[X, Y]) SpanAny[X] { return e.Span.ToAny() },
	)}
}

func (s SpanExcSeries[X, Y]) Len() int      { return s.s.Len() }
func (s SpanExcSeries[X, Y]) IsEmpty() bool { return s.s.IsEmpty() }

// Get returns the span and y of the record at index i.
func (s SpanExcSeries[X, Y]) Get(i int) (SpanExc[X], Y, bool) {
	e, ok := s.s.Get(i)
	return e.Span, e.Y, ok
}

// Push appends (span, y), re-sorting by span start if necessary.
func (s *SpanExcSeries[X, Y]) Push(span SpanExc[X], y Y) bool {
	return s.s.CheckedPush(spanElem[X, Y]{Span: span, Y: y})
}

func (s SpanExcSeries[X, Y]) UpperBoundIdx(x X) (int, bool)      { return s.s.UpperBoundIdx(x) }
func (s SpanExcSeries[X, Y]) LowerBoundIdx(x X) (int, bool)      { return s.s.LowerBoundIdx(x) }
func (s SpanExcSeries[X, Y]) LowerBoundLastIdx(x X) (int, bool)  { return s.s.LowerBoundLastIdx(x) }
func (s SpanExcSeries[X, Y]) SpanBeforeIdx(x X) (int, bool)      { return s.s.SpanBeforeIdx(x) }
func (s SpanExcSeries[X, Y]) SpanAfterIdx(x X) (int, bool)       { return s.s.SpanAfterIdx(x) }
func (s SpanExcSeries[X, Y]) SpanAtOrBeforeIdx(x X) (int, bool)  { return s.s.SpanAtOrBeforeIdx(x) }
func (s SpanExcSeries[X, Y]) SpanAtOrAfterIdx(x X) (int, bool)   { return s.s.SpanAtOrAfterIdx(x) }
func (s SpanExcSeries[X, Y]) LookupIdx(x X) (int, bool)          { return s.s.LookupIdx(x) }

// Subseq returns the records whose span lies fully inside span.
func (s SpanExcSeries[X, Y]) Subseq(span SpanAny[X]) SpanExcSeries[X, Y] {
	return SpanExcSeries[X, Y]{s: s.s.Subseq(span)}
}

// Slice returns the (span, y) records in index order. Must not be mutated.
func (s SpanExcSeries[X, Y]) Slice() []spanElem[X, Y] { return s.s.Slice() }

// SpanExcSeriesRight is a span-keyed series ordered by each record's
// closed-right coordinate (span.En minus one unit of resolution) instead of
// its start. Requires Densely[X] so that coordinate can be computed via
// SpanExcToInc.
type SpanExcSeriesRight[X Densely[X], Y any] struct {
	s Series[spanElem[X, Y], X]
}

// NewSpanExcSeriesRight returns an empty span series ordered by span end.
func NewSpanExcSeriesRight[X Densely[X], Y any]() SpanExcSeriesRight[X, Y] {
	return SpanExcSeriesRight[X, Y]{s: NewSeries(
		func(e spanElem[X, Y]) X {
			inc, ok := SpanExcToInc(e.Span)
			if !ok {
				return e.Span.St
			}
			return inc.En
		},
		func(e spanElem[X, Y]) SpanAny[X] { return e.Span.ToAny() },
	)}
}

func (s SpanExcSeriesRight[X, Y]) Len() int      { return s.s.Len() }
func (s SpanExcSeriesRight[X, Y]) IsEmpty() bool { return s.s.IsEmpty() }

// Get returns the span and y of the record at index i.
func (s SpanExcSeriesRight[X, Y]) Get(i int) (SpanExc[X], Y, bool) {
	e, ok := s.s.Get(i)
	return e.Span, e.Y, ok
}

// Push appends (span, y), re-sorting by the span's right coordinate if
// necessary.
func (s *SpanExcSeriesRight[X, Y]) Push(span SpanExc[X], y Y) bool {
	return s.s.CheckedPush(spanElem[X, Y]{Span: span, Y: y})
}

func (s SpanExcSeriesRight[X, Y]) SpanBeforeIdx(x X) (int, bool)     { return s.s.SpanBeforeIdx(x) }
func (s SpanExcSeriesRight[X, Y]) SpanAfterIdx(x X) (int, bool)      { return s.s.SpanAfterIdx(x) }
func (s SpanExcSeriesRight[X, Y]) SpanAtOrBeforeIdx(x X) (int, bool) { return s.s.SpanAtOrBeforeIdx(x) }
func (s SpanExcSeriesRight[X, Y]) SpanAtOrAfterIdx(x X) (int, bool)  { return s.s.SpanAtOrAfterIdx(x) }
func (s SpanExcSeriesRight[X, Y]) LookupIdx(x X) (int, bool)         { return s.s.LookupIdx(x) }

// Subseq returns the records whose span lies fully inside span.
func (s SpanExcSeriesRight[X, Y]) Subseq(span SpanAny[X]) SpanExcSeriesRight[X, Y] {
	return SpanExcSeriesRight[X, Y]{s: s.s.Subseq(span)}
}

// Slice returns the (span, y) records in index order. Must not be mutated.
func (s SpanExcSeriesRight[X, Y]) Slice() []spanElem[X, Y] { return s.s.Slice() }
