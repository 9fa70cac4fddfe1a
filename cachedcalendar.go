package mhrono

import "sort"

// CachedCalendar pre-materializes a Calendar's sessions over a fixed span
// into a sorted slice, so repeated lookups are a binary search rather
// than a day-by-day walk. Much faster than querying a Calendar directly
// when the same bounded range is queried many times.
type CachedCalendar struct {
	spans []SpanExc[Time]
	span  SpanExc[Time]
}

// NewCachedCalendar materializes every session cal.NextSpan produces
// starting from span.St, stopping once a session's start would fall at
// or past span.En (or once cal has no more sessions at all).
func NewCachedCalendar(span SpanExc[Time], cal *Calendar) CachedCalendar {
	var spans []SpanExc[Time]
	cur := span.St
	for cur.Compare(span.En) < 0 {
		next, ok := cal.NextSpan(cur)
		if !ok {
			break
		}
		if next.St.Compare(span.En) >= 0 {
			break
		}
		spans = append(spans, next)
		cur = next.En
	}
	return CachedCalendar{spans: spans, span: span}
}

// NextSpan returns the first cached session whose start is after t, or
// false if t lies past the last cached session. It errors if t falls
// outside the span this CachedCalendar was built over.
func (c CachedCalendar) NextSpan(t Time) (SpanExc[Time], bool, error) {
	if !c.span.Contains(t) {
		return SpanExc[Time]{}, false, newErrf(ErrOutOfRange, nil,
			"requested time %s outside of cached span %s", t.String(), c.span.String())
	}
	idx := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].St.Compare(t) > 0 })
	if idx < len(c.spans) {
		return c.spans[idx], true, nil
	}
	return SpanExc[Time]{}, false, nil
}

// Span returns the fixed range this CachedCalendar was materialized over.
func (c CachedCalendar) Span() SpanExc[Time] { return c.span }
