package mhrono

import (
	"sort"
	"time"
)

// DaySet is a lazily-evaluated set of dates — a holiday rule. It is built
// either from an algorithmic anchor (a month/day with an optional
// validity window and observance adjustment) or from an explicit ad-hoc
// list of dates; the two forms are mutually exclusive per instance, with
// ad-hoc taking precedence when both are present.
type DaySet struct {
	uncached uncachedDaySet
	cache    *RangeCache
	adhoc    []Date
}

// NewDaySet returns an empty DaySet with no anchor and no dates.
func NewDaySet() DaySet {
	return DaySet{cache: NewRangeCache()}
}

// WithMonthDay sets the algorithmic anchor to the given month/day, e.g.
// (7, 4) for Independence Day.
func (s DaySet) WithMonthDay(month, day int) DaySet {
	s.uncached.md = &[2]int{month, day}
	return s
}

// WithStart restricts the algorithmic rule to dates at or after st.
func (s DaySet) WithStart(st Date) DaySet {
	s.uncached.st = &st
	return s
}

// WithEnd restricts the algorithmic rule to dates at or before en.
func (s DaySet) WithEnd(en Date) DaySet {
	s.uncached.en = &en
	return s
}

// WithObservance sets the function that adjusts (or filters) each
// candidate anchor date.
func (s DaySet) WithObservance(o Observance) DaySet {
	s.uncached.observance = o
	return s
}

// WithAdhoc appends explicit dates, switching the set into ad-hoc mode:
// once any ad-hoc dates are present, the algorithmic anchor (if any) is
// never consulted.
func (s DaySet) WithAdhoc(dates ...Date) DaySet {
	s.adhoc = append(s.adhoc, dates...)
	sort.Slice(s.adhoc, func(i, j int) bool { return s.adhoc[i].Compare(s.adhoc[j]) < 0 })
	return s
}

// AppendRange implements Ranger: it inserts every date in s (the ad-hoc
// list, or the cached algorithmic evaluation over the requested span)
// into out.
func (s *DaySet) AppendRange(span SpanExc[Date], out map[Date]struct{}) {
	if len(s.adhoc) == 0 {
		for _, d := range s.cache.GetRange(span, &s.uncached) {
			out[d] = struct{}{}
		}
		return
	}
	for _, d := range s.adhoc {
		out[d] = struct{}{}
	}
}

// uncachedDaySet is the algorithmic evaluator a RangeCache re-runs
// whenever it grows: scan the years in the requested span (padded one
// year either side so an observance shift can still land inside it),
// compute each year's candidate date, run it through the observance
// function, and keep it if it still falls within both the span and this
// rule's own validity window.
type uncachedDaySet struct {
	md         *[2]int
	st         *Date
	en         *Date
	observance Observance
}

func (u *uncachedDaySet) AppendRange(span SpanExc[Date], out map[Date]struct{}) {
	st, en := span.St, span.En

	startYear := st.Year()
	if u.st != nil && u.st.Year() > startYear {
		startYear = u.st.Year()
	}
	startYear--

	endYear := en.Year()
	if u.en != nil && u.en.Year() < endYear {
		endYear = u.en.Year()
	}
	endYear++

	validSt := st
	if u.st != nil && u.st.Compare(validSt) > 0 {
		validSt = *u.st
	}
	validEn := en
	if u.en != nil {
		if enExc := u.en.AddDays(1); enExc.Compare(validEn) < 0 {
			validEn = enExc
		}
	}
	valid := SpanExc[Date]{St: validSt, En: validEn}

	consider := func(cursor Date) {
		d, ok := cursor, true
		if u.observance != nil {
			d, ok = u.observance(cursor)
		}
		if ok && valid.Contains(d) {
			out[d] = struct{}{}
		}
	}

	if u.md != nil {
		loc := st.Location()
		iterSt := NewDate(startYear, time.Month(u.md[0]), u.md[1], loc)
		iterEn := en.WithYear(endYear)
		it := YearDateIter(iterSt, iterEn)
		for {
			d, more := it.Next()
			if !more {
				break
			}
			consider(d)
		}
		return
	}

	iterSt := st.WithYear(startYear)
	iterEn := en.WithYear(endYear)
	it := DayDateIter(iterSt, iterEn)
	for {
		d, more := it.Next()
		if !more {
			break
		}
		consider(d)
	}
}
