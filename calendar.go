package mhrono

import "time"

// overrideRule pairs an alternate opens schedule with the holiday sets
// that trigger it, plus its own independent RangeCache.
type overrideRule struct {
	opens []SpanOp
	hols  []Ranger
	cache *RangeCache
}

// Calendar is a rule-based generator of "opening" spans (trading
// sessions): a base opens schedule plus a list of holiday DaySets, and an
// ordered list of overrides that replace the base schedule entirely on
// days their own holiday sets match. Calendar carries internal caches
// that mutate on read, so it is single-owner/single-thread like DaySet.
// There is no Clone method; a plain Go value copy shares the caches (they
// are pointers) with the original.
type Calendar struct {
	Name      string
	Loc       *time.Location
	opens     []SpanOp
	hols      []Ranger
	cache     *RangeCache
	overrides []overrideRule
}

// NewCalendar returns an empty calendar with no opens and no holidays.
func NewCalendar(name string, loc *time.Location) *Calendar {
	return &Calendar{Name: name, Loc: loc, cache: NewRangeCache()}
}

// WithOpens sets the base opens schedule. opens must already be in
// chronological order within a day.
func (c *Calendar) WithOpens(opens ...SpanOp) *Calendar {
	c.opens = append([]SpanOp(nil), opens...)
	return c
}

// WithHolidays sets the base holiday sets.
func (c *Calendar) WithHolidays(hols ...Ranger) *Calendar {
	c.hols = append([]Ranger(nil), hols...)
	return c
}

// WithOverride appends an override: on any day where one of hols
// matches, opens replaces the base schedule entirely (even when opens is
// empty — an empty-opens override still claims the day as closed). If
// more than one override matches a day, the first one added wins.
func (c *Calendar) WithOverride(opens []SpanOp, hols []Ranger) *Calendar {
	c.overrides = append(c.overrides, overrideRule{
		opens: append([]SpanOp(nil), opens...),
		hols:  append([]Ranger(nil), hols...),
		cache: NewRangeCache(),
	})
	return c
}

// NextSpan finds the first session span whose start is at or after t.
// Returns false if neither the base schedule nor any override ever has a
// non-empty opens list — there is no session to find. Otherwise this
// walks forward one day at a time: a holiday day (per the base holiday
// RangeCache) is skipped outright; a matching override replaces the
// day's opens list; the first candidate span with st >= t wins.
//
// Callers must impose their own upper bound on how far this walks — a
// calendar whose every future day is a holiday, or whose every matching
// override has an empty opens list, makes this loop forever.
func (c *Calendar) NextSpan(t Time) (SpanExc[Time], bool) {
	if len(c.opens) == 0 && !c.anyOverrideHasOpens() {
		return SpanExc[Time]{}, false
	}
	cur := t.WithTz(c.Loc)
	for {
		d := cur.Date()
		if !c.cache.Contains(d, NewRangerUnion(c.hols)) {
			if s, ok := c.nextSpanInDay(d, cur); ok {
				return s, true
			}
		}
		logger.Debug().Str("day", d.String()).Msg("calendar: no session, skipping to next day")
		// Use the given time of day on the first iteration, midnight on
		// every iteration after.
		midnight, _ := d.AddDays(1).Time()
		cur = midnight
	}
}

func (c *Calendar) anyOverrideHasOpens() bool {
	for _, o := range c.overrides {
		if len(o.opens) > 0 {
			return true
		}
	}
	return false
}

func (c *Calendar) nextSpanInDay(d Date, t Time) (SpanExc[Time], bool) {
	for i := range c.overrides {
		o := &c.overrides[i]
		if o.cache.Contains(d, NewRangerUnion(o.hols)) {
			return findNextSpanInOpens(d, t, o.opens)
		}
	}
	return findNextSpanInOpens(d, t, c.opens)
}

func findNextSpanInOpens(d Date, t Time, opens []SpanOp) (SpanExc[Time], bool) {
	baseT, err := d.Time()
	if err != nil {
		return SpanExc[Time]{}, false
	}
	for _, open := range opens {
		s := open.Apply(baseT)
		if s.St.Compare(t) >= 0 {
			return s, true
		}
	}
	return SpanExc[Time]{}, false
}
