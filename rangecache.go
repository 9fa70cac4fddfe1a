package mhrono

import (
	"sort"
)

// Ranger enumerates the dates (within some span) that a holiday rule or a
// union of rules contributes, inserting them into out. It is the
// abstraction RangeCache populates itself from.
type Ranger interface {
	AppendRange(s SpanExc[Date], out map[Date]struct{})
}

// RangerUnion combines several Rangers into one, appending every member's
// contribution for the same span.
type RangerUnion struct {
	rs []Ranger
}

// NewRangerUnion builds a Ranger that delegates to each of rs in turn.
func NewRangerUnion(rs []Ranger) RangerUnion { return RangerUnion{rs: rs} }

func (u RangerUnion) AppendRange(s SpanExc[Date], out map[Date]struct{}) {
	for _, r := range u.rs {
		r.AppendRange(s, out)
	}
}

// RangeCache is a windowed, monotonically-growing cache of dates that
// satisfy some Ranger's rule. Queries outside the cached window trigger a
// re-population of a larger window; the cache never shrinks.
type RangeCache struct {
	cache    map[Date]struct{}
	sorted   []Date // kept sorted for range/contains queries; rebuilt on growth
	computed SpanExc[Date]
}

// NewRangeCache returns an empty cache covering no span.
func NewRangeCache() *RangeCache {
	return &RangeCache{cache: make(map[Date]struct{})}
}

// Contains reports whether d satisfies r's rule, growing the cache to
// cover d first if necessary.
func (c *RangeCache) Contains(d Date, r Ranger) bool {
	point, ok := SpanExcPoint(d)
	if !ok {
		return false
	}
	c.EnsureRange(point, r)
	_, found := c.cache[d]
	return found
}

// GetRange returns the cached dates within s, growing the cache first if
// necessary. The result is sorted ascending.
func (c *RangeCache) GetRange(s SpanExc[Date], r Ranger) []Date {
	c.EnsureRange(s, r)
	lo := sort.Search(len(c.sorted), func(i int) bool { return c.sorted[i].Compare(s.St) >= 0 })
	hi := sort.Search(len(c.sorted), func(i int) bool { return c.sorted[i].Compare(s.En) >= 0 })
	out := make([]Date, hi-lo)
	copy(out, c.sorted[lo:hi])
	return out
}

// EnsureRange grows the cache so that it fully covers s, expanding by at
// least 20 years (or the span's own year count, whichever is larger)
// whenever a query abuts the cache's current left or right edge. The
// current design re-populates the full expanded window on every growth
// rather than tracking which sub-ranges are already known, since
// expansions are logarithmic in the total range of queries actually made.
func (c *RangeCache) EnsureRange(s SpanExc[Date], r Ranger) {
	if c.computed.ContainsSpan(s) {
		return
	}
	c.computed = CoverSpanExc(c.computed, s)
	years := c.computed.En.Year() - c.computed.St.Year() + 1
	if years < 20 {
		years = 20
	}
	if s.St.Compare(c.computed.St) == 0 {
		c.computed.St = c.computed.St.AddYears(-years)
	}
	if s.En.Compare(c.computed.En) == 0 {
		c.computed.En = c.computed.En.AddYears(years)
	}
	logger.Debug().
		Str("window_start", c.computed.St.String()).
		Str("window_end", c.computed.En.String()).
		Int("window_years", years).
		Msg("rangecache: growing window")
	c.cache = make(map[Date]struct{})
	r.AppendRange(c.computed, c.cache)
	c.sorted = c.sorted[:0]
	for d := range c.cache {
		c.sorted = append(c.sorted, d)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].Compare(c.sorted[j]) < 0 })
}
