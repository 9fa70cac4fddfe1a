package mhrono

import "time"

// Time is a zoned instant: a point on the timeline together with the IANA
// time zone used to render its wall-clock fields.
type Time struct {
	t time.Time
}

// NewTime wraps a stdlib zoned time.Time.
func NewTime(t time.Time) Time { return Time{t: t} }

// ZeroTime returns the Unix epoch, rendered in loc.
func ZeroTime(loc *time.Location) Time { return Time{t: time.Unix(0, 0).In(loc)} }

// TimeFromUTCTimestamp builds a Time from a Unix timestamp and nanosecond
// remainder, rendered in loc.
func TimeFromUTCTimestamp(utcSecs int64, utcNanos int64, loc *time.Location) Time {
	return Time{t: time.Unix(utcSecs, utcNanos).In(loc)}
}

// TimeFromUTCDecimal builds a Time from an exact decimal Unix timestamp
// (as produced by UTCDecimal), rendered in loc.
func TimeFromUTCDecimal(d Decimal, loc *time.Location) Time {
	secs, nanos := d.SplitSeconds()
	return TimeFromUTCTimestamp(secs, nanos, loc)
}

// FromDate returns midnight on d's calendar date, in d's own zone.
func FromDate(d Date) Time { return Time{t: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())} }

// FromLocalISO parses an RFC3339 timestamp and re-renders it in loc.
func FromLocalISO(s string, loc *time.Location) (Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Time{}, newErrf(ErrInvalidTimeComponents, err, "invalid iso8601 timestamp %q", s)
	}
	return Time{t: parsed.In(loc)}, nil
}

// ToISO renders t as RFC3339 with nanosecond precision.
func (t Time) ToISO() string { return t.t.Format(time.RFC3339Nano) }

// String implements fmt.Stringer.
func (t Time) String() string { return t.ToISO() }

// UTCDecimal returns the exact number of seconds since the Unix epoch, as
// a Decimal, so that Duration-scale arithmetic never loses precision.
func (t Time) UTCDecimal() Decimal {
	u := t.t.UTC()
	return DecimalFromParts(u.Unix(), int64(u.Nanosecond()))
}

// UTCFloat64 is UTCDecimal with the usual float64 precision loss.
func (t Time) UTCFloat64() float64 { return t.UTCDecimal().Float64() }

// Location returns t's time zone.
func (t Time) Location() *time.Location { return t.t.Location() }

// WithTz re-renders t in a different zone without changing the instant.
func (t Time) WithTz(loc *time.Location) Time { return Time{t: t.t.In(loc)} }

// Date truncates t down to its calendar date, in its own zone.
func (t Time) Date() Date { return DateFromTime(t.t) }

// Ymd returns midnight of t's calendar date, in its own zone.
func (t Time) Ymd() Time { return FromDate(t.Date()) }

// Year, Month, Day, Weekday, and MonthName delegate to Date.

func (t Time) Year() int            { return t.t.Year() }
func (t Time) Month() time.Month    { return t.t.Month() }
func (t Time) Day() int             { return t.t.Day() }
func (t Time) Weekday() Weekday     { return t.Date().Weekday() }
func (t Time) MonthName() string    { return t.Date().MonthName() }
func (t Time) Hour() int            { return t.t.Hour() }
func (t Time) Minute() int          { return t.t.Minute() }
func (t Time) Second() int          { return t.t.Second() }
func (t Time) Nanosecond() int      { return t.t.Nanosecond() }

// Compare implements Ordered[Time].
func (t Time) Compare(o Time) int {
	switch {
	case t.t.Before(o.t):
		return -1
	case t.t.After(o.t):
		return 1
	default:
		return 0
	}
}

// WithDate re-dates t to d, keeping the same wall-clock time of day and
// walking forward an hour at a time past any daylight-saving gap that
// would otherwise make the combination nonexistent. Ambiguous (fold)
// combinations resolve to whatever offset Go's zone database picks for
// that wall-clock reading.
func (t Time) WithDate(d Date) Time {
	hh, mm, ss := t.t.Clock()
	ns := t.t.Nanosecond()
	loc := d.Location()
	for i := 0; i < 48; i++ {
		candidate := time.Date(d.Year(), d.Month(), d.Day(), hh, mm, ss, ns, loc)
		cy, cm, cd := candidate.Date()
		ch, cmin, cs := candidate.Clock()
		if cy == d.Year() && cm == d.Month() && cd == d.Day() && ch == hh && cmin == mm && cs == ss {
			return Time{t: candidate}
		}
		hh++
		if hh >= 24 {
			hh -= 24
		}
	}
	return Time{t: time.Date(d.Year(), d.Month(), d.Day(), hh, mm, ss, ns, loc)}
}

func (t Time) WithNanos(ns int) Time {
	return Time{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ns, t.Location())}
}

func (t Time) AddNanos(ns int64) Time { return Time{t: t.t.Add(time.Duration(ns))} }

func (t Time) WithMicros(us int) Time { return t.WithNanos(us * 1000) }

func (t Time) AddMicros(us int64) Time { return Time{t: t.t.Add(time.Duration(us) * time.Microsecond)} }

func (t Time) WithMillis(ms int) Time { return t.WithNanos(ms * 1000 * 1000) }

func (t Time) AddMillis(ms int64) Time { return Time{t: t.t.Add(time.Duration(ms) * time.Millisecond)} }

func (t Time) WithSec(s int) Time {
	if s < 0 {
		s = 0
	} else if s > 59 {
		s = 59
	}
	return Time{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), s, t.Nanosecond(), t.Location())}
}

func (t Time) AddSecs(secs int64) Time { return Time{t: t.t.Add(time.Duration(secs) * time.Second)} }

func (t Time) WithMin(m int) Time {
	if m < 0 {
		m = 0
	} else if m > 59 {
		m = 59
	}
	return Time{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, t.Second(), t.Nanosecond(), t.Location())}
}

func (t Time) AddMins(mins int64) Time { return Time{t: t.t.Add(time.Duration(mins) * time.Minute)} }

func (t Time) WithHour(h int) Time {
	if h < 0 {
		h = 0
	} else if h > 23 {
		h = 23
	}
	return Time{t: time.Date(t.Year(), t.Month(), t.Day(), h, t.Minute(), t.Second(), t.Nanosecond(), t.Location())}
}

func (t Time) AddHours(h int64) Time { return Time{t: t.t.Add(time.Duration(h) * time.Hour)} }

func (t Time) WithDay(d int) Time { return t.WithDate(t.Date().WithDay(d)) }

func (t Time) AddDays(d int) Time { return t.WithDate(t.Date().AddDays(d)) }

func (t Time) WithMonth(m time.Month) Time { return t.WithDate(t.Date().WithMonth(m)) }

func (t Time) AddMonths(m int) Time { return t.WithDate(t.Date().AddMonths(m)) }

func (t Time) WithYear(y int) Time { return t.WithDate(t.Date().WithYear(y)) }

func (t Time) AddYears(y int) Time { return t.WithDate(t.Date().AddYears(y)) }

// Sub returns the exact duration t - o.
func (t Time) Sub(o Time) Duration {
	return DurationFromDecimalSeconds(t.UTCDecimal().Sub(o.UTCDecimal()))
}

// SubDuration returns t shifted back by d.
func (t Time) SubDuration(d Duration) Time {
	return TimeFromUTCDecimal(t.UTCDecimal().Sub(d.Seconds()), t.Location())
}

// AddDuration returns t shifted forward by d.
func (t Time) AddDuration(d Duration) Time {
	return TimeFromUTCDecimal(t.UTCDecimal().Add(d.Seconds()), t.Location())
}
