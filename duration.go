package mhrono

import (
	"strconv"
	"strings"
)

// Duration is an exact signed span of time, stored as arbitrary-precision
// seconds rather than a fixed-width integer, so that sub-nanosecond
// quantities (as used by FixedFreq ratios) never lose precision to
// floating point.
type Duration struct {
	secs Decimal
}

// ZeroDuration is the additive identity.
func ZeroDuration() Duration { return Duration{} }

// DurationFromSeconds builds a Duration from a whole number of seconds.
func DurationFromSeconds(secs int64) Duration {
	return Duration{secs: DecimalFromInt64(secs)}
}

// DurationFromDecimalSeconds builds a Duration from an exact decimal
// number of seconds (e.g. for sub-second precision).
func DurationFromDecimalSeconds(secs Decimal) Duration {
	return Duration{secs: secs}
}

// Common unit durations, mirroring a classic time.Duration constant table.
var (
	Second = DurationFromSeconds(1)
	Minute = DurationFromSeconds(60)
	Hour   = DurationFromSeconds(60 * 60)
	Day    = DurationFromSeconds(24 * 60 * 60)
	Week   = DurationFromSeconds(24 * 60 * 60 * 7)
)

// Seconds returns the exact number of seconds as a Decimal.
func (d Duration) Seconds() Decimal { return d.secs }

// Float64Seconds returns the number of seconds as a float64, for callers
// that accept the precision loss.
func (d Duration) Float64Seconds() float64 { return d.secs.Float64() }

// Compare implements Ordered[Duration].
func (d Duration) Compare(o Duration) int { return d.secs.Compare(o.secs) }

// Add returns d + o.
func (d Duration) Add(o Duration) Duration { return Duration{secs: d.secs.Add(o.secs)} }

// Sub returns d - o.
func (d Duration) Sub(o Duration) Duration { return Duration{secs: d.secs.Sub(o.secs)} }

// Neg returns -d.
func (d Duration) Neg() Duration { return Duration{secs: d.secs.Neg()} }

// MulScalar returns d scaled by n.
func (d Duration) MulScalar(n Decimal) Duration { return Duration{secs: d.secs.Mul(n)} }

// DivScalar returns d divided by n.
func (d Duration) DivScalar(n Decimal) Duration { return Duration{secs: d.secs.Div(n)} }

// DivDuration returns the dimensionless ratio d/o.
func (d Duration) DivDuration(o Duration) Decimal { return d.secs.Div(o.secs) }

// IsZero reports whether d is exactly zero.
func (d Duration) IsZero() bool { return d.secs.IsZero() }

var durationBases = []struct {
	suffix string
	unit   Duration
}{
	{"w", Week},
	{"d", Day},
	{"h", Hour},
	{"m", Minute},
	{"s", Second},
}

// Human renders d using the "(<int><unit>)+" grammar, e.g. "1h30m45s". A
// zero duration renders as "0s". Any sub-second remainder is appended as a
// final decimal-seconds term, e.g. 1.5 seconds renders as "1s0.5s" —
// DurationFromHuman does not
// accept this form (sub-second Durations are not expected to round-trip
// through Human today).
func (d Duration) Human() string {
	rem := d.secs
	var sb strings.Builder
	for _, b := range durationBases {
		n := rem.QuoInteger(b.unit.secs)
		rem = rem.Sub(b.unit.secs.Mul(DecimalFromInt64(n)))
		if n != 0 {
			sb.WriteString(strconv.FormatInt(n, 10))
			sb.WriteString(b.suffix)
		}
	}
	if !rem.IsZero() {
		sb.WriteString(rem.String())
		sb.WriteString("s")
	}
	if sb.Len() == 0 {
		return "0s"
	}
	return sb.String()
}

// String implements fmt.Stringer as Human.
func (d Duration) String() string { return d.Human() }

// DurationFromHuman parses the "(<int><unit>)+" grammar Human produces,
// e.g. "1h30m45s" or "15m7s". Units may repeat; later occurrences add.
func DurationFromHuman(s string) (Duration, error) {
	dur := ZeroDuration()
	rest := s
	if rest == "" {
		return dur, newErr(ErrDurationParse, "empty duration string", nil)
	}
	for rest != "" {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return Duration{}, newErrf(ErrDurationParse, nil, "expected digit at %q", rest)
		}
		countStr := rest[:i]
		rest = rest[i:]
		j := 0
		for j < len(rest) && rest[j] >= 'a' && rest[j] <= 'z' {
			j++
		}
		if j == 0 {
			return Duration{}, newErrf(ErrDurationParse, nil, "expected unit at %q", rest)
		}
		unit := rest[:j]
		rest = rest[j:]

		count, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			return Duration{}, newErrf(ErrDurationParse, err, "invalid count %q", countStr)
		}
		base, ok := durationUnit(unit)
		if !ok {
			return Duration{}, newErrf(ErrDurationParse, nil, "unknown duration unit %q", unit)
		}
		dur = dur.Add(base.MulScalar(DecimalFromInt64(count)))
	}
	return dur, nil
}

func durationUnit(suffix string) (Duration, bool) {
	for _, b := range durationBases {
		if b.suffix == suffix {
			return b.unit, true
		}
	}
	return Duration{}, false
}
