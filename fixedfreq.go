package mhrono

import "strings"

// FixedFreq is a number of cycles per duration, held as a num/denom ratio
// of decimals rather than reduced to a single float, so that ratios like
// 1/3 Hz stay exact.
type FixedFreq struct {
	num   Decimal
	denom Decimal
}

// NewFixedFreq returns the frequency of cyc cycles occurring per dur.
// Panics if cyc or dur is zero, mirroring the original crate's debug
// assertions that a frequency can be neither zero-cycle nor zero-duration.
func NewFixedFreq(cyc Cycles, dur Duration) FixedFreq {
	if cyc.count.IsZero() {
		panic("mhrono: frequency numerator cannot be zero")
	}
	if dur.secs.IsZero() {
		panic("mhrono: frequency duration cannot be zero")
	}
	return FixedFreq{num: cyc.count, denom: dur.secs}
}

// FreqFromHz returns a frequency of hz cycles per second.
func FreqFromHz(hz Decimal) FixedFreq {
	return NewFixedFreq(CyclesFromDecimal(hz), Second)
}

var (
	// HourlyFreq is once per hour.
	HourlyFreq = NewFixedFreq(OneCycle(), Hour)
	// DailyFreq is once per day.
	DailyFreq = NewFixedFreq(OneCycle(), Day)
	// WeeklyFreq is once per week.
	WeeklyFreq = NewFixedFreq(OneCycle(), Week)
)

// Num returns the cycle count of a single period at this frequency.
func (f FixedFreq) Num() Decimal { return f.num }

// Denom returns the duration, in seconds, of a single period.
func (f FixedFreq) Denom() Decimal { return f.denom }

// CycleDuration returns the duration of one cycle at this frequency.
func (f FixedFreq) CycleDuration() Duration {
	return DurationFromDecimalSeconds(f.denom.Div(f.num))
}

// Hz returns the frequency expressed as cycles per second.
func (f FixedFreq) Hz() Decimal { return f.num.Div(f.denom) }

// Compare implements Ordered[FixedFreq], comparing by cross-multiplying
// to avoid a lossy division.
func (f FixedFreq) Compare(o FixedFreq) int {
	a := f.num.Mul(o.denom)
	b := o.num.Mul(f.denom)
	return a.Compare(b)
}

// Equal reports whether f and o represent the same frequency, even if
// their num/denom pairs differ (e.g. 2/2s == 1/1s).
func (f FixedFreq) Equal(o FixedFreq) bool { return f.Compare(o) == 0 }

// DivFreq returns the dimensionless ratio f/o.
func (f FixedFreq) DivFreq(o FixedFreq) Decimal {
	a := f.num.Mul(o.denom)
	b := o.num.Mul(f.denom)
	return a.Div(b)
}

// MulCycles returns the duration spanned by n cycles at this frequency
// (freq * cycles = duration).
func (f FixedFreq) MulCycles(n Cycles) Duration {
	return DurationFromDecimalSeconds(n.count.Mul(f.denom).Div(f.num))
}

// MulDuration returns the number of cycles occurring over d at this
// frequency (duration * freq = cycles).
func (f FixedFreq) MulDuration(d Duration) Cycles {
	return CyclesFromDecimal(d.secs.Mul(f.num).Div(f.denom))
}

// MulScalar scales the numerator by n, e.g. doubling a frequency.
func (f FixedFreq) MulScalar(n Decimal) FixedFreq {
	return FixedFreq{num: f.num.Mul(n), denom: f.denom}
}

// DivScalar scales the denominator by n, e.g. halving a frequency.
func (f FixedFreq) DivScalar(n Decimal) FixedFreq {
	return FixedFreq{num: f.num, denom: f.denom.Mul(n)}
}

// DivFreq returns the duration that c cycles take at frequency f (cycles /
// freq = duration).
func (c Cycles) DivFreq(f FixedFreq) Duration {
	return DurationFromDecimalSeconds(c.count.Mul(f.denom).Div(f.num))
}

// Human renders f using Duration's unit grammar, e.g. "1d" for DailyFreq
// or "2:1s" for two cycles per second.
func (f FixedFreq) Human() string {
	durHuman := DurationFromDecimalSeconds(f.denom).Human()
	if f.num.Compare(DecimalFromInt64(1)) == 0 {
		return durHuman
	}
	return f.num.String() + ":" + durHuman
}

// String implements fmt.Stringer as Human.
func (f FixedFreq) String() string { return f.Human() }

// FreqFromHuman parses either a bare duration grammar ("1d" meaning one
// cycle per day) or a "<num>:<duration>" ratio ("2:1s" meaning two cycles
// per second).
func FreqFromHuman(s string) (FixedFreq, error) {
	num := DecimalFromInt64(1)
	durStr := s
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		numStr := strings.TrimSpace(s[:idx])
		durStr = strings.TrimSpace(s[idx+1:])
		n, err := ParseDecimal(numStr)
		if err != nil {
			return FixedFreq{}, newErrf(ErrFrequencyParse, err, "invalid frequency numerator %q", numStr)
		}
		num = n
	}
	dur, err := DurationFromHuman(durStr)
	if err != nil {
		return FixedFreq{}, newErrf(ErrFrequencyParse, err, "invalid frequency duration %q", durStr)
	}
	if num.IsZero() {
		return FixedFreq{}, newErr(ErrFrequencyParse, "frequency numerator cannot be zero", nil)
	}
	if dur.IsZero() {
		return FixedFreq{}, newErr(ErrFrequencyParse, "frequency duration cannot be zero", nil)
	}
	return NewFixedFreq(CyclesFromDecimal(num), dur), nil
}
