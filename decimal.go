package mhrono

import (
	"github.com/cockroachdb/apd/v3"
)

// decCtx is the shared arithmetic context for all Decimal operations: 40
// significant digits is comfortably more than the 28-digit scale spec'd
// for the densest quantity (sub-attosecond durations), leaving headroom
// for a multi-digit integer part.
var decCtx = apd.BaseContext.WithPrecision(40)

// decimalULP is the smallest representable step at the maximum scale (28
// digits after the decimal point), mirroring the Decimal::MAX_SCALE
// constant the original crate's EndpointConversion impl used for
// arbitrary-precision coordinates.
var decimalULP = apd.New(1, -28)

// Decimal is an arbitrary-precision decimal value, used wherever the
// library needs exact (non-floating-point) arithmetic: durations, cycle
// counts, and fixed frequencies.
type Decimal struct {
	v apd.Decimal
}

// DecimalZero is the additive identity.
func DecimalZero() Decimal { return Decimal{} }

// DecimalFromInt64 builds a Decimal from a whole number.
func DecimalFromInt64(n int64) Decimal {
	var d Decimal
	d.v.SetInt64(n)
	return d
}

// ParseDecimal parses a decimal literal such as "1.5" or "-3".
func ParseDecimal(s string) (Decimal, error) {
	var d Decimal
	_, _, err := decCtx.SetString(&d.v, s)
	if err != nil {
		return Decimal{}, newErrf(ErrDurationParse, err, "invalid decimal %q", s)
	}
	return d, nil
}

func (d Decimal) String() string { return d.v.Text('f') }

// Compare implements Ordered[Decimal].
func (a Decimal) Compare(b Decimal) int { return a.v.Cmp(&b.v) }

// Add returns a + b.
func (a Decimal) Add(b Decimal) Decimal {
	var out Decimal
	_, _ = decCtx.Add(&out.v, &a.v, &b.v)
	return out
}

// Sub returns a - b.
func (a Decimal) Sub(b Decimal) Decimal {
	var out Decimal
	_, _ = decCtx.Sub(&out.v, &a.v, &b.v)
	return out
}

// Neg returns -a.
func (a Decimal) Neg() Decimal {
	var out Decimal
	_, _ = decCtx.Neg(&out.v, &a.v)
	return out
}

// Mul returns a * b.
func (a Decimal) Mul(b Decimal) Decimal {
	var out Decimal
	_, _ = decCtx.Mul(&out.v, &a.v, &b.v)
	return out
}

// Div returns a / b.
func (a Decimal) Div(b Decimal) Decimal {
	var out Decimal
	_, _ = decCtx.Quo(&out.v, &a.v, &b.v)
	return out
}

// QuoInteger returns the integer quotient of a/b, truncated toward zero,
// mirroring the floor-division step Duration.human uses to peel off whole
// units.
func (a Decimal) QuoInteger(b Decimal) int64 {
	var q apd.Decimal
	_, _ = decCtx.QuoInteger(&q, &a.v, &b.v)
	n, _ := q.Int64()
	return n
}

// DecimalFromParts builds secs + nanos/1e9 as an exact Decimal, used when
// converting a zoned instant (whole seconds plus a nanosecond remainder)
// to and from the decimal-seconds representation Time uses internally.
func DecimalFromParts(secs int64, nanos int64) Decimal {
	var out Decimal
	out.v.SetInt64(secs)
	_, _ = decCtx.Add(&out.v, &out.v, apd.New(nanos, -9))
	return out
}

// SplitSeconds splits a into a whole-seconds part and a nanosecond
// remainder, truncating toward zero, the inverse of DecimalFromParts.
func (a Decimal) SplitSeconds() (secs int64, nanos int64) {
	secs = a.QuoInteger(DecimalFromInt64(1))
	frac := a.Sub(DecimalFromInt64(secs))
	nanos = frac.Mul(DecimalFromInt64(1_000_000_000)).QuoInteger(DecimalFromInt64(1))
	return secs, nanos
}

// IsZero reports whether a is exactly zero.
func (a Decimal) IsZero() bool { return a.v.IsZero() }

// Sign returns -1, 0, or 1.
func (a Decimal) Sign() int { return a.v.Sign() }

// Float64 converts to a float64, for callers that accept the precision
// loss (e.g. Duration.Float64Seconds).
func (a Decimal) Float64() float64 {
	f, _ := a.v.Float64()
	return f
}

// ToOpen implements EndpointConversion[Decimal] using the minimum
// representable ulp at scale 28, mirroring the original crate's
// Decimal::MAX_SCALE-based ULP.
func (a Decimal) ToOpen(side Side) (Decimal, bool) {
	var out Decimal
	if side == Left {
		_, _ = decCtx.Sub(&out.v, &a.v, decimalULP)
	} else {
		_, _ = decCtx.Add(&out.v, &a.v, decimalULP)
	}
	return out, true
}

// ToClosed implements EndpointConversion[Decimal].
func (a Decimal) ToClosed(side Side) (Decimal, bool) {
	var out Decimal
	if side == Left {
		_, _ = decCtx.Add(&out.v, &a.v, decimalULP)
	} else {
		_, _ = decCtx.Sub(&out.v, &a.v, decimalULP)
	}
	return out, true
}
