package mhrono

// Cycles counts occurrences of some recurring event — the numerator half
// of a FixedFreq ratio (cycles per duration).
type Cycles struct {
	count Decimal
}

// ZeroCycles is the additive identity.
func ZeroCycles() Cycles { return Cycles{} }

// OneCycle is a single occurrence.
func OneCycle() Cycles { return Cycles{count: DecimalFromInt64(1)} }

// CyclesFromCount builds a Cycles from a whole number of occurrences.
func CyclesFromCount(n int64) Cycles { return Cycles{count: DecimalFromInt64(n)} }

// CyclesFromDecimal builds a Cycles from an exact (possibly fractional)
// count.
func CyclesFromDecimal(n Decimal) Cycles { return Cycles{count: n} }

// Count returns the exact occurrence count.
func (c Cycles) Count() Decimal { return c.count }

// Compare implements Ordered[Cycles].
func (c Cycles) Compare(o Cycles) int { return c.count.Compare(o.count) }

// Add returns c + o.
func (c Cycles) Add(o Cycles) Cycles { return Cycles{count: c.count.Add(o.count)} }

// Sub returns c - o.
func (c Cycles) Sub(o Cycles) Cycles { return Cycles{count: c.count.Sub(o.count)} }

// DivCycles returns the dimensionless ratio c/o.
func (c Cycles) DivCycles(o Cycles) Decimal { return c.count.Div(o.count) }

// DivDuration returns the fixed frequency c/d (cycles per unit of d).
func (c Cycles) DivDuration(d Duration) FixedFreq { return NewFixedFreq(c, d) }

// MulScalar scales c by n.
func (c Cycles) MulScalar(n Decimal) Cycles { return Cycles{count: c.count.Mul(n)} }

// ToOpen implements EndpointConversion[Cycles].
func (c Cycles) ToOpen(side Side) (Cycles, bool) {
	v, ok := c.count.ToOpen(side)
	return Cycles{count: v}, ok
}

// ToClosed implements EndpointConversion[Cycles].
func (c Cycles) ToClosed(side Side) (Cycles, bool) {
	v, ok := c.count.ToClosed(side)
	return Cycles{count: v}, ok
}
