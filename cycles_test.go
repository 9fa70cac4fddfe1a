package mhrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclesArithmetic(t *testing.T) {
	a := CyclesFromCount(5)
	b := CyclesFromCount(2)

	assert.Equal(t, CyclesFromCount(7), a.Add(b))
	assert.Equal(t, CyclesFromCount(3), a.Sub(b))
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))

	ratio := a.DivCycles(b)
	want, _ := ParseDecimal("2.5")
	assert.Equal(t, 0, ratio.Compare(want))

	assert.Equal(t, CyclesFromCount(10), a.MulScalar(DecimalFromInt64(2)))
}

func TestCyclesDivDuration(t *testing.T) {
	c := CyclesFromCount(60)
	freq := c.DivDuration(Minute)
	assert.Equal(t, 0, freq.Hz().Compare(DecimalFromInt64(1)))
}

func TestCyclesEndpointConversion(t *testing.T) {
	c := CyclesFromCount(0)
	lo, ok := c.ToOpen(Left)
	assert.True(t, ok)
	assert.Equal(t, -1, lo.Compare(c))

	hi, ok := c.ToClosed(Left)
	assert.True(t, ok)
	assert.Equal(t, 1, hi.Compare(c))
}
