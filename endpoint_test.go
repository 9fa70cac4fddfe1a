package mhrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointCompareValue(t *testing.T) {
	leftClosed1 := ClosedEndpoint(Int(1), Left)
	leftOpen1 := OpenEndpoint(Int(1), Left)
	rightClosed1 := ClosedEndpoint(Int(1), Right)
	rightOpen1 := OpenEndpoint(Int(1), Right)
	leftUnbounded := UnboundedEndpoint[Int](Left)
	rightUnbounded := UnboundedEndpoint[Int](Right)

	assert.True(t, leftClosed1.Equal(1))
	assert.False(t, leftOpen1.Equal(1))
	assert.True(t, rightClosed1.Equal(1))
	assert.False(t, rightOpen1.Equal(1))

	assert.Less(t, leftClosed1.CompareValue(2), 0)
	assert.Less(t, leftOpen1.CompareValue(2), 0)
	assert.Less(t, rightClosed1.CompareValue(2), 0)
	assert.Less(t, rightOpen1.CompareValue(2), 0)

	assert.Greater(t, leftClosed1.CompareValue(0), 0)
	assert.Greater(t, leftOpen1.CompareValue(0), 0)
	assert.Greater(t, rightClosed1.CompareValue(0), 0)
	assert.Greater(t, rightOpen1.CompareValue(0), 0)

	assert.Greater(t, leftOpen1.CompareValue(1), 0)
	assert.Less(t, rightOpen1.CompareValue(1), 0)

	assert.Less(t, leftUnbounded.CompareValue(1), 0)
	assert.Greater(t, rightUnbounded.CompareValue(1), 0)
}

func TestEndpointCompare(t *testing.T) {
	leftClosed1 := ClosedEndpoint(Int(1), Left)
	leftOpen1 := OpenEndpoint(Int(1), Left)
	rightClosed1 := ClosedEndpoint(Int(1), Right)
	rightOpen1 := OpenEndpoint(Int(1), Right)
	leftClosed2 := ClosedEndpoint(Int(2), Left)
	leftOpen2 := OpenEndpoint(Int(2), Left)
	rightClosed2 := ClosedEndpoint(Int(2), Right)
	rightOpen2 := OpenEndpoint(Int(2), Right)
	leftUnbounded := UnboundedEndpoint[Int](Left)
	rightUnbounded := UnboundedEndpoint[Int](Right)

	sign := func(c int) int {
		switch {
		case c < 0:
			return -1
		case c > 0:
			return 1
		default:
			return 0
		}
	}

	cases := []struct {
		name string
		a, b Endpoint[Int]
		want int
	}{
		{"lc1,lc1", leftClosed1, leftClosed1, 0},
		{"lc1,lo1", leftClosed1, leftOpen1, -1},
		{"lc1,rc1", leftClosed1, rightClosed1, 0},
		{"lc1,ro1", leftClosed1, rightOpen1, 1},
		{"lc1,lc2", leftClosed1, leftClosed2, -1},
		{"lc1,lo2", leftClosed1, leftOpen2, -1},
		{"lc1,rc2", leftClosed1, rightClosed2, -1},
		{"lc1,ro2", leftClosed1, rightOpen2, -1},
		{"lc1,lu", leftClosed1, leftUnbounded, 1},
		{"lc1,ru", leftClosed1, rightUnbounded, -1},

		{"lo1,lc1", leftOpen1, leftClosed1, 1},
		{"lo1,lo1", leftOpen1, leftOpen1, 0},
		{"lo1,rc1", leftOpen1, rightClosed1, 1},
		{"lo1,ro1", leftOpen1, rightOpen1, 1},
		{"lo1,lc2", leftOpen1, leftClosed2, -1},
		{"lo1,lo2", leftOpen1, leftOpen2, -1},
		{"lo1,rc2", leftOpen1, rightClosed2, -1},
		{"lo1,ro2", leftOpen1, rightOpen2, -1},
		{"lo1,lu", leftOpen1, leftUnbounded, 1},
		{"lo1,ru", leftOpen1, rightUnbounded, -1},

		{"rc1,lc1", rightClosed1, leftClosed1, 0},
		{"rc1,lo1", rightClosed1, leftOpen1, -1},
		{"rc1,rc1", rightClosed1, rightClosed1, 0},
		{"rc1,ro1", rightClosed1, rightOpen1, 1},
		{"rc1,lc2", rightClosed1, leftClosed2, -1},
		{"rc1,lo2", rightClosed1, leftOpen2, -1},
		{"rc1,rc2", rightClosed1, rightClosed2, -1},
		{"rc1,ro2", rightClosed1, rightOpen2, -1},
		{"rc1,lu", rightClosed1, leftUnbounded, 1},
		{"rc1,ru", rightClosed1, rightUnbounded, -1},

		{"ro1,lc1", rightOpen1, leftClosed1, -1},
		{"ro1,lo1", rightOpen1, leftOpen1, -1},
		{"ro1,rc1", rightOpen1, rightClosed1, -1},
		{"ro1,ro1", rightOpen1, rightOpen1, 0},
		{"ro1,lc2", rightOpen1, leftClosed2, -1},
		{"ro1,lo2", rightOpen1, leftOpen2, -1},
		{"ro1,rc2", rightOpen1, rightClosed2, -1},
		{"ro1,ro2", rightOpen1, rightOpen2, -1},
		{"ro1,lu", rightOpen1, leftUnbounded, 1},
		{"ro1,ru", rightOpen1, rightUnbounded, -1},

		{"lc2,rc2", leftClosed2, rightClosed2, 0},
		{"lo2,rc2", leftOpen2, rightClosed2, 1},
		{"rc2,lo2", rightClosed2, leftOpen2, -1},
		{"ro2,lc2", rightOpen2, leftClosed2, -1},

		{"lu,lu", leftUnbounded, leftUnbounded, 0},
		{"lu,ru", leftUnbounded, rightUnbounded, -1},
		{"ru,lu", rightUnbounded, leftUnbounded, 1},
		{"ru,ru", rightUnbounded, rightUnbounded, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, sign(c.a.Compare(c.b)), "%v.Compare(%v)", c.a, c.b)
		})
	}
}

func TestIntEndpointConversion(t *testing.T) {
	one, ok := Int(0).ToOpen(Left)
	assert.True(t, ok)
	assert.Equal(t, Int(-1), one)

	two, ok := Int(0).ToOpen(Right)
	assert.True(t, ok)
	assert.Equal(t, Int(1), two)

	three, ok := Int(0).ToClosed(Left)
	assert.True(t, ok)
	assert.Equal(t, Int(1), three)

	four, ok := Int(0).ToClosed(Right)
	assert.True(t, ok)
	assert.Equal(t, Int(-1), four)

	_, ok = maxInt64.ToOpen(Right)
	assert.False(t, ok)
	_, ok = minInt64.ToOpen(Left)
	assert.False(t, ok)
}
