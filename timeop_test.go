package mhrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymdhms(t *testing.T, y int, m time.Month, d, hh, mm, ss int, loc *time.Location) Time {
	tm, err := NewDate(y, m, d, loc).AndHMS(hh, mm, ss)
	require.NoError(t, err)
	return tm
}

func TestTimeOpYearlyAndMonthlyLeapYear(t *testing.T) {
	loc := easternTestLoc(t)

	assert.Equal(t, 0,
		YearlyTimeOp().Apply(ymdhms(t, 2019, time.January, 30, 0, 0, 0, loc)).
			Sub(ymdhms(t, 2020, time.January, 30, 0, 0, 0, loc)).Compare(ZeroDuration()))

	assert.Equal(t, 0,
		YearlyTimeOp().Apply(ymdhms(t, 2020, time.February, 29, 0, 0, 0, loc)).
			Sub(ymdhms(t, 2021, time.February, 28, 0, 0, 0, loc)).Compare(ZeroDuration()))

	assert.Equal(t, 0,
		MonthlyTimeOp().Apply(ymdhms(t, 2019, time.January, 30, 0, 0, 0, loc)).
			Sub(ymdhms(t, 2019, time.February, 28, 0, 0, 0, loc)).Compare(ZeroDuration()))
}

func TestTimeOpAdvanceMonday(t *testing.T) {
	loc := easternTestLoc(t)
	sunday := ymdhms(t, 2020, time.December, 6, 0, 0, 0, loc)
	monday := ymdhms(t, 2020, time.December, 7, 0, 0, 0, loc)

	assert.Equal(t, 0,
		AdvanceWeekdayOp(Monday, 2).Apply(sunday).Sub(ymdhms(t, 2020, time.December, 14, 0, 0, 0, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0,
		AdvanceWeekdayOp(Monday, 2).Apply(monday).Sub(ymdhms(t, 2020, time.December, 21, 0, 0, 0, loc)).Compare(ZeroDuration()))
}

func TestTimeOpFieldOps(t *testing.T) {
	loc := easternTestLoc(t)
	base := ymdhms(t, 2020, time.March, 15, 10, 20, 30, loc)

	assert.Equal(t, 11, AddHoursOp(1).Apply(base).Hour())
	assert.Equal(t, 21, AddMinsOp(1).Apply(base).Minute())
	assert.Equal(t, 31, AddSecsOp(1).Apply(base).Second())
	assert.Equal(t, 5, SetHourOp(5).Apply(base).Hour())
	assert.Equal(t, 0, SetMinOp(0).Apply(base).Minute())
}

func TestSpanOpApply(t *testing.T) {
	loc := easternTestLoc(t)
	base := ymdhms(t, 2020, time.March, 15, 0, 0, 0, loc)
	op := NewSpanOp(SetHourOp(9), SetHourOp(16))
	span := op.Apply(base)
	assert.Equal(t, 9, span.St.Hour())
	assert.Equal(t, 16, span.En.Hour())
}
