package mhrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOpAddYearsMonthsDays(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2019, time.January, 30, loc)
	assert.Equal(t, 0, YearlyOp().Apply(d).Compare(NewDate(2020, time.January, 30, loc)))

	leap := NewDate(2020, time.February, 29, loc)
	assert.Equal(t, 0, YearlyOp().Apply(leap).Compare(NewDate(2021, time.February, 28, loc)))

	assert.Equal(t, 0, MonthlyOp().Apply(NewDate(2019, time.January, 30, loc)).Compare(NewDate(2019, time.February, 28, loc)))
	assert.Equal(t, 0, MonthlyOp().Apply(NewDate(2020, time.January, 30, loc)).Compare(NewDate(2020, time.February, 29, loc)))

	assert.Equal(t, 0, DailyOp().Apply(NewDate(2020, time.February, 28, loc)).Compare(NewDate(2020, time.February, 29, loc)))
	assert.Equal(t, 0, DailyOp().Apply(NewDate(2019, time.February, 28, loc)).Compare(NewDate(2019, time.March, 1, loc)))
}

func TestDateOpAdvanceWeekday(t *testing.T) {
	loc := easternTestLoc(t)
	sunday := NewDate(2020, time.December, 6, loc)
	monday := NewDate(2020, time.December, 7, loc)

	assert.Equal(t, 0, AdvanceWeekday(Monday, 2).Apply(sunday).Compare(NewDate(2020, time.December, 14, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, 2).Apply(monday).Compare(NewDate(2020, time.December, 21, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, 1).Apply(sunday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, 1).Apply(monday).Compare(NewDate(2020, time.December, 14, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, 0).Apply(sunday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, 0).Apply(monday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, -1).Apply(sunday).Compare(NewDate(2020, time.November, 30, loc)))
	assert.Equal(t, 0, AdvanceWeekday(Monday, -1).Apply(monday).Compare(NewDate(2020, time.November, 30, loc)))
}

func TestDateOpFindWeekday(t *testing.T) {
	loc := easternTestLoc(t)
	sunday := NewDate(2020, time.December, 6, loc)
	monday := NewDate(2020, time.December, 7, loc)

	assert.Equal(t, 0, FindWeekday(Monday, 2).Apply(sunday).Compare(NewDate(2020, time.December, 14, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, 2).Apply(monday).Compare(NewDate(2020, time.December, 14, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, 1).Apply(sunday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, 1).Apply(monday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, 0).Apply(sunday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, 0).Apply(monday).Compare(NewDate(2020, time.December, 7, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, -1).Apply(sunday).Compare(NewDate(2020, time.November, 30, loc)))
	assert.Equal(t, 0, FindWeekday(Monday, -1).Apply(monday).Compare(NewDate(2020, time.December, 7, loc)))
}

func TestDateOpAdvanceFindDayAndMonth(t *testing.T) {
	loc := easternTestLoc(t)
	assert.Equal(t, 0, AdvanceDay(6).Apply(NewDate(2020, time.December, 6, loc)).Compare(NewDate(2021, time.January, 6, loc)))
	assert.Equal(t, 0, AdvanceDay(6).Apply(NewDate(2021, time.January, 5, loc)).Compare(NewDate(2021, time.January, 6, loc)))

	assert.Equal(t, 0, AdvanceMonth(12).Apply(NewDate(2020, time.December, 6, loc)).Compare(NewDate(2021, time.December, 6, loc)))
	assert.Equal(t, 0, AdvanceMonth(12).Apply(NewDate(2021, time.November, 6, loc)).Compare(NewDate(2021, time.December, 6, loc)))

	assert.Equal(t, 0, FindDay(6).Apply(NewDate(2020, time.December, 6, loc)).Compare(NewDate(2020, time.December, 6, loc)))
	assert.Equal(t, 0, FindDay(7).Apply(NewDate(2020, time.December, 6, loc)).Compare(NewDate(2020, time.December, 7, loc)))

	assert.Equal(t, 0, FindMonth(12).Apply(NewDate(2020, time.December, 6, loc)).Compare(NewDate(2020, time.December, 6, loc)))
	assert.Equal(t, 0, FindMonth(1).Apply(NewDate(2020, time.December, 6, loc)).Compare(NewDate(2021, time.January, 6, loc)))
}
