package mhrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func easternTestLoc(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestDateFields(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.March, 15, loc)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestDateWeekday(t *testing.T) {
	loc := easternTestLoc(t)
	assert.Equal(t, Monday, NewDate(2020, time.March, 16, loc).Weekday())
	assert.Equal(t, Friday, NewDate(2020, time.March, 20, loc).Weekday())
	assert.Equal(t, Sunday, NewDate(2020, time.March, 15, loc).Weekday())
}

func TestDateMonthName(t *testing.T) {
	loc := easternTestLoc(t)
	assert.Equal(t, "January", NewDate(2020, time.January, 1, loc).MonthName())
	assert.Equal(t, "December", NewDate(2020, time.December, 1, loc).MonthName())
}

func TestDateWithDayClamp(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.January, 31, loc).WithDay(31).WithMonth(time.February)
	assert.Equal(t, 29, d.Day()) // 2020 is a leap year

	d2 := NewDate(2019, time.January, 31, loc).WithDay(31).WithMonth(time.February)
	assert.Equal(t, 28, d2.Day())
}

func TestDateAddDaysAcrossMonth(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.January, 30, loc)
	d2 := d.AddDays(5)
	assert.Equal(t, time.February, d2.Month())
	assert.Equal(t, 4, d2.Day())
}

func TestDateAddMonths(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.January, 15, loc)
	d2 := d.AddMonths(3)
	assert.Equal(t, time.April, d2.Month())
	assert.Equal(t, 2020, d2.Year())

	d3 := d.AddMonths(-3)
	assert.Equal(t, time.October, d3.Month())
	assert.Equal(t, 2019, d3.Year())
}

func TestDateAddMonthsDayClamp(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.January, 31, loc)
	d2 := d.AddMonths(1)
	assert.Equal(t, time.February, d2.Month())
	assert.Equal(t, 29, d2.Day())
}

func TestDateAddYearsLeapDay(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.February, 29, loc)
	d2 := d.AddYears(1)
	assert.Equal(t, 2021, d2.Year())
	assert.Equal(t, time.February, d2.Month())
	assert.Equal(t, 28, d2.Day())
}

func TestDateOrderingAcrossZones(t *testing.T) {
	loc := easternTestLoc(t)
	d1 := NewDate(2020, time.March, 15, loc)
	d2 := NewDate(2020, time.March, 16, loc)
	d3 := NewDate(2020, time.March, 15, loc)
	assert.True(t, d1.Compare(d2) < 0)
	assert.True(t, d2.Compare(d1) > 0)
	assert.Equal(t, 0, d1.Compare(d3))

	d4 := NewDate(2020, time.March, 15, time.UTC)
	assert.NotEqual(t, 0, d1.Compare(d4))
}

func TestDateAndHms(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.March, 15, loc)
	tm, err := d.AndHMS(14, 30, 45)
	require.NoError(t, err)
	assert.Equal(t, 14, tm.Hour())
	assert.Equal(t, 30, tm.Minute())
	assert.Equal(t, 45, tm.Second())
	assert.Equal(t, 0, tm.Date().Compare(d))
}

func TestDateEndpointConversion(t *testing.T) {
	loc := easternTestLoc(t)
	d := NewDate(2020, time.March, 15, loc)

	leftOpen, ok := d.ToOpen(Left)
	require.True(t, ok)
	assert.Equal(t, 0, leftOpen.Compare(NewDate(2020, time.March, 14, loc)))

	rightOpen, ok := d.ToOpen(Right)
	require.True(t, ok)
	assert.Equal(t, 0, rightOpen.Compare(NewDate(2020, time.March, 16, loc)))

	leftClosed, ok := d.ToClosed(Left)
	require.True(t, ok)
	assert.Equal(t, 0, leftClosed.Compare(NewDate(2020, time.March, 16, loc)))

	rightClosed, ok := d.ToClosed(Right)
	require.True(t, ok)
	assert.Equal(t, 0, rightClosed.Compare(NewDate(2020, time.March, 14, loc)))
}
