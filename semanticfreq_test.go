package mhrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreqStringRoundTrip(t *testing.T) {
	cases := []struct {
		freq Freq
		want string
	}{
		{MilliFreq, "1ms"},
		{SecFreq, "1s"},
		{MinFreq, "1m"},
		{HourlySFreq, "1h"},
		{DailySFreq, "1d"},
		{WeeklySFreq, "1w"},
		{MonthlyFreq, "1mo"},
		{YearlyFreq, "1y"},
		{NewFreq(4, DayUnit), "4d"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.freq.String())
		parsed, err := ParseFreq(c.want)
		require.NoError(t, err)
		assert.Equal(t, c.freq, parsed)
	}
}

func TestParseFreqCaseInsensitive(t *testing.T) {
	parsed, err := ParseFreq("1D")
	require.NoError(t, err)
	assert.Equal(t, DailySFreq, parsed)
}

func TestParseFreqInvalid(t *testing.T) {
	_, err := ParseFreq("1zz")
	assert.Error(t, err)
	_, err = ParseFreq("zz")
	assert.Error(t, err)
}

func TestFreqOrdering(t *testing.T) {
	assert.True(t, HourlySFreq.Compare(DailySFreq) > 0)
	assert.True(t, SecFreq.Compare(DailySFreq) > 0)
	assert.True(t, MonthlyFreq.Compare(DailySFreq) < 0)
	assert.True(t, NewFreq(2, WeekUnit).Compare(WeeklySFreq) < 0)
}

func TestFreqMulScalar(t *testing.T) {
	freq := NewFreq(1, Millisecond)
	freq = freq.MulScalar(2)
	assert.Equal(t, NewFreq(2, Millisecond), freq)

	freq2 := NewFreq(2, Millisecond).MulScalar(3)
	assert.Equal(t, NewFreq(6, Millisecond), freq2)
}

func TestFreqNextPrev(t *testing.T) {
	loc := easternTestLoc(t)
	base := ymdhms(t, 2017, time.March, 5, 2, 57, 12, loc)

	assert.Equal(t, 0, SecFreq.Next(base).Sub(ymdhms(t, 2017, time.March, 5, 2, 57, 13, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0, MinFreq.Next(base).Sub(ymdhms(t, 2017, time.March, 5, 2, 58, 12, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0, HourlySFreq.Next(base).Sub(ymdhms(t, 2017, time.March, 5, 3, 57, 12, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0, DailySFreq.Next(base).Sub(ymdhms(t, 2017, time.March, 6, 2, 57, 12, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0, MonthlyFreq.Next(base).Sub(ymdhms(t, 2017, time.April, 5, 2, 57, 12, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0, YearlyFreq.Next(base).Sub(ymdhms(t, 2018, time.March, 5, 2, 57, 12, loc)).Compare(ZeroDuration()))

	assert.Equal(t, 0, SecFreq.Prev(base).Sub(ymdhms(t, 2017, time.March, 5, 2, 57, 11, loc)).Compare(ZeroDuration()))
	assert.Equal(t, 0, YearlyFreq.Prev(base).Sub(ymdhms(t, 2016, time.March, 5, 2, 57, 12, loc)).Compare(ZeroDuration()))
}

func TestFreqApproxCycleMillis(t *testing.T) {
	assert.Equal(t, int64(2), NewFreq(2, Millisecond).ApproxCycleMillis())
	assert.Equal(t, int64(2*1000), NewFreq(2, SecondUnit).ApproxCycleMillis())
	assert.Equal(t, int64(2*60*1000), NewFreq(2, MinuteUnit).ApproxCycleMillis())
	assert.Equal(t, int64(2*60*60*1000), NewFreq(2, HourUnit).ApproxCycleMillis())
	assert.Equal(t, int64(2*24*60*60*1000), NewFreq(2, DayUnit).ApproxCycleMillis())
	assert.Equal(t, int64(2*7*24*60*60*1000), NewFreq(2, WeekUnit).ApproxCycleMillis())
	assert.Equal(t, int64(2*30*24*60*60*1000), NewFreq(2, MonthUnit).ApproxCycleMillis())
	assert.Equal(t, int64(2*365*24*60*60*1000), NewFreq(2, YearUnit).ApproxCycleMillis())
}
