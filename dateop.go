package mhrono

import "time"

type dateOpKind int

const (
	dopAdvWeekday dateOpKind = iota
	dopAdvDay
	dopAdvMonth
	dopFindWeekday
	dopFindDay
	dopFindMonth
	dopAddYears
	dopAddMonths
	dopAddDays
	dopSetYear
	dopSetMonth
	dopSetDay
	dopNop
)

// DateOp is a reified transformation of a Date: a (kind, n) pair that can
// be stored, compared, and replayed, rather than a plain function value —
// the shape a Calendar's opening-session rules are built from.
type DateOp struct {
	kind    dateOpKind
	weekday Weekday
	n       int64
}

// AdvanceWeekday moves to an occurrence of w: for n > 0 the n-th
// occurrence strictly after the date, for n < 0 the |n|-th occurrence
// strictly before it, and for n == 0 the first occurrence on or after it.
func AdvanceWeekday(w Weekday, n int64) DateOp { return DateOp{kind: dopAdvWeekday, weekday: w, n: n} }

// AdvanceDay advances to the next day-of-month n, always moving forward
// at least one day even if n is today's day-of-month.
func AdvanceDay(n int64) DateOp { return DateOp{kind: dopAdvDay, n: n} }

// AdvanceMonth advances to the next month n, always moving forward at
// least one month even if n is the current month.
func AdvanceMonth(n int64) DateOp { return DateOp{kind: dopAdvMonth, n: n} }

// FindWeekday is like AdvanceWeekday but stays put when already w.
func FindWeekday(w Weekday, n int64) DateOp { return DateOp{kind: dopFindWeekday, weekday: w, n: n} }

// FindDay is like AdvanceDay but stays put when already day-of-month n.
func FindDay(n int64) DateOp { return DateOp{kind: dopFindDay, n: n} }

// FindMonth is like AdvanceMonth but stays put when already month n.
func FindMonth(n int64) DateOp { return DateOp{kind: dopFindMonth, n: n} }

// AddYearsOp shifts by n years.
func AddYearsOp(n int64) DateOp { return DateOp{kind: dopAddYears, n: n} }

// YearlyOp is AddYearsOp(1).
func YearlyOp() DateOp { return AddYearsOp(1) }

// AddMonthsOp shifts by n months.
func AddMonthsOp(n int64) DateOp { return DateOp{kind: dopAddMonths, n: n} }

// MonthlyOp is AddMonthsOp(1).
func MonthlyOp() DateOp { return AddMonthsOp(1) }

// AddDaysOp shifts by n days.
func AddDaysOp(n int64) DateOp { return DateOp{kind: dopAddDays, n: n} }

// DailyOp is AddDaysOp(1).
func DailyOp() DateOp { return AddDaysOp(1) }

// SetYearOp sets the year.
func SetYearOp(n int64) DateOp { return DateOp{kind: dopSetYear, n: n} }

// SetMonthOp sets the month (1-12).
func SetMonthOp(n int64) DateOp { return DateOp{kind: dopSetMonth, n: n} }

// SetDayOp sets the day of month, clamped to the month's length.
func SetDayOp(n int64) DateOp { return DateOp{kind: dopSetDay, n: n} }

// NopOp leaves the date unchanged.
func NopOp() DateOp { return DateOp{kind: dopNop} }

// Apply replays the transformation against d.
func (op DateOp) Apply(d Date) Date {
	switch op.kind {
	case dopAddYears:
		return d.AddYears(int(op.n))
	case dopAddMonths:
		return d.AddMonths(int(op.n))
	case dopAddDays:
		return d.AddDays(int(op.n))
	case dopAdvDay:
		nd := d.WithDay(int(op.n))
		if nd.Compare(d) <= 0 {
			return nd.AddMonths(1)
		}
		return nd
	case dopAdvMonth:
		nd := d.WithMonth(time.Month(op.n))
		if nd.Compare(d) <= 0 {
			return nd.AddYears(1)
		}
		return nd
	case dopFindDay:
		nd := d.WithDay(int(op.n))
		if nd.Compare(d) < 0 {
			return nd.AddMonths(1)
		}
		return nd
	case dopFindMonth:
		nd := d.WithMonth(time.Month(op.n))
		if nd.Compare(d) < 0 {
			return nd.AddYears(1)
		}
		return nd
	case dopAdvWeekday:
		offset := floorMod(int(op.weekday)-int(d.Weekday()), 7)
		n := op.n
		if offset != 0 && n > 0 {
			n--
		}
		return d.AddDays(offset + 7*int(n))
	case dopFindWeekday:
		offset := floorMod(int(op.weekday)-int(d.Weekday()), 7)
		n := op.n
		if n < 0 && offset != 0 {
			n--
		}
		n -= signInt64(n)
		return d.AddDays(offset + 7*int(n))
	case dopSetYear:
		return d.WithYear(int(op.n))
	case dopSetMonth:
		return d.WithMonth(time.Month(op.n))
	case dopSetDay:
		return d.WithDay(int(op.n))
	default:
		return d
	}
}
