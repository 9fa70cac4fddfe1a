package mhrono

type timeOpKind int

const (
	topAddHours timeOpKind = iota
	topAddMins
	topAddSecs
	topAddMillis
	topAddMicros
	topAddNanos
	topSetHour
	topSetMin
	topSetSec
	topSetMillis
	topSetMicros
	topSetNanos
	topDateOp
)

// TimeOp is a reified transformation of a Time: either a pure time-axis
// shift/set, or a wrapped DateOp applied to the date component and
// reattached via Time.WithDate (so DST gap/fold rules apply uniformly).
type TimeOp struct {
	kind   timeOpKind
	n      int64
	dateOp DateOp
}

// TimeOpFromDateOp lifts a DateOp into a TimeOp that applies it to the
// date component, keeping the wall-clock time of day fixed.
func TimeOpFromDateOp(op DateOp) TimeOp { return TimeOp{kind: topDateOp, dateOp: op} }

func AddHoursOp(n int64) TimeOp  { return TimeOp{kind: topAddHours, n: n} }
func HourlyOp() TimeOp           { return AddHoursOp(1) }
func AddMinsOp(n int64) TimeOp   { return TimeOp{kind: topAddMins, n: n} }
func MinutelyOp() TimeOp         { return AddMinsOp(1) }
func AddSecsOp(n int64) TimeOp   { return TimeOp{kind: topAddSecs, n: n} }
func SecondlyOp() TimeOp         { return AddSecsOp(1) }
func AddMillisOp(n int64) TimeOp { return TimeOp{kind: topAddMillis, n: n} }
func AddMicrosOp(n int64) TimeOp { return TimeOp{kind: topAddMicros, n: n} }
func AddNanosOp(n int64) TimeOp  { return TimeOp{kind: topAddNanos, n: n} }
func SetHourOp(n int64) TimeOp   { return TimeOp{kind: topSetHour, n: n} }
func SetMinOp(n int64) TimeOp    { return TimeOp{kind: topSetMin, n: n} }
func SetSecOp(n int64) TimeOp    { return TimeOp{kind: topSetSec, n: n} }
func SetMillisOp(n int64) TimeOp { return TimeOp{kind: topSetMillis, n: n} }
func SetMicrosOp(n int64) TimeOp { return TimeOp{kind: topSetMicros, n: n} }
func SetNanosOp(n int64) TimeOp  { return TimeOp{kind: topSetNanos, n: n} }

// Date-kinded convenience constructors, mirroring the DateOp ones but
// producing a TimeOp.
func AdvanceWeekdayOp(w Weekday, n int64) TimeOp { return TimeOpFromDateOp(AdvanceWeekday(w, n)) }
func FindWeekdayOp(w Weekday, n int64) TimeOp    { return TimeOpFromDateOp(FindWeekday(w, n)) }
func AddYearsTimeOp(n int64) TimeOp              { return TimeOpFromDateOp(AddYearsOp(n)) }
func YearlyTimeOp() TimeOp                       { return AddYearsTimeOp(1) }
func AddMonthsTimeOp(n int64) TimeOp             { return TimeOpFromDateOp(AddMonthsOp(n)) }
func MonthlyTimeOp() TimeOp                      { return AddMonthsTimeOp(1) }
func AddDaysTimeOp(n int64) TimeOp               { return TimeOpFromDateOp(AddDaysOp(n)) }
func DailyTimeOp() TimeOp                        { return AddDaysTimeOp(1) }

// Apply replays the transformation against t.
func (op TimeOp) Apply(t Time) Time {
	switch op.kind {
	case topAddHours:
		return t.AddHours(op.n)
	case topAddMins:
		return t.AddMins(op.n)
	case topAddSecs:
		return t.AddSecs(op.n)
	case topAddMillis:
		return t.AddMillis(op.n)
	case topAddMicros:
		return t.AddMicros(op.n)
	case topAddNanos:
		return t.AddNanos(op.n)
	case topSetHour:
		return t.WithHour(int(op.n))
	case topSetMin:
		return t.WithMin(int(op.n))
	case topSetSec:
		return t.WithSec(int(op.n))
	case topSetMillis:
		return t.WithMillis(int(op.n))
	case topSetMicros:
		return t.WithMicros(int(op.n))
	case topSetNanos:
		return t.WithNanos(int(op.n))
	default:
		return t.WithDate(op.dateOp.Apply(t.Date()))
	}
}
