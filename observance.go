package mhrono

import "time"

// Observance adjusts a holiday anchor date, returning ok=false to filter
// the candidate out entirely (e.g. a rule that only fires on leap years).
// Go's closures-as-values mean this is a plain function type rather than
// the tagged-variant workaround a language without first-class functions
// would need.
type Observance func(Date) (Date, bool)

// SundayToMonday observes a Sunday holiday on the following Monday and
// otherwise leaves the date unchanged.
func SundayToMonday(d Date) (Date, bool) {
	if d.Weekday() == Sunday {
		return d.AddDays(1), true
	}
	return d, true
}

// NearestWeekday observes a Saturday holiday on the preceding Friday and a
// Sunday holiday on the following Monday.
func NearestWeekday(d Date) (Date, bool) {
	switch d.Weekday() {
	case Saturday:
		return d.AddDays(-1), true
	case Sunday:
		return d.AddDays(1), true
	default:
		return d, true
	}
}

// IsMondayToThursday keeps the candidate only when it falls Monday through
// Thursday.
func IsMondayToThursday(d Date) (Date, bool) {
	w := d.Weekday()
	return d, w >= Monday && w <= Thursday
}

// NextTuesdayEveryFourYears keeps the candidate only in years divisible by
// four, moving it to the first Tuesday at or after the anchor.
func NextTuesdayEveryFourYears(d Date) (Date, bool) {
	if d.Year()%4 != 0 {
		return d, false
	}
	return FindWeekday(Tuesday, 1).Apply(d), true
}

// Easter computes the date of Easter Sunday in d's year via the
// anonymous Gregorian algorithm (a.k.a. Butcher's algorithm), valid for
// years 1583 through 4099. d's month/day are ignored; only its year and
// zone matter.
func Easter(d Date) (Date, bool) {
	y := d.Year()
	if y < 1583 || y > 4099 {
		return Date{}, false
	}
	g := y % 19
	c := y / 100
	h := (c - c/4 - (8*c+13)/25 + 19*g + 15) % 30
	i := h - (h/28)*(1-(h/28)*(29/(h+1))*((21-g)/11))
	j := (y + y/4 + i + 2 - c + c/4) % 7
	p := i - j
	day := 1 + (p+27+(p+6)/40)%31
	month := 3 + (p+26)/30
	return NewDate(y, time.Month(month), day, d.Location()), true
}
