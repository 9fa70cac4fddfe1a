package mhrono

import "fmt"

// SpanExc is a half-open span [st, en) over a densely-ordered coordinate.
// It is the common case — calendars and series both key on it — kept as
// its own type rather than always going through SpanAny so the common
// path avoids Endpoint's extra tagging.
type SpanExc[T Ordered[T]] struct {
	St T
	En T
}

// NewSpanExc builds [st, en).
func NewSpanExc[T Ordered[T]](st, en T) SpanExc[T] { return SpanExc[T]{St: st, En: en} }

// EmptySpanExc returns the canonical empty half-open span over T's zero
// value.
func EmptySpanExc[T Ordered[T]]() SpanExc[T] {
	var zero T
	return SpanExc[T]{St: zero, En: zero}
}

// IsEmpty reports whether the span denotes no points (st >= en).
func (s SpanExc[T]) IsEmpty() bool { return s.St.Compare(s.En) >= 0 }

// Contains reports whether t falls within [st, en).
func (s SpanExc[T]) Contains(t T) bool {
	return s.St.Compare(t) <= 0 && s.En.Compare(t) > 0
}

// ContainsSpan reports whether s fully contains other.
func (s SpanExc[T]) ContainsSpan(other SpanExc[T]) bool {
	return s.St.Compare(other.St) <= 0 && s.En.Compare(other.En) >= 0
}

// ToAny lifts the span into SpanAny's closed-open form.
func (s SpanExc[T]) ToAny() SpanAny[T] { return SpanIncExc(s.St, s.En) }

// String renders as "[st,en)".
func (s SpanExc[T]) String() string { return fmt.Sprintf("[%v,%v)", s.St, s.En) }

// CoverSpanExc returns the smallest half-open span containing both a and
// b, ignoring an empty operand.
func CoverSpanExc[T Ordered[T]](a, b SpanExc[T]) SpanExc[T] {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	st := a.St
	if b.St.Compare(st) < 0 {
		st = b.St
	}
	en := a.En
	if b.En.Compare(en) > 0 {
		en = b.En
	}
	return SpanExc[T]{St: st, En: en}
}

// Intersect returns the overlap of s and other, or false if disjoint.
func (s SpanExc[T]) Intersect(other SpanExc[T]) (SpanExc[T], bool) {
	st := s.St
	if other.St.Compare(st) > 0 {
		st = other.St
	}
	en := s.En
	if other.En.Compare(en) < 0 {
		en = other.En
	}
	span := SpanExc[T]{St: st, En: en}
	if span.IsEmpty() {
		var zero SpanExc[T]
		return zero, false
	}
	return span, true
}

// SpanExcInclusiveBounds builds [st, en] as a half-open span, converting en
// to the open point one ulp beyond it. ok is false if that conversion
// overflows.
func SpanExcInclusiveBounds[T Densely[T]](st, en T) (SpanExc[T], bool) {
	openEn, ok := en.ToOpen(Right)
	if !ok {
		var zero SpanExc[T]
		return zero, false
	}
	return SpanExc[T]{St: st, En: openEn}, true
}

// SpanExcPoint builds the degenerate single-point half-open span [p, p+1).
func SpanExcPoint[T Densely[T]](p T) (SpanExc[T], bool) {
	return SpanExcInclusiveBounds(p, p)
}

// SpanExcToInc converts s to closed-closed form, or false if en has no
// predecessor (i.e. conversion overflows). A package-level function
// rather than a method: SpanExc[T] itself only requires Ordered[T], but
// this conversion needs the stricter Densely[T], which a method can't
// demand beyond what its receiver's type parameter already guarantees.
func SpanExcToInc[T Densely[T]](s SpanExc[T]) (SpanInc[T], bool) {
	return SpanIncFromExc(s.St, s.En)
}

// SizeExc returns en - st for coordinate types that support subtraction.
func SizeExc[T interface {
	Ordered[T]
	Subtractable[T]
}](s SpanExc[T]) T {
	return s.En.Sub(s.St)
}
