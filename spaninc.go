package mhrono

import "fmt"

// SpanInc is a closed-closed span [st, en] over a densely-ordered
// coordinate.
type SpanInc[T Ordered[T]] struct {
	St T
	En T
}

// NewSpanInc builds [st, en].
func NewSpanInc[T Ordered[T]](st, en T) SpanInc[T] { return SpanInc[T]{St: st, En: en} }

// SpanIncPoint builds the degenerate span [p, p].
func SpanIncPoint[T Ordered[T]](p T) SpanInc[T] { return SpanInc[T]{St: p, En: p} }

// IsEmpty reports whether the span denotes no points (st > en).
func (s SpanInc[T]) IsEmpty() bool { return s.St.Compare(s.En) > 0 }

// Contains reports whether t falls within [st, en].
func (s SpanInc[T]) Contains(t T) bool {
	return s.St.Compare(t) <= 0 && s.En.Compare(t) >= 0
}

// ContainsSpan reports whether s fully contains other.
func (s SpanInc[T]) ContainsSpan(other SpanInc[T]) bool {
	return s.St.Compare(other.St) <= 0 && s.En.Compare(other.En) >= 0
}

// ToAny lifts the span into SpanAny's closed-closed form.
func (s SpanInc[T]) ToAny() SpanAny[T] { return SpanIncInc(s.St, s.En) }

// String renders as "[st,en]".
func (s SpanInc[T]) String() string { return fmt.Sprintf("[%v,%v]", s.St, s.En) }

// CoverSpanInc returns the smallest closed span containing both a and b,
// ignoring an empty operand.
func CoverSpanInc[T Ordered[T]](a, b SpanInc[T]) SpanInc[T] {
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
	return SpanInc[T]{St: st, En: en}
}

// Intersect returns the overlap of s and other, or false if disjoint.
func (s SpanInc[T]) Intersect(other SpanInc[T]) (SpanInc[T], bool) {
	st := s.St
	if other.St.Compare(st) > 0 {
		st = other.St
	}
	en := s.En
	if other.En.Compare(en) < 0 {
		en = other.En
	}
	span := SpanInc[T]{St: st, En: en}
	if span.IsEmpty() {
		var zero SpanInc[T]
		return zero, false
	}
	return span, true
}

// SpanIncFromExc converts the half-open span [st, enExc) to closed form by
// shifting enExc one ulp toward the interior. ok is false on overflow.
func SpanIncFromExc[T Densely[T]](st, enExc T) (SpanInc[T], bool) {
	en, ok := enExc.ToClosed(Right)
	if !ok {
		var zero SpanInc[T]
		return zero, false
	}
	return SpanInc[T]{St: st, En: en}, true
}

// SpanIncToExc converts s to half-open form, or false if en has no
// successor. A package-level function rather than a method, for the same
// reason as SpanExcToInc: SpanInc[T] only requires Ordered[T], but this
// conversion needs Densely[T].
func SpanIncToExc[T Densely[T]](s SpanInc[T]) (SpanExc[T], bool) {
	return SpanExcInclusiveBounds(s.St, s.En)
}

// SizeInc returns en.ToOpen() - st for coordinate types that support
// subtraction, or false on overflow.
func SizeInc[T interface {
	Densely[T]
	Subtractable[T]
}](s SpanInc[T]) (T, bool) {
	en, ok := s.En.ToOpen(Right)
	if !ok {
		var zero T
		return zero, false
	}
	return en.Sub(s.St), true
}
