package mhrono

import "fmt"

// SpanAny is the most general span shape: each end can independently be
// open, closed, or unbounded. SpanExc and SpanInc are the common
// half-open/closed-closed specializations most callers reach for; SpanAny
// is the algebra's lingua franca — Intersect and Cover both return it,
// since neither operation can otherwise promise a fixed boundary shape.
type SpanAny[T Ordered[T]] struct {
	St Endpoint[T]
	En Endpoint[T]
}

// NewSpanAny builds a span directly from its two endpoints.
func NewSpanAny[T Ordered[T]](st, en Endpoint[T]) SpanAny[T] {
	return SpanAny[T]{St: st, En: en}
}

// SpanExcExc builds an open-open span (st, en).
func SpanExcExc[T Ordered[T]](st, en T) SpanAny[T] {
	return SpanAny[T]{St: OpenEndpoint(st, Left), En: OpenEndpoint(en, Right)}
}

// SpanExcInc builds an open-closed span (st, en].
func SpanExcInc[T Ordered[T]](st, en T) SpanAny[T] {
	return SpanAny[T]{St: OpenEndpoint(st, Left), En: ClosedEndpoint(en, Right)}
}

// SpanIncExc builds a closed-open span [st, en) — the most common shape,
// matching SpanExc's own half-open convention.
func SpanIncExc[T Ordered[T]](st, en T) SpanAny[T] {
	return SpanAny[T]{St: ClosedEndpoint(st, Left), En: OpenEndpoint(en, Right)}
}

// SpanIncInc builds a closed-closed span [st, en].
func SpanIncInc[T Ordered[T]](st, en T) SpanAny[T] {
	return SpanAny[T]{St: ClosedEndpoint(st, Left), En: ClosedEndpoint(en, Right)}
}

// SpanUnbExc builds (-inf, en).
func SpanUnbExc[T Ordered[T]](en T) SpanAny[T] {
	return SpanAny[T]{St: UnboundedEndpoint[T](Left), En: OpenEndpoint(en, Right)}
}

// SpanUnbInc builds (-inf, en].
func SpanUnbInc[T Ordered[T]](en T) SpanAny[T] {
	return SpanAny[T]{St: UnboundedEndpoint[T](Left), En: ClosedEndpoint(en, Right)}
}

// SpanExcUnb builds (st, +inf).
func SpanExcUnb[T Ordered[T]](st T) SpanAny[T] {
	return SpanAny[T]{St: OpenEndpoint(st, Left), En: UnboundedEndpoint[T](Right)}
}

// SpanIncUnb builds [st, +inf).
func SpanIncUnb[T Ordered[T]](st T) SpanAny[T] {
	return SpanAny[T]{St: ClosedEndpoint(st, Left), En: UnboundedEndpoint[T](Right)}
}

// SpanUnb builds (-inf, +inf).
func SpanUnb[T Ordered[T]]() SpanAny[T] {
	return SpanAny[T]{St: UnboundedEndpoint[T](Left), En: UnboundedEndpoint[T](Right)}
}

// SpanPoint builds the degenerate closed-closed span [p, p].
func SpanPoint[T Ordered[T]](p T) SpanAny[T] {
	return SpanAny[T]{St: ClosedEndpoint(p, Left), En: ClosedEndpoint(p, Right)}
}

// SpanEmpty builds the canonical empty span — exc(zero, zero).
func SpanEmpty[T Ordered[T]]() SpanAny[T] {
	var zero T
	return SpanIncExc(zero, zero)
}

// Contains reports whether t falls within the span.
func (s SpanAny[T]) Contains(t T) bool {
	return s.St.CompareValue(t) <= 0 && s.En.CompareValue(t) >= 0
}

// ContainsSpan reports whether s fully contains other.
func (s SpanAny[T]) ContainsSpan(other SpanAny[T]) bool {
	return s.St.Compare(other.St) <= 0 && s.En.Compare(other.En) >= 0
}

// IsEmpty reports whether the span denotes no points at all (st sorts
// strictly after en).
func (s SpanAny[T]) IsEmpty() bool {
	return s.St.Compare(s.En) > 0
}

// IsUnbounded reports whether the span is non-empty and unbounded on both
// sides.
func (s SpanAny[T]) IsUnbounded() bool {
	if s.IsEmpty() {
		return false
	}
	return s.St.IsUnbounded() && s.En.IsUnbounded()
}

// String renders the span using the usual interval bracket notation,
// e.g. "[1,3)".
func (s SpanAny[T]) String() string {
	var lhs string
	if v, ok := s.St.Value(); ok {
		if s.St.IsClosed() {
			lhs = fmt.Sprintf("[%v", v)
		} else {
			lhs = fmt.Sprintf("(%v", v)
		}
	} else {
		lhs = "(-inf"
	}
	var rhs string
	if v, ok := s.En.Value(); ok {
		if s.En.IsClosed() {
			rhs = fmt.Sprintf("%v]", v)
		} else {
			rhs = fmt.Sprintf("%v)", v)
		}
	} else {
		rhs = "+inf)"
	}
	return lhs + "," + rhs
}

func pmin[T Ordered[T]](a, b Endpoint[T]) Endpoint[T] {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func pmax[T Ordered[T]](a, b Endpoint[T]) Endpoint[T] {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// CoverSpans returns the smallest span containing both a and b — an empty
// operand is ignored rather than pulling the result toward its (otherwise
// meaningless) zero-valued endpoints.
func CoverSpans[T Ordered[T]](a, b SpanAny[T]) SpanAny[T] {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return SpanAny[T]{St: pmin(a.St, b.St), En: pmax(a.En, b.En)}
}

// Intersect returns the overlap of s and other, or false if they do not
// overlap at all.
func (s SpanAny[T]) Intersect(other SpanAny[T]) (SpanAny[T], bool) {
	span := SpanAny[T]{St: pmax(s.St, other.St), En: pmin(s.En, other.En)}
	if span.IsEmpty() {
		var zero SpanAny[T]
		return zero, false
	}
	return span, true
}

// ToInc converts the span to closed-closed form, or false if either
// endpoint cannot be converted (e.g. unbounded).
func ToInc[T Densely[T]](s SpanAny[T]) (SpanInc[T], bool) {
	st, ok1 := EndpointToClosed(s.St)
	en, ok2 := EndpointToClosed(s.En)
	if !ok1 || !ok2 {
		var zero SpanInc[T]
		return zero, false
	}
	return NewSpanInc(st, en), true
}

// ToExc converts the span to closed-open form, or false if either endpoint
// cannot be converted.
func ToExc[T Densely[T]](s SpanAny[T]) (SpanExc[T], bool) {
	st, ok1 := EndpointToClosed(s.St)
	en, ok2 := EndpointToOpen(s.En)
	if !ok1 || !ok2 {
		var zero SpanExc[T]
		return zero, false
	}
	return NewSpanExc(st, en), true
}

// Subtractable is implemented by coordinate types that support the
// difference used to compute a span's Size.
type Subtractable[T any] interface {
	Sub(other T) T
}

// Size returns en.ToOpen() - st.ToClosed(), or false if the span is
// unbounded on either side.
func Size[T interface {
	Densely[T]
	Subtractable[T]
}](s SpanAny[T]) (T, bool) {
	en, ok1 := EndpointToOpen(s.En)
	st, ok2 := EndpointToClosed(s.St)
	if !ok1 || !ok2 {
		var zero T
		return zero, false
	}
	return en.Sub(st), true
}

// Sub implements Subtractable[Int].
func (a Int) Sub(b Int) Int { return a - b }
