package mhrono

// endpointKind distinguishes the three shapes an Endpoint can take: a
// value excluded from the span (Open), a value included in the span
// (Closed), or no value at all (Unbounded).
type endpointKind int

const (
	kindOpen endpointKind = iota
	kindClosed
	kindUnbounded
)

// Endpoint represents one bound of a span. For comparison purposes an open
// endpoint still behaves like a closed point shifted infinitesimally toward
// the span's interior — so that >= and <= comparisons against a plain
// value behave the way a reader expects of an interval bound.
type Endpoint[T Ordered[T]] struct {
	kind endpointKind
	p    T
	side Side
}

// OpenEndpoint builds an endpoint that excludes p.
func OpenEndpoint[T Ordered[T]](p T, side Side) Endpoint[T] {
	return Endpoint[T]{kind: kindOpen, p: p, side: side}
}

// ClosedEndpoint builds an endpoint that includes p.
func ClosedEndpoint[T Ordered[T]](p T, side Side) Endpoint[T] {
	return Endpoint[T]{kind: kindClosed, p: p, side: side}
}

// UnboundedEndpoint builds an endpoint with no limiting value.
func UnboundedEndpoint[T Ordered[T]](side Side) Endpoint[T] {
	return Endpoint[T]{kind: kindUnbounded, side: side}
}

// IsOpen reports whether e excludes its point.
func (e Endpoint[T]) IsOpen() bool { return e.kind == kindOpen }

// IsClosed reports whether e includes its point.
func (e Endpoint[T]) IsClosed() bool { return e.kind == kindClosed }

// IsUnbounded reports whether e has no limiting value.
func (e Endpoint[T]) IsUnbounded() bool { return e.kind == kindUnbounded }

// IsLeft reports whether e bounds the start of a span.
func (e Endpoint[T]) IsLeft() bool { return e.side == Left }

// IsRight reports whether e bounds the end of a span.
func (e Endpoint[T]) IsRight() bool { return e.side == Right }

// Side returns which side of a span e bounds.
func (e Endpoint[T]) Side() Side { return e.side }

// Value returns e's point and true, or the zero value and false if e is
// unbounded.
func (e Endpoint[T]) Value() (T, bool) {
	if e.kind == kindUnbounded {
		var zero T
		return zero, false
	}
	return e.p, true
}

// CompareValue compares e against a plain value, treating e as a closed
// point infinitesimally shifted toward the span interior when open.
func (e Endpoint[T]) CompareValue(other T) int {
	switch e.kind {
	case kindOpen:
		c := e.p.Compare(other)
		if c == 0 {
			if e.side == Left {
				return 1
			}
			return -1
		}
		return c
	case kindClosed:
		return e.p.Compare(other)
	default:
		if e.side == Left {
			return -1
		}
		return 1
	}
}

// Equal reports whether e and other denote the same closed point value
// (open endpoints never equal a plain value, mirroring the fact that an
// open bound excludes its point).
func (e Endpoint[T]) Equal(other T) bool {
	return e.kind == kindClosed && e.p.Compare(other) == 0
}

// Compare orders e against other. The full case table is exercised
// exhaustively in endpoint_test.go; see the Rust reference this was ported
// from for the derivation.
func (e Endpoint[T]) Compare(other Endpoint[T]) int {
	switch {
	case e.kind == kindOpen && other.kind == kindOpen:
		if c := e.p.Compare(other.p); c != 0 {
			return c
		}
		return sideTieBreak(e.side, other.side, false)
	case e.kind == kindOpen && other.kind == kindClosed:
		if c := e.p.Compare(other.p); c != 0 {
			return c
		}
		if e.side == Left {
			return 1
		}
		return -1
	case (e.kind == kindOpen || e.kind == kindClosed) && other.kind == kindUnbounded:
		if other.side == Left {
			return 1
		}
		return -1
	case e.kind == kindClosed && other.kind == kindOpen:
		if c := e.p.Compare(other.p); c != 0 {
			return c
		}
		if other.side == Left {
			return -1
		}
		return 1
	case e.kind == kindClosed && other.kind == kindClosed:
		return e.p.Compare(other.p)
	case e.kind == kindUnbounded && (other.kind == kindOpen || other.kind == kindClosed):
		if e.side == Left {
			return -1
		}
		return 1
	default: // both unbounded
		return sideTieBreak(e.side, other.side, true)
	}
}

// Densely convertible is the constraint satisfied by coordinate types that
// support both total ordering and the open<->closed ulp conversion.
type Densely[T any] interface {
	Ordered[T]
	EndpointConversion[T]
}

// EndpointToOpen returns the open-endpoint equivalent of e's point.
func EndpointToOpen[T Densely[T]](e Endpoint[T]) (T, bool) {
	switch e.kind {
	case kindOpen:
		return e.p, true
	case kindClosed:
		return e.p.ToOpen(e.side)
	default:
		var zero T
		return zero, false
	}
}

// EndpointToClosed returns the closed-endpoint equivalent of e's point.
func EndpointToClosed[T Densely[T]](e Endpoint[T]) (T, bool) {
	switch e.kind {
	case kindOpen:
		return e.p.ToClosed(e.side)
	case kindClosed:
		return e.p, true
	default:
		var zero T
		return zero, false
	}
}

// sideTieBreak resolves equal-position comparisons between two endpoints
// of the same openness. unbounded controls which of the two symmetric
// tie-break tables applies: Open-vs-Open flips (Left,Right)=Greater, while
// Unbounded-vs-Unbounded keeps (Left,Right)=Less. In both tables a
// same-side pair is always Equal.
func sideTieBreak(a, b Side, unbounded bool) int {
	if a == b {
		return 0
	}
	if unbounded {
		if a == Left {
			return -1
		}
		return 1
	}
	if a == Left {
		return 1
	}
	return -1
}
