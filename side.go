package mhrono

// Side identifies which end of a span an Endpoint bounds.
type Side int

const (
	// Left marks the start (lower) end of a span.
	Left Side = iota
	// Right marks the end (upper) end of a span.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}
