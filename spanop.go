package mhrono

// SpanOp is a reified pair of time transformations describing a recurring
// session relative to a date's midnight: applying it to midnight on a
// given date yields a half-open [start, end) span, the shape a Calendar's
// opens list is built from.
type SpanOp struct {
	St TimeOp
	En TimeOp
}

// NewSpanOp pairs a start and end transformation.
func NewSpanOp(st, en TimeOp) SpanOp { return SpanOp{St: st, En: en} }

// Apply replays both transformations against t and returns the resulting
// half-open span.
func (op SpanOp) Apply(t Time) SpanExc[Time] {
	return NewSpanExc(op.St.Apply(t), op.En.Apply(t))
}
