package mhrono

// SeriesInner is the copy-on-write backing store shared by every Series
// variant: a window [st, en) over a shared slice. Slicing (Subseq) never
// copies; mutating (Push, Pop) clones the backing array first if the
// current view isn't the tail of the full data, so independent clones
// produced by Subseq never see each other's writes.
type SeriesInner[V any] struct {
	data *[]V
	st   int
	en   int
}

// EmptySeriesInner returns a zero-length backing store.
func EmptySeriesInner[V any]() SeriesInner[V] {
	data := make([]V, 0)
	return SeriesInner[V]{data: &data, st: 0, en: 0}
}

// NewSeriesInner wraps data as the full (and only) view over it.
func NewSeriesInner[V any](data []V) SeriesInner[V] {
	return SeriesInner[V]{data: &data, st: 0, en: len(data)}
}

// Len reports the number of elements in the current view.
func (s SeriesInner[V]) Len() int { return s.en - s.st }

// IsEmpty reports whether the current view has no elements.
func (s SeriesInner[V]) IsEmpty() bool { return s.en == s.st }

// Slice returns the current view as a read-only slice. The returned slice
// must not be mutated directly; go through Push/Pop/DataMut instead.
func (s SeriesInner[V]) Slice() []V { return (*s.data)[s.st:s.en] }

// Get returns the element at the given index within the view, if present.
func (s SeriesInner[V]) Get(i int) (V, bool) {
	if i < 0 || i >= s.Len() {
		var zero V
		return zero, false
	}
	return (*s.data)[s.st+i], true
}

// dataMut returns a mutable slice of the current view, cloning the backing
// array first if this view isn't the full data (so sibling views produced
// by Subseq are unaffected).
func (s *SeriesInner[V]) dataMut() []V {
	if s.st != 0 || s.en != len(*s.data) {
		cloned := make([]V, s.Len())
		copy(cloned, (*s.data)[s.st:s.en])
		s.data = &cloned
		s.st = 0
		s.en = len(cloned)
	}
	return *s.data
}

// Push appends elt to the view, cloning the backing array first if needed.
func (s *SeriesInner[V]) Push(elt V) {
	if s.en == len(*s.data) && s.st == 0 {
		*s.data = append(*s.data, elt)
		s.en = len(*s.data)
		return
	}
	d := s.dataMut()
	d = append(d, elt)
	s.data = &d
	s.en = len(d)
}

// Pop removes and returns the last element of the view, if any.
func (s *SeriesInner[V]) Pop() (V, bool) {
	if s.IsEmpty() {
		var zero V
		return zero, false
	}
	if s.en == len(*s.data) {
		last := (*s.data)[s.en-1]
		*s.data = (*s.data)[:s.en-1]
		s.en--
		return last, true
	}
	d := s.dataMut()
	last := d[s.en-1]
	s.en--
	return last, true
}

// Sort reorders the current view in place via less, cloning the backing
// array first if the view isn't the full data.
func (s *SeriesInner[V]) Sort(less func(a, b V) bool) {
	d := s.dataMut()
	view := d[s.st:s.en]
	insertionSortStable(view, less)
}

// insertionSortStable is a stable O(n^2) sort, adequate for the modest
// series sizes this library targets and simple enough to avoid pulling in
// sort.Slice's reflection-based comparator indirection for a hot path.
func insertionSortStable[V any](v []V, less func(a, b V) bool) {
	for i := 1; i < len(v); i++ {
		j := i
		for j > 0 && less(v[j], v[j-1]) {
			v[j], v[j-1] = v[j-1], v[j]
			j--
		}
	}
}

// Subseq returns the view over [st, en) of the current view's index space.
// It panics on an invalid range, matching the backing store's treatment of
// programmer error as a bug rather than a recoverable condition.
func (s SeriesInner[V]) Subseq(st, en int) SeriesInner[V] {
	if st > en || en > s.Len() {
		panic("mhrono: SeriesInner.Subseq: range out of bounds")
	}
	return SeriesInner[V]{data: s.data, st: s.st + st, en: s.st + en}
}
