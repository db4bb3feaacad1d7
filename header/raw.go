package header

// Raw is a read-only view of every raw occurrence of one field in a header.
// Typed headers parse from it.
type Raw interface {
	// Len returns the number of occurrences.
	Len() int

	// One returns the only occurrence. It reports false when there are no
	// occurrences or more than one.
	One() ([]byte, bool)

	// All returns every occurrence in header order.
	All() [][]byte
}

// RawValues is a Raw backed by a slice of byte slices.
type RawValues [][]byte

// Len returns the number of values.
func (r RawValues) Len() int { return len(r) }

// One returns the value if there is exactly one.
func (r RawValues) One() ([]byte, bool) {
	if len(r) != 1 {
		return nil, false
	}
	return r[0], true
}

// All returns every value.
func (r RawValues) All() [][]byte { return r }

// RawString builds a RawValues from strings. This is handy for tests and
// for parsing values that did not come from a Header.
func RawString(vs ...string) RawValues {
	r := make(RawValues, len(vs))
	for i, v := range vs {
		r[i] = []byte(v)
	}
	return r
}

// RawOf returns the bodies of every field with the given name as a Raw. The
// bodies are unfolded with surrounding whitespace removed. Encoded words are
// not decoded: structured fields may not contain them, so they are left for
// the typed header to reject.
func RawOf(h *Header, name string) RawValues {
	fs := h.GetAllFieldsNamed(name)
	r := make(RawValues, len(fs))
	for i, f := range fs {
		r[i] = []byte(f.Value())
	}
	return r
}
