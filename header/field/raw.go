package field

import "bytes"

// Raw is a header field exactly as it was read, folds included. It is never
// modified after it is made.
type Raw struct {
	field []byte
	colon int // index of the first ':', or len(field) when there is none
}

// NewRaw wraps b. Without a colon, all of b is taken to be the name.
func NewRaw(b []byte) *Raw {
	colon := bytes.IndexByte(b, ':')
	if colon < 0 {
		colon = len(b)
	}
	return &Raw{field: b, colon: colon}
}

// String returns the raw field.
func (r *Raw) String() string { return string(r.field) }

// Bytes returns the raw field.
func (r *Raw) Bytes() []byte { return r.field }

// Name returns everything before the colon, which may still be folded.
func (r *Raw) Name() string {
	return string(r.field[:r.colon])
}

// Body returns everything after the colon, which may still be folded.
func (r *Raw) Body() string {
	return string(r.body())
}

// Value returns the body unfolded with the surrounding whitespace removed.
// Encoded words are not decoded.
func (r *Raw) Value() string {
	return string(bytes.TrimSpace(Unfold(r.body())))
}

func (r *Raw) body() []byte {
	if r.colon == len(r.field) {
		return nil
	}
	return r.field[r.colon+1:]
}
