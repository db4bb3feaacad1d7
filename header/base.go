package header

import (
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-mimeversion/header/field"
)

// ErrIndexOutOfRange is returned when an attempt is made to access a header
// field index that is too large or too small.
var ErrIndexOutOfRange = errors.New("header field index is out of range")

// Base is the low-level storage of a message header. It keeps the fields in
// order and applies field folding during output.
type Base struct {
	lbr    Break
	vf     *field.FoldEncoding
	fields []*field.Field
}

// initBase initializes the Break and fields values lazily.
func (h *Base) initBase() {
	if h.lbr == Meh {
		h.lbr = LF
	}
	if h.fields == nil {
		h.fields = make([]*field.Field, 0, 10)
	}
}

// FoldEncoding returns the value folder used by this header during rendering.
func (h *Base) FoldEncoding() *field.FoldEncoding {
	if h.vf == nil {
		h.vf = field.DefaultFoldEncoding
	}
	return h.vf
}

// SetFoldEncoding changes the value folder used by this header during rendering.
func (h *Base) SetFoldEncoding(vf *field.FoldEncoding) {
	h.vf = vf
}

// Break returns the line break used to separate header fields and terminate the
// header.
func (h *Base) Break() Break {
	if h.lbr == Meh {
		h.lbr = LF
	}
	return h.lbr
}

// SetBreak changes the line break to use with this header.
func (h *Base) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Len returns the number of header fields in the header.
func (h *Base) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if n is out of range.
func (h *Base) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetFieldNamed returns the nth (0-indexed) field with the given name or nil if
// no such header field is set. Names are matched without regard to case.
func (h *Base) GetFieldNamed(name string, n int) *field.Field {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			if n == 0 {
				return f
			}
			n--
		}
	}
	return nil
}

// GetAllFieldsNamed returns all the fields with the given name.
func (h *Base) GetAllFieldsNamed(name string) []*field.Field {
	fs := make([]*field.Field, 0, 1)
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// GetIndexesNamed returns the indexes of fields with the given name.
func (h *Base) GetIndexesNamed(name string) []int {
	is := make([]int, 0, 1)
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// ListFields returns all the fields in the header.
func (h *Base) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// WriteTo writes every field, folded and followed by the line break, and then
// the blank line that terminates the header. An empty header writes nothing.
func (h *Base) WriteTo(w io.Writer) (int64, error) {
	if len(h.fields) == 0 {
		return 0, nil
	}

	lb := field.Break(h.Break().Bytes())
	total := int64(0)
	for _, f := range h.fields {
		n, err := h.FoldEncoding().Fold(w, f.Bytes(), lb)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err := w.Write(lb)
	total += int64(n)
	return total, err
}

// String returns the header as a string.
func (h *Base) String() string {
	var buf strings.Builder
	_, _ = h.WriteTo(&buf)
	return buf.String()
}

// Clone returns a deep copy of the header.
func (h *Base) Clone() *Base {
	fs := make([]*field.Field, len(h.fields))
	for i, f := range h.fields {
		fs[i] = f.Clone()
	}

	return &Base{
		lbr:    h.lbr,
		vf:     h.vf,
		fields: fs,
	}
}

// InsertBeforeField will insert a new field with the given name and body into
// the header at the given index. The index is clamped to the valid range, so
// passing Len() appends.
func (h *Base) InsertBeforeField(
	n int,
	name,
	body string,
) {
	h.initBase()

	if n < 0 {
		n = 0
	}
	if n > len(h.fields) {
		n = len(h.fields)
	}

	f := field.New(name, body)

	h.fields = append(h.fields, nil)
	copy(h.fields[n+1:], h.fields[n:])
	h.fields[n] = f
}

// ClearFields removes all fields from the header.
func (h *Base) ClearFields() {
	h.initBase()
	h.fields = h.fields[:0]
}

// DeleteField removes the nth field from the header. Fails with
// ErrIndexOutOfRange if the given index is out of range.
func (h *Base) DeleteField(n int) error {
	h.initBase()

	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields[len(h.fields)-1] = nil
	h.fields = h.fields[:len(h.fields)-1]

	return nil
}
