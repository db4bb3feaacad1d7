package field

import "fmt"

// Field is a single header field. It holds the name and the unfolded, decoded
// body. A field read from input also holds its original bytes, which are what
// get written back out until the name or body is changed.
type Field struct {
	name string
	body string
	raw  *Raw
}

// New constructs a new field with no original value.
func New(name, body string) *Field {
	return &Field{name: name, body: body}
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// SetName changes the name of the field and drops the original bytes.
func (f *Field) SetName(name string) {
	f.raw = nil
	f.name = name
}

// Body returns the unfolded, decoded body of the field.
func (f *Field) Body() string {
	return f.body
}

// SetBody changes the body of the field and drops the original bytes.
func (f *Field) SetBody(body string) {
	f.raw = nil
	f.body = body
}

// Value returns the body the way structured fields want to see it: unfolded
// and trimmed, but with any encoded words left as they are. For a field
// without original bytes, this is the same as Body.
func (f *Field) Value() string {
	if f.raw != nil {
		return f.raw.Value()
	}
	return f.body
}

// Raw returns the original bytes of the field, or nil if there are none.
func (f *Field) Raw() *Raw {
	return f.raw
}

// SetRaw replaces the original bytes of the field without touching the name
// or body, so the output may no longer match them.
func (f *Field) SetRaw(raw []byte) {
	f.raw = NewRaw(raw)
}

// String returns the original bytes if present. Otherwise, the field is
// formatted from its name and body, with the body encoded as needed.
func (f *Field) String() string {
	if f.raw != nil {
		return f.raw.String()
	}
	return fmt.Sprintf("%s: %s", f.name, Encode(f.body))
}

// Bytes is String as a byte slice.
func (f *Field) Bytes() []byte {
	if f.raw != nil {
		return f.raw.Bytes()
	}
	return []byte(f.String())
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{name: f.name, body: f.body}
	if f.raw != nil {
		c.raw = NewRaw(append([]byte{}, f.raw.field...))
	}
	return c
}
