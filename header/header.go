package header

import (
	"errors"
	"strings"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrMalformed is the kind shared by every error a typed header returns
	// when its raw value cannot be parsed. Typed headers may wrap it with a
	// more specific cause; check for it with errors.Is.
	ErrMalformed = errors.New("malformed header")
)

// Field names used by this module.
const (
	MIMEVersion = "MIME-Version"
	Subject     = "Subject"
)

// Header wraps a Base, which does the actual storage and low-level field
// manipulation. It adds string accessors and a cache of the values parsed by
// typed header accessors.
//
// Methods of Header keep the cache consistent. Modifying a *field.Field
// returned by GetField or ListFields directly bypasses it.
type Header struct {
	// Base provides the low-level storage of header fields.
	Base

	// valueCache holds the typed value for a field, keyed by lowercase name.
	//
	// REMEMBER: Only immutable values belong here. A value that can be
	// changed from outside would drift from the field it was parsed from.
	valueCache map[string]any
}

// Clone returns a deep copy of the header object.
func (h *Header) Clone() *Header {
	// cached values are immutable, so they may be copied as-is
	vc := make(map[string]any, len(h.valueCache))
	for k, v := range h.valueCache {
		vc[k] = v
	}

	return &Header{
		Base:       *h.Base.Clone(),
		valueCache: vc,
	}
}

// getValue retrieves the cached value. The second value reports whether a
// value was cached.
func (h *Header) getValue(name string) (any, bool) {
	v, found := h.valueCache[strings.ToLower(name)]
	return v, found
}

// setValue replaces the cached value for the given name.
func (h *Header) setValue(name string, value any) {
	if h.valueCache == nil {
		h.valueCache = make(map[string]any, h.Len())
	}
	h.valueCache[strings.ToLower(name)] = value
}

// clearValue forgets any cached value for the given name.
func (h *Header) clearValue(name string) {
	delete(h.valueCache, strings.ToLower(name))
}

// Get retrieves the string value of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple fields with the given name, it
// will return the first value found with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.GetField(ixs[0]).Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll fetches the bodies of all the fields with the given name.
//
// It returns nil with ErrNoSuchField if no field with the given name is set on
// the header.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}

	return bs, nil
}

// Set will replace all existing fields with the given name with a single
// field with the given name and body. If the field already exists, the first
// occurrence is updated in place and the others are deleted. Otherwise, the
// field is appended to the end of the header.
func (h *Header) Set(name, body string) {
	h.SetAll(name, body)
}

// SetAll replaces all the fields with the given name with the bodies given.
// Afterward, the field occurs exactly len(bodies) times. Existing fields are
// updated in place, new fields are appended, and extra fields are deleted.
func (h *Header) SetAll(name string, bodies ...string) {
	h.clearValue(name)

	ixs := h.GetIndexesNamed(name)
	for i, b := range bodies {
		if i < len(ixs) {
			f := h.GetField(ixs[i])
			f.SetName(name)
			f.SetBody(b)
			continue
		}

		h.Base.InsertBeforeField(h.Len(), name, b)
	}

	for i := len(ixs) - 1; i >= len(bodies); i-- {
		_ = h.Base.DeleteField(ixs[i])
	}
}

// InsertBeforeField inserts a new field at the given index. See
// Base.InsertBeforeField.
func (h *Header) InsertBeforeField(n int, name, body string) {
	h.clearValue(name)
	h.Base.InsertBeforeField(n, name, body)
}

// DeleteField removes the nth field. See Base.DeleteField.
func (h *Header) DeleteField(n int) error {
	if f := h.GetField(n); f != nil {
		h.clearValue(f.Name())
	}
	return h.Base.DeleteField(n)
}

// ClearFields removes every field from the header.
func (h *Header) ClearFields() {
	h.valueCache = nil
	h.Base.ClearFields()
}
