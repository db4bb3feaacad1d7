package header

import (
	"errors"
	"strings"
	"sync"

	"github.com/zostay/go-mimeversion/header/field"
)

var (
	// ErrLineBreak is returned by LineWriter.WriteLine when the line holds a
	// carriage return or line feed.
	ErrLineBreak = errors.New("header line may not contain a line break")

	// ErrNotRegistered is returned by ParseNamed when no typed header has
	// been registered for the name.
	ErrNotRegistered = errors.New("no typed header registered for field")
)

// Typed is a header value that knows the name of its field and how to format
// itself as the body of that field.
type Typed interface {
	// HeaderName returns the canonical field name.
	HeaderName() string

	// FormatHeader writes the field body to lw, one WriteLine call per
	// occurrence of the field.
	FormatHeader(lw *LineWriter) error
}

// TypedParser is satisfied by a pointer to a Typed value that can parse itself
// from the raw occurrences of its field.
type TypedParser[T any] interface {
	*T
	Typed

	// ParseHeader replaces the value with the one parsed from raw. On error,
	// the value is left unchanged.
	ParseHeader(raw Raw) error
}

// LineWriter collects the field bodies written by Typed.FormatHeader.
type LineWriter struct {
	lines []string
}

// WriteLine adds one field body. The line must not contain a line break;
// folding is the job of the header when it is written out.
func (lw *LineWriter) WriteLine(line string) error {
	if strings.ContainsAny(line, "\r\n") {
		return ErrLineBreak
	}
	lw.lines = append(lw.lines, line)
	return nil
}

// Lines returns the field bodies written so far.
func (lw *LineWriter) Lines() []string {
	return lw.lines
}

// FormatLine renders t as complete field lines, each terminated by lb. If lb is
// Meh, CRLF is used. For example, a MIME-Version of 1.0 renders as
// "MIME-Version: 1.0\r\n".
func FormatLine(t Typed, lb Break) (string, error) {
	if lb == Meh {
		lb = CRLF
	}

	lw := &LineWriter{}
	if err := t.FormatHeader(lw); err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, line := range lw.Lines() {
		buf.WriteString(field.New(t.HeaderName(), line).String())
		buf.WriteString(lb.String())
	}
	return buf.String(), nil
}

// GetTyped parses the field named by T from the header. A successfully parsed
// value is cached until the field is changed through the Header.
//
// Whatever error the parser returns is returned as-is, including when the
// field is missing or repeated.
func GetTyped[T any, PT TypedParser[T]](h *Header) (T, error) {
	var v T
	name := PT(&v).HeaderName()

	if cached, found := h.getValue(name); found {
		if t, isT := cached.(T); isT {
			return t, nil
		}
	}

	if err := PT(&v).ParseHeader(RawOf(h, name)); err != nil {
		var zero T
		return zero, err
	}

	h.setValue(name, v)

	return v, nil
}

// SetTyped replaces every field named by t with the lines t formats, then
// caches t. It fails only if formatting fails, in which case the header is
// unchanged.
func SetTyped(h *Header, t Typed) error {
	lw := &LineWriter{}
	if err := t.FormatHeader(lw); err != nil {
		return err
	}

	h.SetAll(t.HeaderName(), lw.Lines()...)
	if len(lw.Lines()) > 0 {
		h.setValue(t.HeaderName(), t)
	}

	return nil
}

// ParseFunc parses the raw occurrences of a field into a Typed value.
type ParseFunc func(raw Raw) (Typed, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]ParseFunc{}
)

// Register associates a ParseFunc with a field name so that ParseNamed can find
// it. Names are matched without regard to case. A later registration for the
// same name replaces the earlier one.
func Register(name string, parse ParseFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = parse
}

// RegisterTyped registers the typed header T under its own HeaderName.
func RegisterTyped[T any, PT TypedParser[T]]() {
	var v T
	Register(PT(&v).HeaderName(), func(raw Raw) (Typed, error) {
		var t T
		if err := PT(&t).ParseHeader(raw); err != nil {
			return nil, err
		}
		if typed, isTyped := any(t).(Typed); isTyped {
			return typed, nil
		}
		return PT(&t), nil
	})
}

// Lookup returns the ParseFunc registered for the name.
func Lookup(name string) (ParseFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	parse, found := registry[strings.ToLower(name)]
	return parse, found
}

// ParseNamed parses the named field with the typed header registered for it.
// It returns ErrNotRegistered if there is none.
func ParseNamed(h *Header, name string) (Typed, error) {
	if cached, found := h.getValue(name); found {
		if t, isTyped := cached.(Typed); isTyped {
			return t, nil
		}
	}

	parse, found := Lookup(name)
	if !found {
		return nil, ErrNotRegistered
	}

	t, err := parse(RawOf(h, name))
	if err != nil {
		return nil, err
	}

	h.setValue(name, t)

	return t, nil
}
