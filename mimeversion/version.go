package mimeversion

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coreos/go-semver/semver"

	"github.com/zostay/go-mimeversion/header"
)

// HeaderName is the canonical name of the field.
const HeaderName = header.MIMEVersion

// Version is the value of a MIME-Version field. The zero value is version 0.0.
// Versions are comparable with ==.
type Version struct {
	major uint8
	minor uint8
}

// V1_0 is version 1.0, the only version RFC 2045 defines.
var V1_0 = New(1, 0)

func init() {
	header.RegisterTyped[Version]()
}

// New returns the version major.minor.
func New(major, minor uint8) Version {
	return Version{major, minor}
}

// Default returns V1_0.
func Default() Version {
	return V1_0
}

// Major returns the major version number.
func (v Version) Major() uint8 {
	return v.major
}

// Minor returns the minor version number.
func (v Version) Minor() uint8 {
	return v.minor
}

// IsZero returns true for version 0.0.
func (v Version) IsZero() bool {
	return v == Version{}
}

// String returns the version as it is written in the field body, such as
// "1.0".
func (v Version) String() string {
	return strconv.FormatUint(uint64(v.major), 10) + "." + strconv.FormatUint(uint64(v.minor), 10)
}

// Semver returns the version as a semantic version with a zero patch number.
func (v Version) Semver() semver.Version {
	return semver.Version{
		Major: int64(v.major),
		Minor: int64(v.minor),
	}
}

// Compare returns -1 if v is older than o, 1 if it is newer, and 0 if they
// are the same.
func (v Version) Compare(o Version) int {
	return v.Semver().Compare(o.Semver())
}

// Less returns true if v is older than o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// HeaderName returns HeaderName.
func (v Version) HeaderName() string {
	return HeaderName
}

// FormatHeader writes the field body. The body is always a single line of
// digits and a ".", so this never fails.
func (v Version) FormatHeader(lw *header.LineWriter) error {
	return lw.WriteLine(v.String())
}

// ParseHeader replaces v with the version parsed from raw using Parse.
func (v *Version) ParseHeader(raw header.Raw) error {
	pv, err := Parse(raw)
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// MarshalText returns the same text as String.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses text with ParseStringStrict.
func (v *Version) UnmarshalText(text []byte) error {
	pv, err := ParseStringStrict(string(text))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// Parse parses the single occurrence of the field in raw. It fails if there
// are no occurrences or more than one.
//
// Only the text before the first "." and between the first and second "." is
// examined, so "1.0.7" parses as 1.0. Each of those parts may start with one
// "+". Use ParseStrict to reject both.
func Parse(raw header.Raw) (Version, error) {
	return parseRaw(raw, false)
}

// ParseStrict is like Parse, but rejects anything after the minor version and
// any sign in front of either number.
func ParseStrict(raw header.Raw) (Version, error) {
	return parseRaw(raw, true)
}

// ParseString parses a single field body, such as "1.0". It follows the same
// rules as Parse.
func ParseString(s string) (Version, error) {
	return parseValue([]byte(s), false)
}

// ParseStringStrict parses a single field body following the same rules as
// ParseStrict.
func ParseStringStrict(s string) (Version, error) {
	return parseValue([]byte(s), true)
}

// MustParse is like ParseStringStrict, but panics on error.
func MustParse(s string) Version {
	v, err := ParseStringStrict(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseRaw(raw header.Raw, strict bool) (Version, error) {
	b, ok := raw.One()
	if !ok {
		if raw.Len() == 0 {
			return Version{}, &ParseError{Err: ErrNoValue}
		}
		return Version{}, &ParseError{Err: ErrManyValues}
	}

	return parseValue(b, strict)
}

func parseValue(b []byte, strict bool) (Version, error) {
	if !utf8.Valid(b) {
		return Version{}, &ParseError{Value: string(b), Err: ErrNotUTF8}
	}

	s := string(b)
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return Version{}, &ParseError{Value: s, Err: ErrNoSeparator}
	}

	if strict && len(parts) > 2 {
		return Version{}, &ParseError{Value: s, Err: ErrTrailingText}
	}

	major, err := parsePart(parts[0], strict)
	if err != nil {
		return Version{}, &ParseError{Value: s, Err: ErrBadNumber}
	}

	minor, err := parsePart(parts[1], strict)
	if err != nil {
		return Version{}, &ParseError{Value: s, Err: ErrBadNumber}
	}

	return New(major, minor), nil
}

// parsePart parses one decimal part of the version. Outside of strict mode a
// single leading "+" is allowed, so "+1.+0" is 1.0.
func parsePart(p string, strict bool) (uint8, error) {
	if !strict {
		p = strings.TrimPrefix(p, "+")
	}

	n, err := strconv.ParseUint(p, 10, 8)
	return uint8(n), err
}

// Get reads the MIME-Version field from h.
func Get(h *header.Header) (Version, error) {
	return header.GetTyped[Version](h)
}

// Set replaces the MIME-Version field of h with v.
func Set(h *header.Header, v Version) error {
	return header.SetTyped(h, v)
}
