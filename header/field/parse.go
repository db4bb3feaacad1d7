package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line represents the unparsed content for a complete header field line.
type Line []byte

// Lines represents the unparsed content for zero or more header field
// lines.
type Lines []Line

// ParseLines splits the given input into lines according to the rules we use to
// determine how to break header fields up inside a header. The input bytes are
// expected to include only the header. It returns the input as Lines, ready to
// feed into Parse.
//
// This is more forgiving than RFC 5322. If the first line (or lines) of input
// start with spaces or contain no colons, these lines will be skipped and a
// BadStartError will be returned alongside the Lines that could be read.
//
// After the first field is found, any line that starts with a space or tab, or
// that contains no colon, is treated as a continuation of the previous field.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}
		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, line)
		}
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Parse builds a Field from a single header field line, including any folded
// continuation lines. The name and body are unfolded, the body is trimmed and
// its encoded words decoded. The original bytes, minus the trailing line
// break, are kept as the field's Raw.
func Parse(f Line, lb []byte) *Field {
	raw := NewRaw(bytes.TrimRight(f, string(lb)))

	body := raw.Value()
	if decoded, err := Decode(body); err == nil {
		body = decoded
	}

	return &Field{
		name: string(Unfold([]byte(raw.Name()))),
		body: body,
		raw:  raw,
	}
}
