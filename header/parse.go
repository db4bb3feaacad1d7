package header

import (
	"errors"

	"github.com/zostay/go-mimeversion/header/field"
)

// Parse will parse the given slice of bytes into an email header using the
// given line break. It assumes the entire input is header.
//
// The parsed header uses field.DoNotFoldEncoding so that it round-trips
// without modification. Use SetFoldEncoding() to change that.
//
// If the input starts with junk that is not a header field, the junk is
// skipped and the header is returned along with a *field.BadStartError.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStartErr *field.BadStartError // recoverable
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, 0, len(lines))
	for _, line := range lines {
		fields = append(fields, field.Parse(line, lb.Bytes()))
	}

	h := &Header{
		Base: Base{
			lbr:    lb,
			vf:     field.DoNotFoldEncoding,
			fields: fields,
		},
	}

	return h, finalErr
}
