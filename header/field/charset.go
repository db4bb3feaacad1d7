package field

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownCharset is returned by DefaultCharsetDecoder for any charset other
// than us-ascii, iso-8859-1, and utf-8.
var ErrUnknownCharset = errors.New("unsupported charset")

// Decoder turns text in the named charset into UTF-8.
type Decoder func(charset string, b []byte) (string, error)

// CharsetDecoder decodes the text of encoded words in field bodies. Importing
// the header/encoding package swaps in a Decoder for every IANA charset:
//
//	import _ "github.com/zostay/go-mimeversion/header/encoding"
var CharsetDecoder Decoder = DefaultCharsetDecoder

// DefaultCharsetDecoder decodes us-ascii, iso-8859-1, and utf-8. Bytes that
// are not valid in the charset become unicode.ReplacementChar, one per byte.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	var decode func(b []byte) (rune, int)
	switch strings.ToLower(charset) {
	case "", "us-ascii", "ascii":
		decode = func(b []byte) (rune, int) {
			if b[0] > unicode.MaxASCII {
				return unicode.ReplacementChar, 1
			}
			return rune(b[0]), 1
		}
	case "iso-8859-1", "latin1":
		decode = func(b []byte) (rune, int) { return rune(b[0]), 1 }
	case "utf-8", "utf8":
		decode = utf8.DecodeRune
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownCharset, charset)
	}

	var s strings.Builder
	for len(b) > 0 {
		r, size := decode(b)
		s.WriteRune(r)
		b = b[size:]
	}
	return s.String(), nil
}

// CharsetDecoderToCharsetReader adapts a Decoder to the CharsetReader of
// mime.WordDecoder.
func CharsetDecoderToCharsetReader(decode Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(charset string, r io.Reader) (io.Reader, error) {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		s, err := decode(charset, b)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(s), nil
	}
}
