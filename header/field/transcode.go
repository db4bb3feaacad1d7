package field

import (
	"mime"
	"strings"
)

// Encode transforms a single header field body into MIME encoded words if it
// contains characters that require it. It always outputs b-type (Base-64)
// encoding using UTF-8 as the character set. Plain ASCII is returned unchanged.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// Decode transforms a single header field body and looks for MIME word encoded
// values. When they are found, these are decoded into native unicode using
// CharsetDecoder.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	dec := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(CharsetDecoder),
	}
	return dec.DecodeHeader(body)
}
