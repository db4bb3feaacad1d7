// Package encoding replaces the charset decoder used by the field package
// with one that knows every charset registered in
// golang.org/x/text/encoding/ianaindex. Import it for its side effect:
//
//	import _ "github.com/zostay/go-mimeversion/header/encoding"
//
// This makes binaries considerably larger, but lets encoded words in nearly
// any charset found in the wild be decoded.
package encoding

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-mimeversion/header/field"
)

func init() {
	field.CharsetDecoder = CharsetDecoder
}

// CharsetDecoder is a field.Decoder that can decode from any charset known to
// ianaindex.MIME.
func CharsetDecoder(charset string, b []byte) (string, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}
