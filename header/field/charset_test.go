package field_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/zostay/go-mimeversion/header/encoding"
	"github.com/zostay/go-mimeversion/header/field"
)

// "Εν αρχη" in iso-8859-7 and in utf-8
var (
	greekText   = []byte{0xc5, 0xed, 0x20, 0xe1, 0xf1, 0xf7, 0xe7}
	unicodeText = "Εν αρχη"
)

func TestDefaultCharsetDecoder(t *testing.T) {
	t.Parallel()

	_, err := field.DefaultCharsetDecoder("iso-8859-7", greekText)
	assert.ErrorIs(t, err, field.ErrUnknownCharset)

	dec, err := field.DefaultCharsetDecoder("UTF-8", []byte(unicodeText))
	assert.NoError(t, err)
	assert.Equal(t, unicodeText, dec)

	dec, err = field.DefaultCharsetDecoder("utf-8", []byte{'a', 0xff, 'b'})
	assert.NoError(t, err)
	assert.Equal(t, "a�b", dec)

	// each byte of a multibyte rune is replaced
	dec, err = field.DefaultCharsetDecoder("", []byte("pen 🖊"))
	assert.NoError(t, err)
	assert.Equal(t, "pen ����", dec)

	dec, err = field.DefaultCharsetDecoder("iso-8859-1", []byte{'c', 0xe9})
	assert.NoError(t, err)
	assert.Equal(t, "cé", dec)
}

func TestCharsetDecoder(t *testing.T) {
	t.Parallel()

	// header/encoding is loaded, so greek works
	dec, err := field.CharsetDecoder("iso-8859-7", greekText)
	assert.NoError(t, err)
	assert.Equal(t, unicodeText, dec)
}

func TestCharsetDecoderToCharsetReader(t *testing.T) {
	t.Parallel()

	cr := field.CharsetDecoderToCharsetReader(field.CharsetDecoder)

	out, err := cr("iso-8859-7", bytes.NewReader(greekText))
	assert.NoError(t, err)
	dec, err := io.ReadAll(out)
	assert.NoError(t, err)
	assert.Equal(t, unicodeText, string(dec))

	_, err = field.CharsetDecoderToCharsetReader(field.DefaultCharsetDecoder)("koi8-r", bytes.NewReader(nil))
	assert.ErrorIs(t, err, field.ErrUnknownCharset)
}

func TestDecode_Charset(t *testing.T) {
	t.Parallel()

	s, err := field.Decode("=?iso-8859-7?q?=C5=ED?=")
	assert.NoError(t, err)
	assert.Equal(t, "Εν", s)
}
