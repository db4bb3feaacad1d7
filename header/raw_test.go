package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mimeversion/header"
)

func TestRawValues(t *testing.T) {
	t.Parallel()

	r := header.RawValues{}
	assert.Equal(t, 0, r.Len())
	_, ok := r.One()
	assert.False(t, ok)

	r = header.RawString("1.0")
	assert.Equal(t, 1, r.Len())
	v, ok := r.One()
	assert.True(t, ok)
	assert.Equal(t, []byte("1.0"), v)

	r = header.RawString("1.0", "0.1")
	assert.Equal(t, 2, r.Len())
	_, ok = r.One()
	assert.False(t, ok)
	assert.Equal(t, [][]byte{[]byte("1.0"), []byte("0.1")}, r.All())
}

func TestRawOf(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("MIME-Version:   1.0  \nSubject: x\nmime-version: 0.1\n"), header.LF)
	assert.NoError(t, err)

	assert.Equal(t, header.RawString("1.0", "0.1"), header.RawOf(h, header.MIMEVersion))
	assert.Equal(t, header.RawValues{}, header.RawOf(h, "X-Missing"))
}

func TestRawOf_EncodedWords(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("MIME-Version: =?utf-8?q?1.0?=\r\nSubject:\r\n =?utf-8?q?caf=C3=A9?=\r\n"), header.CRLF)
	assert.NoError(t, err)

	assert.Equal(t, header.RawString("=?utf-8?q?1.0?="), header.RawOf(h, header.MIMEVersion))
	assert.Equal(t, header.RawString("=?utf-8?q?caf=C3=A9?="), header.RawOf(h, header.Subject))

	// the decoded body is still there for unstructured use
	subject, err := h.Get(header.Subject)
	assert.NoError(t, err)
	assert.Equal(t, "café", subject)

	// fields set in code have no raw form, so the body is used
	h.Set(header.Subject, "plain")
	assert.Equal(t, header.RawString("plain"), header.RawOf(h, header.Subject))
}
