package mimeversion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/mimeversion"
)

func TestGet(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("Subject: test\r\nmime-version: 1.0\r\n\r\n"), header.CRLF)
	require.NoError(t, err)

	v, err := mimeversion.Get(h)
	assert.NoError(t, err)
	assert.Equal(t, mimeversion.V1_0, v)

	h.Set("MIME-VERSION", "0.1")
	v, err = mimeversion.Get(h)
	assert.NoError(t, err)
	assert.Equal(t, mimeversion.New(0, 1), v)
}

func TestGet_EncodedWordIsMalformed(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("MIME-Version: =?utf-8?q?1.0?=\r\n"), header.CRLF)
	require.NoError(t, err)

	_, err = mimeversion.Get(h)
	assert.ErrorIs(t, err, mimeversion.ErrBadNumber)
	assert.ErrorIs(t, err, header.ErrMalformed)
}

func TestGet_Folded(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("MIME-Version:\r\n  1.0 \r\n"), header.CRLF)
	require.NoError(t, err)

	v, err := mimeversion.Get(h)
	assert.NoError(t, err)
	assert.Equal(t, mimeversion.V1_0, v)
}

func TestGet_Malformed(t *testing.T) {
	t.Parallel()

	h := &header.Header{}

	_, err := mimeversion.Get(h)
	assert.ErrorIs(t, err, mimeversion.ErrNoValue)
	assert.ErrorIs(t, err, header.ErrMalformed)

	h.SetAll(mimeversion.HeaderName, "1.0", "1.0")
	_, err = mimeversion.Get(h)
	assert.ErrorIs(t, err, mimeversion.ErrManyValues)

	h.Set(mimeversion.HeaderName, "\xff.0")
	_, err = mimeversion.Get(h)
	assert.ErrorIs(t, err, mimeversion.ErrNotUTF8)

	h.Set(mimeversion.HeaderName, "256.0")
	_, err = mimeversion.Get(h)
	assert.ErrorIs(t, err, mimeversion.ErrBadNumber)
}

func TestSet(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetBreak(header.CRLF)
	h.Set(header.Subject, "test")

	require.NoError(t, mimeversion.Set(h, mimeversion.V1_0))
	assert.Equal(t, "Subject: test\r\nMIME-Version: 1.0\r\n\r\n", h.String())

	require.NoError(t, mimeversion.Set(h, mimeversion.New(0, 1)))
	assert.Equal(t, "Subject: test\r\nMIME-Version: 0.1\r\n\r\n", h.String())

	v, err := mimeversion.Get(h)
	assert.NoError(t, err)
	assert.Equal(t, mimeversion.New(0, 1), v)
}

func TestParseNamed(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set("mime-version", "1.0")

	v, err := header.ParseNamed(h, "Mime-Version")
	require.NoError(t, err)
	assert.Equal(t, mimeversion.V1_0, v)

	h.Set("mime-version", "x")
	_, err = header.ParseNamed(h, mimeversion.HeaderName)
	assert.ErrorIs(t, err, header.ErrMalformed)
}
