package field

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

const (
	DefaultFoldIndent          = " " // inserted when a word has to be split
	DefaultPreferredFoldLength = 78  // lines are kept to this length when there is a space to break on
	DefaultForcedFoldLength    = 998 // no line is ever longer than this
	DoNotFold                  = -1  // write fields on one line, however long
)

var (
	// DefaultFoldEncoding is used by new headers. Its lengths are the "SHOULD"
	// and "MUST" line limits of RFC 5322.
	DefaultFoldEncoding = &FoldEncoding{DefaultFoldIndent, DefaultPreferredFoldLength, DefaultForcedFoldLength}

	// DoNotFoldEncoding writes every field as it is. Parsed headers use it so
	// that they come back out byte-for-byte.
	DoNotFoldEncoding = &FoldEncoding{DefaultFoldIndent, DoNotFold, DoNotFold}
)

var (
	// ErrFoldIndent is returned by NewFoldEncoding when the indent is empty
	// or holds anything other than spaces and tabs.
	ErrFoldIndent = errors.New("fold indent must be one or more spaces or tabs")

	// ErrFoldIndentTooLong is returned by NewFoldEncoding when the indent is
	// not shorter than the preferred length.
	ErrFoldIndentTooLong = errors.New("fold indent must be shorter than the preferred fold length")

	// ErrFoldLengthTooLong is returned by NewFoldEncoding when the preferred
	// length is longer than the forced length.
	ErrFoldLengthTooLong = errors.New("preferred fold length must be no longer than the forced fold length")

	// ErrDoNotFold is returned by NewFoldEncoding when only one of the two
	// lengths is DoNotFold.
	ErrDoNotFold = errors.New("preferred fold length and forced fold length must both be DoNotFold if either is")
)

// Break is the line break used when folding.
type Break []byte

// FoldEncoding describes how long header lines are folded.
type FoldEncoding struct {
	indent    string
	preferred int
	forced    int
}

// NewFoldEncoding returns a FoldEncoding that keeps lines to preferred bytes
// where a space allows it and never lets one grow past forced bytes. The
// indent starts the continuation when a word has to be split. Pass DoNotFold
// for both lengths to turn folding off.
func NewFoldEncoding(indent string, preferred, forced int) (*FoldEncoding, error) {
	if indent == "" || strings.Trim(indent, " \t") != "" {
		return nil, ErrFoldIndent
	}

	switch {
	case (preferred == DoNotFold) != (forced == DoNotFold):
		return nil, ErrDoNotFold
	case preferred == DoNotFold:
	case len(indent) >= preferred:
		return nil, ErrFoldIndentTooLong
	case preferred > forced:
		return nil, ErrFoldLengthTooLong
	}

	return &FoldEncoding{indent, preferred, forced}, nil
}

// Unfold removes the line breaks from a folded field, leaving the whitespace
// that followed each one.
func Unfold(f []byte) []byte {
	return bytes.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, f)
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// Fold writes the field f to out followed by lb, folding it first if it is
// longer than the preferred length.
//
// A fold is a line break placed before a space or tab that is already in the
// field, so Unfold gives back exactly f. The field name and the first word of
// the body are never separated. Only a word too long to fit within the forced
// length is split, and then the indent is added in front of the remainder.
// A field that already contains lb is taken to be folded and written as is.
//
// It returns the number of bytes written.
func (vf *FoldEncoding) Fold(out io.Writer, f []byte, lb Break) (int64, error) {
	fw := &foldWriter{out: out, lb: lb}

	if vf.preferred == DoNotFold || bytes.Contains(f, lb) {
		fw.line(f)
		return fw.n, fw.err
	}

	start := bodyStart(f)
	for fw.err == nil {
		if len(f) <= vf.preferred {
			fw.line(f)
			break
		}

		cut := vf.cutAt(f, start)
		if cut < 0 {
			if len(f) <= vf.forced {
				fw.line(f)
				break
			}

			// split the word and indent the rest
			fw.line(f[:vf.preferred])
			f = append([]byte(vf.indent), f[vf.preferred:]...)
			start = len(vf.indent)
			continue
		}

		fw.line(f[:cut])
		f = f[cut:]
		start = wordStart(f, 0)
	}

	return fw.n, fw.err
}

// cutAt picks where to fold f: the last space that keeps the line within the
// preferred length or, failing that, the first space within the forced length.
// Only spaces after start are considered. It returns -1 if there is none.
func (vf *FoldEncoding) cutAt(f []byte, start int) int {
	for i := min(vf.preferred, len(f)-1); i > start; i-- {
		if isSpace(f[i]) {
			return i
		}
	}

	for i := start + 1; i < len(f) && i <= vf.forced; i++ {
		if isSpace(f[i]) {
			return i
		}
	}

	return -1
}

// bodyStart returns the index of the first word of the body, or of the first
// word of the line when there is no colon.
func bodyStart(f []byte) int {
	colon := bytes.IndexByte(f, ':')
	if colon < 0 {
		return wordStart(f, 0)
	}
	return wordStart(f, colon+1)
}

// wordStart returns the index of the first non-space at or after i.
func wordStart(f []byte, i int) int {
	for i < len(f) && isSpace(f[i]) {
		i++
	}
	return i
}

// foldWriter writes lines, each followed by the break, until the first error.
type foldWriter struct {
	out io.Writer
	lb  Break
	n   int64
	err error
}

func (fw *foldWriter) line(b []byte) {
	for _, p := range [][]byte{b, fw.lb} {
		if fw.err != nil {
			return
		}
		n, err := fw.out.Write(p)
		fw.n += int64(n)
		fw.err = err
	}
}
