package header

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Break is the line break a header uses.
type Break string

// The line breaks Read can detect. CRLF is what RFC 5322 requires and the
// safe choice for a new header. Meh leaves the choice to whatever uses it.
const (
	Meh  Break = ""
	CRLF Break = "\r\n"
	LF   Break = "\n"
	CR   Break = "\r"
	LFCR Break = "\n\r"
)

// String returns the break itself.
func (b Break) String() string { return string(b) }

// Bytes returns the break as bytes.
func (b Break) Bytes() []byte { return []byte(b) }

// ErrUnknownBreak is returned by ParseBreak for a name it does not know.
var ErrUnknownBreak = errors.New("unknown line break")

// breakNames maps the names accepted by ParseBreak to their breaks.
var breakNames = map[string]Break{
	"crlf": CRLF,
	"lf":   LF,
	"cr":   CR,
}

// ParseBreak returns the break named "crlf", "lf", or "cr", ignoring case.
func ParseBreak(name string) (Break, error) {
	if lb, known := breakNames[strings.ToLower(name)]; known {
		return lb, nil
	}
	return Meh, fmt.Errorf("%w %q: expected crlf, lf, or cr", ErrUnknownBreak, name)
}

const (
	// DefaultChunkSize is the number of bytes read at a time while looking
	// for the end of the header.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is the default maximum byte length to scan before
	// giving up on finding the end of the header.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize
)

// ErrLargeHeader is returned by Read when the header is longer than the
// configured WithMaxHeaderLength option (or DefaultMaxHeaderLength).
var ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

// detectable lists the breaks Read looks for, most likely first. The two
// byte breaks must come before the one byte breaks they contain.
var detectable = []Break{CRLF, LFCR, LF, CR}

type reader struct {
	maxHeaderLen int
	chunkSize    int
}

// ReadOption is used to modify how Read works.
type ReadOption func(rd *reader)

// WithMaxHeaderLength sets the largest the header is allowed to be before Read
// gives up with ErrLargeHeader. A value less than or equal to 0 removes the
// limit. The default is DefaultMaxHeaderLength.
func WithMaxHeaderLength(n int) ReadOption {
	return func(rd *reader) { rd.maxHeaderLen = n }
}

// WithChunkSize sets how many bytes are read at a time. The default is
// DefaultChunkSize.
func WithChunkSize(n int) ReadOption {
	return func(rd *reader) { rd.chunkSize = n }
}

// searchForSplit looks for the blank line between header and body. It returns
// the position just past it and the line break it implies, or -1 when there
// is no blank line.
func searchForSplit(buf []byte) (int, Break) {
	for _, lb := range detectable {
		blank := []byte(lb + lb)
		if pos := bytes.Index(buf, blank); pos > -1 {
			return pos + len(blank), lb
		}
	}
	return -1, Meh
}

// Read consumes the header from the front of a message. It detects the line
// break in use from the blank line that ends the header, parses the header,
// and returns a reader positioned at the start of the body. If no blank line
// is found, the whole input is treated as header and the body is empty.
//
// Like Parse, a *field.BadStartError may be returned with a usable header.
func Read(r io.Reader, opts ...ReadOption) (*Header, io.Reader, error) {
	rd := &reader{
		maxHeaderLen: DefaultMaxHeaderLength,
		chunkSize:    DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(rd)
	}
	if rd.chunkSize <= 0 {
		rd.chunkSize = DefaultChunkSize
	}

	hdr, lb, body, err := rd.splitHeadFromBody(r)
	if err != nil {
		return nil, nil, err
	}

	h, err := Parse(hdr, lb)
	if h == nil {
		return nil, nil, err
	}
	return h, body, err
}

// splitHeadFromBody reads r a chunk at a time until the header/body split is
// found.
func (rd *reader) splitHeadFromBody(r io.Reader) ([]byte, Break, io.Reader, error) {
	p := make([]byte, rd.chunkSize)
	buf := &bytes.Buffer{}
	searched := 0
	first := true
	for {
		n, err := r.Read(p)

		if rd.maxHeaderLen > 0 && n+buf.Len() > rd.maxHeaderLen {
			return nil, Meh, nil, ErrLargeHeader
		}

		isEOF := false
		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return nil, Meh, nil, err
		}

		buf.Write(p[:n])

		// a message may start with the blank line, meaning the header is empty
		if first {
			first = false
			for _, lb := range detectable {
				if bytes.HasPrefix(buf.Bytes(), lb.Bytes()) {
					rest := append([]byte{}, buf.Bytes()[len(lb):]...)
					return []byte{}, lb, io.MultiReader(bytes.NewReader(rest), r), nil
				}
			}
		}

		pos, lb := searchForSplit(buf.Bytes()[searched:])
		if pos >= 0 {
			pos += searched
			all := buf.Bytes()
			hdr := make([]byte, pos)
			copy(hdr, all[:pos])
			rest := all[pos:]
			return hdr, lb, io.MultiReader(bytes.NewReader(rest), r), nil
		}

		if isEOF {
			break
		}

		// the split may straddle the chunk boundary
		searched = buf.Len() - 3
		if searched < 0 {
			searched = 0
		}
	}

	// No blank line, so it is all header. Guess the break from what's there.
	for _, lb := range detectable {
		if bytes.Contains(buf.Bytes(), lb.Bytes()) {
			return buf.Bytes(), lb, bytes.NewReader(nil), nil
		}
	}

	return buf.Bytes(), LF, bytes.NewReader(nil), nil
}
