package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/header/field"
	"github.com/zostay/go-mimeversion/internal/logger"
)

// stdinPath is the path used on the command line to mean standard input.
const stdinPath = "-"

// message is a message read from a file or stdin.
type message struct {
	path    string
	header  *header.Header
	body    io.Reader
	closeFn func() error
}

// openMessage reads the header of the message at path. The caller must call
// closeFn when done with the body.
func openMessage(ctx context.Context, path string, stdin io.Reader, maxHeaderLen int) (*message, error) {
	var (
		r       io.Reader = stdin
		closeFn           = func() error { return nil }
	)
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r, closeFn = f, f.Close
	}

	h, body, err := header.Read(r, header.WithMaxHeaderLength(maxHeaderLen))

	var badStart *field.BadStartError
	if errors.As(err, &badStart) {
		logger.FromContext(ctx).Warn("skipped junk at start of header",
			zap.Int("bytes", len(badStart.BadStart)))
	} else if err != nil {
		_ = closeFn()
		return nil, err
	}

	return &message{path, h, body, closeFn}, nil
}
