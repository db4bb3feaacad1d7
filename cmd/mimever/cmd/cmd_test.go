package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/internal/logger"
)

const (
	goodMessage    = "From: sterling@example.com\r\nMIME-Version: 1.0\r\nSubject: test\r\n\r\nHello.\r\n"
	paddedMessage  = "From: sterling@example.com\nMIME-Version: 01.00\nSubject: test\n\nHello.\n"
	missingMessage = "From: sterling@example.com\nSubject: test\n\nHello.\n"
	badMessage     = "From: sterling@example.com\nMIME-Version: one.zero\n\nHello.\n"
	trailMessage   = "MIME-Version: 1.0.1\n\nHello.\n"
)

// run executes the command with the given args and stdin and returns what it
// printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	ctx, _ := logger.TestContext()

	out := &bytes.Buffer{}
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func writeMessage(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	t.Parallel()

	good := writeMessage(t, "good.eml", goodMessage)
	missing := writeMessage(t, "missing.eml", missingMessage)

	out, err := run(t, "", "check", good, missing)
	assert.NoError(t, err)
	assert.Equal(t, good+": 1.0\n"+missing+": missing\n", out)
}

func TestCheck_Stdin(t *testing.T) {
	t.Parallel()

	out, err := run(t, paddedMessage, "check")
	assert.NoError(t, err)
	assert.Equal(t, "-: 1.0\n", out)
}

func TestCheck_Failures(t *testing.T) {
	t.Parallel()

	bad := writeMessage(t, "bad.eml", badMessage)
	missing := writeMessage(t, "missing.eml", missingMessage)
	nowhere := filepath.Join(t.TempDir(), "nowhere.eml")

	out, err := run(t, "", "check", "--require", bad, missing, nowhere)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, bad+`: malformed MIME-Version header "one.zero"`)
	assert.Contains(t, out, missing+": malformed MIME-Version header: no value present")
	assert.Contains(t, out, nowhere+": error:")
}

func TestCheck_Strict(t *testing.T) {
	t.Parallel()

	trail := writeMessage(t, "trail.eml", trailMessage)

	out, err := run(t, "", "check", trail)
	assert.NoError(t, err)
	assert.Equal(t, trail+": 1.0\n", out)

	out, err = run(t, "", "check", "--strict", trail)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "unexpected text after minor version")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "format")
	assert.NoError(t, err)
	assert.Equal(t, "MIME-Version: 1.0\r\n", out)

	out, err = run(t, "", "format", "--break", "lf", "0.1")
	assert.NoError(t, err)
	assert.Equal(t, "MIME-Version: 0.1\n", out)

	_, err = run(t, "", "format", "256.0")
	assert.ErrorIs(t, err, header.ErrMalformed)

	_, err = run(t, "", "format", "--break", "nope")
	assert.ErrorIs(t, err, header.ErrUnknownBreak)
}

func TestFormat_Config(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "mimever.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("default-version: \"2.5\"\nbreak: lf\n"), 0o644))

	out, err := run(t, "", "--config", cfg, "format")
	assert.NoError(t, err)
	assert.Equal(t, "MIME-Version: 2.5\n", out)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "compare", "1.0", "1.1")
	assert.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	out, err = run(t, "", "compare", "2.0", "1.9")
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "", "compare", "1.0", "x")
	assert.ErrorIs(t, err, header.ErrMalformed)
}

func TestNormalize_Diff(t *testing.T) {
	t.Parallel()

	padded := writeMessage(t, "padded.eml", paddedMessage)

	out, err := run(t, "", "normalize", padded)
	assert.NoError(t, err)
	assert.Equal(t,
		"--- "+padded+"\n+++ "+padded+"\n"+
			" From: sterling@example.com\n"+
			"-MIME-Version: 01.00\n"+
			"+MIME-Version: 1.0\n"+
			" Subject: test\n"+
			" \n",
		out)

	// nothing is written without --write
	b, err := os.ReadFile(padded)
	require.NoError(t, err)
	assert.Equal(t, paddedMessage, string(b))
}

func TestNormalize_Write(t *testing.T) {
	t.Parallel()

	padded := writeMessage(t, "padded.eml", paddedMessage)

	out, err := run(t, "", "normalize", "--write", padded)
	assert.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(padded)
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(paddedMessage, "01.00", "1.0", 1), string(b))
}

func TestNormalize_AddMissing(t *testing.T) {
	t.Parallel()

	missing := writeMessage(t, "missing.eml", missingMessage)

	out, err := run(t, "", "normalize", missing)
	assert.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "", "normalize", "--add-missing", "--write", missing)
	assert.NoError(t, err)

	b, err := os.ReadFile(missing)
	require.NoError(t, err)
	assert.Equal(t, "From: sterling@example.com\nSubject: test\nMIME-Version: 1.0\n\nHello.\n", string(b))
}

func TestNormalize_Unchanged(t *testing.T) {
	t.Parallel()

	good := writeMessage(t, "good.eml", goodMessage)

	out, err := run(t, "", "normalize", "--write", good)
	assert.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, goodMessage, string(b))
}

func TestNormalize_Malformed(t *testing.T) {
	t.Parallel()

	bad := writeMessage(t, "bad.eml", badMessage)

	_, err := run(t, "", "normalize", bad)
	assert.ErrorIs(t, err, header.ErrMalformed)
}
