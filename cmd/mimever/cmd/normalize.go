package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/internal/logger"
	"github.com/zostay/go-mimeversion/mimeversion"
)

func newNormalizeCmd(v *viper.Viper) *cobra.Command {
	normalizeCmd := &cobra.Command{
		Use:   "normalize message",
		Short: "Rewrite the MIME-Version field in canonical form",
		Long: `Parses the MIME-Version field of the message and writes it back in its
canonical form, e.g., "MIME-Version: 01.00" becomes "MIME-Version: 1.0". With
--add-missing, a message without the field gets the default version. The
changes are shown as a diff of the header unless --write is given, in which
case the file is rewritten in place. Everything other than the MIME-Version
field is left byte-for-byte as it was.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, v, args[0])
		},
	}

	normalizeCmd.Flags().Bool("add-missing", false, "add the default version when the field is missing")
	normalizeCmd.Flags().Bool("write", false, "rewrite the file instead of printing a diff")
	normalizeCmd.Flags().String("default-version", "1.0", "version to add with --add-missing")
	_ = v.BindPFlag("add-missing", normalizeCmd.Flags().Lookup("add-missing"))
	_ = v.BindPFlag("write", normalizeCmd.Flags().Lookup("write"))
	_ = v.BindPFlag("default-version", normalizeCmd.Flags().Lookup("default-version"))

	return normalizeCmd
}

func runNormalize(cmd *cobra.Command, v *viper.Viper, path string) error {
	ctx := logger.With(cmd.Context(), zap.String("path", path))
	log := logger.FromContext(ctx)

	msg, err := openMessage(ctx, path, cmd.InOrStdin(), v.GetInt("max-header-length"))
	if err != nil {
		return err
	}

	body, err := io.ReadAll(msg.body)
	_ = msg.closeFn()
	if err != nil {
		return err
	}

	before := msg.header.String()

	var ver mimeversion.Version
	raw := header.RawOf(msg.header, mimeversion.HeaderName)
	switch {
	case raw.Len() > 0:
		ver, err = mimeversion.Parse(raw)
		if err != nil {
			return err
		}
	case v.GetBool("add-missing"):
		ver, err = defaultVersion(v)
		if err != nil {
			return err
		}
		log.Debug("adding missing MIME-Version field", zap.Stringer("version", ver))
	default:
		log.Debug("no MIME-Version field to normalize")
		return nil
	}

	// only touch the field when it changes, so the original bytes survive
	if current, err := msg.header.Get(mimeversion.HeaderName); err != nil || current != ver.String() {
		if err := mimeversion.Set(msg.header, ver); err != nil {
			return err
		}
	}

	after := msg.header.String()
	if before == after {
		log.Debug("already normalized")
		return nil
	}

	if v.GetBool("write") {
		if path == stdinPath {
			_, err = io.WriteString(cmd.OutOrStdout(), after+string(body))
			return err
		}

		fi, err := os.Stat(path)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		buf.WriteString(after)
		buf.Write(body)
		if err := os.WriteFile(path, buf.Bytes(), fi.Mode().Perm()); err != nil {
			return fmt.Errorf("unable to rewrite %q: %w", path, err)
		}

		log.Info("rewrote MIME-Version field", zap.Stringer("version", ver))
		return nil
	}

	return writeDiff(cmd.OutOrStdout(), path, before, after)
}

// writeDiff prints a line diff of the header before and after.
func writeDiff(w io.Writer, path, before, after string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n", path, path); err != nil {
		return err
	}

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, prefix+strings.TrimRight(line, "\r\n")+"\n"); err != nil {
				return err
			}
		}
	}

	return nil
}
