package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/internal/logger"
	"github.com/zostay/go-mimeversion/mimeversion"
)

// ErrCheckFailed is returned by the check command when any message failed.
var ErrCheckFailed = errors.New("MIME-Version check failed")

func newCheckCmd(v *viper.Viper) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [message...]",
		Short: "Report the MIME-Version of each message",
		Long: `Reads the header of each message named (or standard input when none
are named, or for "-") and reports the MIME-Version it declares. Fails if any
MIME-Version field is malformed, or missing when --require is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v, args)
		},
	}

	checkCmd.Flags().Bool("strict", false, "reject anything after the minor version")
	checkCmd.Flags().Bool("require", false, "fail when the MIME-Version field is missing")
	_ = v.BindPFlag("strict", checkCmd.Flags().Lookup("strict"))
	_ = v.BindPFlag("require", checkCmd.Flags().Lookup("require"))

	return checkCmd
}

func runCheck(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if len(args) == 0 {
		args = []string{stdinPath}
	}

	parse := mimeversion.Parse
	if v.GetBool("strict") {
		parse = mimeversion.ParseStrict
	}

	failed := 0
	for _, path := range args {
		ctx := logger.With(cmd.Context(), zap.String("path", path))
		log := logger.FromContext(ctx)

		msg, err := openMessage(ctx, path, cmd.InOrStdin(), v.GetInt("max-header-length"))
		if err != nil {
			log.Error("unable to read message", zap.Error(err))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", path, err)
			failed++
			continue
		}
		_ = msg.closeFn()

		raw := header.RawOf(msg.header, mimeversion.HeaderName)
		if raw.Len() == 0 && !v.GetBool("require") {
			log.Debug("no MIME-Version field")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: missing\n", path)
			continue
		}

		ver, err := parse(raw)
		if err != nil {
			log.Debug("malformed MIME-Version field", zap.Error(err))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
			failed++
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, ver)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d messages", ErrCheckFailed, failed, len(args))
	}
	return nil
}
