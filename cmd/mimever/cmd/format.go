package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/mimeversion"
)

func newFormatCmd(v *viper.Viper) *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format [major.minor]",
		Short: "Print a MIME-Version header line",
		Long: `Prints the MIME-Version header line for the given version, or for the
configured default version when none is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, v, args)
		},
	}

	formatCmd.Flags().String("break", "crlf", "line break to end the line with: crlf, lf, or cr")
	_ = v.BindPFlag("break", formatCmd.Flags().Lookup("break"))

	return formatCmd
}

func runFormat(cmd *cobra.Command, v *viper.Viper, args []string) error {
	ver, err := defaultVersion(v)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		ver, err = mimeversion.ParseStringStrict(args[0])
		if err != nil {
			return err
		}
	}

	lb, err := header.ParseBreak(v.GetString("break"))
	if err != nil {
		return err
	}

	line, err := header.FormatLine(ver, lb)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), line)
	return err
}

// defaultVersion returns the configured default-version setting.
func defaultVersion(v *viper.Viper) (mimeversion.Version, error) {
	var ver mimeversion.Version
	if err := ver.UnmarshalText([]byte(v.GetString("default-version"))); err != nil {
		return ver, fmt.Errorf("bad default-version setting: %w", err)
	}
	return ver, nil
}
