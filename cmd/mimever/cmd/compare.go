package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimeversion/mimeversion"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare a b",
		Short: "Print -1, 0, or 1 as version a is older, the same, or newer than b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := mimeversion.ParseStringStrict(args[0])
			if err != nil {
				return err
			}

			b, err := mimeversion.ParseStringStrict(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b))
			return err
		},
	}
}
