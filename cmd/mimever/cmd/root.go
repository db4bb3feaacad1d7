package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zostay/go-mimeversion/header"
	"github.com/zostay/go-mimeversion/internal/logger"
)

// envPrefix is the prefix of environment variables that override settings,
// e.g., MIMEVER_STRICT=true.
const envPrefix = "MIMEVER"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("default-version", "1.0")
	v.SetDefault("break", "crlf")
	v.SetDefault("max-header-length", header.DefaultMaxHeaderLength)

	rootCmd := &cobra.Command{
		Use:           "mimever",
		Short:         "Tools for checking and fixing the MIME-Version header of email messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.FromContext(cmd.Context()).Sync()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (YAML, TOML, or JSON)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int("max-header-length", header.DefaultMaxHeaderLength, "largest header to read, in bytes (0 for no limit)")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("max-header-length", rootCmd.PersistentFlags().Lookup("max-header-length"))

	rootCmd.AddCommand(
		newCheckCmd(v),
		newFormatCmd(v),
		newNormalizeCmd(v),
		newCompareCmd(),
	)

	return rootCmd
}

// initConfig reads the config file, if one was named, and attaches a logger to
// the command context unless one is already there.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config file %q: %w", cfgFile, err)
		}
	}

	if logger.Attached(cmd.Context()) {
		return nil
	}

	l, err := logger.New(v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("unable to start logger: %w", err)
	}

	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), l))
	return nil
}

// Execute runs the mimever command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
