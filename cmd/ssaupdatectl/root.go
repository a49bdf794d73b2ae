package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// globalFlags holds the persistent flags declared on the root command.
type globalFlags struct {
	logLevel string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	var logger *zap.SugaredLogger

	cmd := &cobra.Command{
		Use:           "ssaupdatectl",
		Short:         "Run the SSA construction pass over a JSON procedure",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			l, err := newLogger(flags.logLevel)
			if err != nil {
				return err
			}
			logger = l.Sugar()
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	installShorthand(pf)

	cmd.AddCommand(newRunCommand(flags, &logger))
	cmd.AddCommand(newVerifyCommand(flags, &logger))
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}

// installShorthand exists so pflag's usage summary lists the log-level flag
// as -l as well as --log-level.
func installShorthand(pf *pflag.FlagSet) {
	if f := pf.Lookup("log-level"); f != nil {
		f.Shorthand = "l"
	}
}
