package main

import (
	"os"

	"github.com/ir-ssa/ssaform/internal/ssaform"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runFlags struct {
	input      string
	output     string
	verify     bool
	dumpBefore bool
	dumpAfter  bool
}

func newRunCommand(_ *globalFlags, logger **zap.SugaredLogger) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the SSA construction pass over a JSON procedure and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(flags, *logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "-", "path to the JSON procedure, or - for stdin")
	f.StringVarP(&flags.output, "output", "o", "-", "path to write the resulting procedure text, or - for stdout")
	f.BoolVar(&flags.verify, "verify", true, "verify structural invariants after running")
	f.BoolVar(&flags.dumpBefore, "dump-before", false, "log the procedure before running")
	f.BoolVar(&flags.dumpAfter, "dump-after", false, "log the procedure after running")

	return cmd
}

func runRun(flags *runFlags, logger *zap.SugaredLogger) error {
	prog, arguments, err := loadProgram(flags.input)
	if err != nil {
		return err
	}

	h := &ssaform.Harness{
		Logger: logger,
		Config: ssaform.Config{
			Verify:     flags.verify,
			DumpBefore: flags.dumpBefore,
			DumpAfter:  flags.dumpAfter,
		},
	}
	if err := h.Run(prog, arguments); err != nil {
		return errors.Wrap(err, "run")
	}

	return writeOutput(flags.output, ssaform.Sprint(prog))
}

func writeOutput(path, text string) error {
	if path == "-" {
		_, err := os.Stdout.WriteString(text)
		return errors.Wrap(err, "write output")
	}
	return errors.Wrap(os.WriteFile(path, []byte(text), 0o644), "write output")
}
