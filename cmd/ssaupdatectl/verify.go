package main

import (
	"io"
	"os"

	"github.com/ir-ssa/ssaform/internal/ir"
	"github.com/ir-ssa/ssaform/internal/ssaform"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVerifyCommand(_ *globalFlags, logger **zap.SugaredLogger) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a JSON procedure already satisfies the pass's SSA invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(input, *logger)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "path to the JSON procedure, or - for stdin")
	return cmd
}

func runVerify(input string, logger *zap.SugaredLogger) error {
	prog, _, err := loadProgram(input)
	if err != nil {
		return err
	}
	if err := ssaform.Verify(prog); err != nil {
		return errors.Wrap(err, "verify")
	}
	logger.Info("procedure satisfies all SSA invariants")
	return nil
}

func loadProgram(path string) (*ir.Program, []*ir.Variable, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "read input")
	}
	return ir.Decode(data)
}
