package ssaform

import (
	"os"

	"github.com/ir-ssa/ssaform/internal/ir"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config controls how Harness.Run wraps a call to Update. Update itself
// takes no configuration and never fails; these knobs live entirely at the
// harness layer, which is the only place that talks to a logger or a
// terminal.
type Config struct {
	// DumpBefore and DumpAfter, if true, write the procedure's textual form
	// to stderr before and/or after Update runs.
	DumpBefore bool
	DumpAfter  bool

	// Verify runs Verify after Update and returns its failure as an error.
	// Update's own InvariantError panic is recovered by Run whether or not
	// Verify is set.
	Verify bool
}

// Harness runs Update under a Config, logging progress through Logger. A
// zero-value Harness works, logging nothing.
type Harness struct {
	Logger *zap.SugaredLogger
	Config Config
}

// Run wraps a single Update call. Update's own panic (an *InvariantError)
// is recovered and returned as an error here; the harness is the layer
// that owns turning a caller bug into a reportable failure instead of a
// crash.
func (h *Harness) Run(prog *ir.Program, arguments []*ir.Variable) (err error) {
	log := h.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if h.Config.DumpBefore {
		log.Info("procedure before ssa construction")
		Fprint(os.Stderr, prog)
	}

	defer func() {
		if r := recover(); r != nil {
			if ierr, ok := r.(*InvariantError); ok {
				err = errors.Wrap(ierr, "ssaform: update")
				return
			}
			panic(r)
		}
	}()

	log.Debugw("running ssa construction", "blocks", prog.BlockCount(), "variables", prog.VariableCount())
	Update(prog, arguments)

	if h.Config.Verify {
		if verr := Verify(prog); verr != nil {
			return errors.Wrap(verr, "ssaform: verify after update")
		}
	}

	if h.Config.DumpAfter {
		log.Info("procedure after ssa construction")
		Fprint(os.Stderr, prog)
	}

	return nil
}
