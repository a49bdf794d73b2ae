// Package ssaform rewrites a three-address procedure into SSA form: every
// variable gets exactly one definition, phi-functions are inserted at
// dominance frontiers, and try/catch joints are filled in for values that
// can reach a handler along an exceptional edge.
package ssaform

import "github.com/ir-ssa/ssaform/internal/ir"

// updater carries the working state of a single Update call. Nothing on it
// survives the call; a fresh updater is built per invocation rather than
// reused, so there is no reset step to get wrong between procedures.
type updater struct {
	prog *ir.Program
	cfg  *CFG
	dom  *DominatorTree
	df   [][]int

	// domExt is the dominator tree of the CFG extended with protected-to-
	// handler edges. It exists only to answer "does this protected block
	// strictly dominate its handler" for try/catch joint renaming; ordinary
	// phi placement and fillOutgoingPhis use dom/df instead, since handlers
	// are not ordinary phi-placement targets.
	domExt *DominatorTree

	// synthPhis and synthIndex are indexed by block; synthIndex maps an
	// original variable index to that variable's position in synthPhis for
	// the same block, for O(1) placement dedup and lookup.
	synthPhis  [][]*synthPhi
	synthIndex []map[int]int

	// current maps an original variable index to its reaching definition
	// on the path currently being renamed. Indices beyond the procedure's
	// starting variable count never appear here; freshly minted variables
	// are only ever reached through the original index they replace.
	current         []*ir.Variable
	usedDefinitions []bool

	// jointMap[handler][protected][origIndex] is the joint declared on the
	// try/catch from protected to handler for origIndex, if any.
	jointMap map[int]map[int]map[int]*ir.TryCatchJoint
}

// Update rewrites prog into SSA form in place. arguments[i] is the variable
// bound to formal parameter i and must satisfy arguments[i].Index == i;
// arguments are already single-definition and are never renamed. Update
// returns nothing: prog and its variables are mutated directly, and
// prog.VariableCount may grow. Calling Update on an empty procedure (zero
// blocks) is a no-op.
func Update(prog *ir.Program, arguments []*ir.Variable) {
	if prog.BlockCount() == 0 {
		return
	}

	cfg := BuildCFG(prog)
	dom := BuildDominatorTree(cfg)
	df := DominanceFrontiers(cfg, dom)
	domExt := BuildDominatorTree(BuildExceptionCFG(prog))

	u := &updater{
		prog:            prog,
		cfg:             cfg,
		dom:             dom,
		df:              df,
		domExt:          domExt,
		synthPhis:       make([][]*synthPhi, prog.BlockCount()),
		synthIndex:      make([]map[int]int, prog.BlockCount()),
		current:         make([]*ir.Variable, prog.VariableCount()),
		usedDefinitions: make([]bool, prog.VariableCount()),
	}
	for _, a := range arguments {
		u.current[a.Index] = a
		u.usedDefinitions[a.Index] = true
	}

	u.buildJointMap()
	u.estimatePhis()
	u.renameVariables()
}
