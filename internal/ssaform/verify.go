package ssaform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ir-ssa/ssaform/internal/ir"
	"github.com/pkg/errors"
)

// Verify checks a procedure that has already been through Update against
// the pass's structural invariants: every variable has exactly one
// definition site, every use refers to a variable with exactly one
// definition, every use is dominated by its definition, and every phi's
// incoming sources are a subset of its block's CFG predecessors (a phi may
// carry fewer incomings than predecessors when some path never reaches a
// definition, but never one from a block that isn't a predecessor at all).
func Verify(prog *ir.Program) error {
	var errs []string
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if prog.BlockCount() == 0 {
		return nil
	}

	cfg := BuildCFG(prog)
	dom := BuildDominatorTree(cfg)

	defSite := make(map[int]int, prog.VariableCount()) // variable index -> defining block, first seen
	defCount := make(map[int]int, prog.VariableCount())
	recordDef := func(v *ir.Variable, block int) {
		if v == nil {
			return
		}
		defCount[v.Index]++
		if _, ok := defSite[v.Index]; !ok {
			defSite[v.Index] = block
		}
	}

	for i := 0; i < prog.BlockCount(); i++ {
		block := prog.BlockAt(i)
		recordDef(block.ExceptionVariable, i)
		for _, phi := range block.Phis {
			recordDef(phi.Receiver, i)
		}
		for _, insn := range block.Instructions {
			recordDef(extractDefinition(insn), i)
		}
		for _, tc := range block.TryCatches {
			for _, joint := range tc.Joints {
				recordDef(joint.Receiver, i)
			}
		}
	}

	for idx, count := range defCount {
		if count != 1 {
			add("variable v%d has %d definition sites, want 1", idx, count)
		}
	}

	checkUse := func(block int, v *ir.Variable) {
		if v == nil {
			return
		}
		site, ok := defSite[v.Index]
		if !ok {
			add("variable v%d used in block %d has no definition site", v.Index, block)
			return
		}
		if !dom.Dominates(site, block) {
			add("variable v%d defined in block %d does not dominate use in block %d", v.Index, site, block)
		}
	}

	for i := 0; i < prog.BlockCount(); i++ {
		block := prog.BlockAt(i)
		if !dom.Reachable(i) {
			continue
		}
		for _, phi := range block.Phis {
			for _, in := range phi.Incomings {
				if in.Source == nil {
					add("block %d: phi for v%d has an incoming with a nil source", i, phi.Receiver.Index)
					continue
				}
				checkUse(in.Source.Index, in.Value)
			}
		}
		for _, insn := range block.Instructions {
			insn.ForEachUse(func(v *ir.Variable) *ir.Variable {
				checkUse(i, v)
				return v
			})
		}
		for _, tc := range block.TryCatches {
			for _, joint := range tc.Joints {
				for _, sv := range joint.SourceVariables {
					checkUse(i, sv)
				}
			}
		}

		for _, phi := range block.Phis {
			preds := make(map[int]bool, len(cfg.Preds(i)))
			for _, p := range cfg.Preds(i) {
				preds[p] = true
			}
			seen := make(map[int]bool, len(phi.Incomings))
			for _, in := range phi.Incomings {
				if in.Source == nil {
					continue
				}
				seen[in.Source.Index] = true
			}
			// A phi may legitimately carry fewer incomings than there are
			// predecessors: some path may never reach a definition of the
			// variable it merges. An incoming from a block that is not a
			// predecessor at all, though, cannot correspond to any real
			// control-flow edge.
			extra := diffSorted(seen, preds)
			if len(extra) > 0 {
				add("block %d: phi for v%d has incomings from non-predecessors %v", i, phi.Receiver.Index, extra)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Errorf("ssaform: verification failed:\n  %s", strings.Join(errs, "\n  "))
}

func diffSorted(have, without map[int]bool) []int {
	var out []int
	for k := range have {
		if !without[k] {
			out = append(out, k)
		}
	}
	sort.Ints(out)
	return out
}
