package ssaform

import "github.com/ir-ssa/ssaform/internal/ir"

// task is one unit of the dominator-tree walk: rename block, carrying its
// own private snapshot of current so sibling subtrees cannot see each
// other's definitions.
type task struct {
	block   int
	current []*ir.Variable
}

// renameVariables performs the dominator-tree-ordered rewrite: every def
// gets a fresh variable, every use is rewritten to the reaching definition,
// and every synthesized phi is filled in or discarded. The visiting order
// of the tree is a pre-order walk seeded from every dominator-tree root
// (ordinarily just the entry block, but an unreachable block is also its
// own root and gets visited on its own snapshot — this is how a handler
// reached only along exception edges is visited, since those edges are not
// part of this walk's graph; its own instructions still get renamed
// correctly from its own seed, only its try/catch joints, not ordinary
// dataflow, connect it back to its protected block's values).
func (u *updater) renameVariables() {
	var stack []task
	for i := 0; i < u.prog.BlockCount(); i++ {
		if u.dom.IDom(i) == -1 {
			stack = append(stack, task{block: i, current: cloneVariables(u.current)})
		}
	}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		u.current = t.current
		u.renameBlock(t.block)

		for _, c := range u.dom.Children(t.block) {
			stack = append(stack, task{block: c, current: cloneVariables(u.current)})
		}
	}

	for i := 0; i < u.prog.BlockCount(); i++ {
		block := u.prog.BlockAt(i)
		for _, sp := range u.synthPhis[i] {
			// A phi that never reached a definition on any path was placed
			// speculatively by the dominance-frontier worklist and has
			// nothing to merge; discard it. One that collected at least one
			// incoming, even short of the full predecessor set, is a real
			// (if partial) merge point and is kept.
			if len(sp.phi.Incomings) > 0 {
				block.Phis = append(block.Phis, sp.phi)
			}
		}
	}
}

// renameBlock renames one block's phis, joints and instructions using the
// active current map (u.current, already installed by the caller), then
// fills in this block's contribution to every synthesized phi and rewrites
// the value this block feeds into every pre-existing phi, at its ordinary
// CFG successors.
func (u *updater) renameBlock(idx int) {
	block := u.prog.BlockAt(idx)

	if ev := block.ExceptionVariable; ev != nil {
		block.ExceptionVariable = u.define(idx, ev)
	}

	for _, tc := range block.TryCatches {
		// Dominates is reflexive; a block that is its own handler must not
		// count as dominating it, so the handler side stays seeded from its
		// own independent root rather than the protected block's state.
		if idx != tc.Handler.Index && u.domExt.Dominates(idx, tc.Handler.Index) {
			u.renameJoints(tc)
		}
	}

	for _, sp := range u.synthPhis[idx] {
		original := sp.phi.Receiver
		w := u.introduce(original)
		w.UnionDebugNames(original)
		u.propagateToTryCatch(idx, original, w, nil)
		u.current[sp.origIndex] = w
		sp.phi.Receiver = w
	}

	for _, phi := range block.Phis {
		phi.Receiver = u.define(idx, phi.Receiver)
	}

	for _, insn := range block.Instructions {
		insn.ForEachUse(func(v *ir.Variable) *ir.Variable {
			return u.use(v)
		})
		if r := insn.Receiver(); r != nil {
			insn.SetReceiver(u.define(idx, r))
		}
	}

	for _, s := range u.cfg.Succs(idx) {
		u.fillOutgoingPhis(idx, s)
	}
}

// fillOutgoingPhis appends fromBlock's contribution to every synthesized
// phi placed at toBlock, provided fromBlock's current map actually reaches
// a definition of the original variable that phi was placed for, and
// rewrites the value of every pre-existing phi at toBlock that fromBlock
// feeds, through fromBlock's own reaching definitions.
func (u *updater) fillOutgoingPhis(fromBlock, toBlock int) {
	for _, sp := range u.synthPhis[toBlock] {
		val := u.current[sp.origIndex]
		if val == nil {
			continue
		}
		sp.phi.AddIncoming(u.prog.BlockAt(fromBlock), val)
		sp.phi.Receiver.UnionDebugNames(val)
	}

	for _, phi := range u.prog.BlockAt(toBlock).Phis {
		for i := range phi.Incomings {
			in := &phi.Incomings[i]
			if in.Source == nil || in.Source.Index != fromBlock {
				continue
			}
			in.Value = u.use(in.Value)
		}
	}
}

// introduce returns v itself the first time its index is used as a
// receiver in this procedure, and a brand-new variable from then on. This
// keeps a variable that only has one definition from ever being renamed.
func (u *updater) introduce(v *ir.Variable) *ir.Variable {
	if !u.usedDefinitions[v.Index] {
		u.usedDefinitions[v.Index] = true
		return v
	}
	return u.prog.CreateVariable()
}

// define allocates a fresh version of original variable v, records the
// transition with any try/catch joint tracking v, and installs the fresh
// variable as v's reaching definition on the active path.
func (u *updater) define(blockIdx int, v *ir.Variable) *ir.Variable {
	old := u.current[v.Index]
	w := u.introduce(v)
	w.UnionDebugNames(v)
	u.propagateToTryCatch(blockIdx, v, w, old)
	u.current[v.Index] = w
	return w
}

// use returns v's reaching definition on the active path, panicking with
// an InvariantError if none exists — a use with no dominating definition
// on some path is a malformed input, not a recoverable condition.
func (u *updater) use(v *ir.Variable) *ir.Variable {
	mapped := u.current[v.Index]
	if mapped == nil {
		panic(newInvariantError("use of %s has no reaching definition", v))
	}
	return mapped
}

func cloneVariables(src []*ir.Variable) []*ir.Variable {
	dst := make([]*ir.Variable, len(src))
	copy(dst, src)
	return dst
}
