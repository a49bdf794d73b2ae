package ssaform

import "github.com/ir-ssa/ssaform/internal/ir"

// synthPhi is a phi the placement stage inserted for original variable
// origIndex, kept apart from the block's pre-existing phis until renaming
// finishes and either discards it (never got an incoming) or splices it
// into the block's real phi list.
type synthPhi struct {
	origIndex int
	phi       *ir.Phi
}

// estimatePhis walks every block once, recording an assignment for every
// variable a block defines: its exception variable (if it is a handler
// entry), every pre-existing phi's receiver, every instruction's receiver,
// and every try/catch joint receiver declared on it.
func (u *updater) estimatePhis() {
	for i := 0; i < u.prog.BlockCount(); i++ {
		block := u.prog.BlockAt(i)

		if block.ExceptionVariable != nil {
			u.markAssignment(block.ExceptionVariable.Index, i)
		}
		for _, phi := range block.Phis {
			u.markAssignment(phi.Receiver.Index, i)
		}
		for _, insn := range block.Instructions {
			if def := extractDefinition(insn); def != nil {
				u.markAssignment(def.Index, i)
			}
		}
		for _, tc := range block.TryCatches {
			for _, joint := range tc.Joints {
				u.markAssignment(joint.Receiver.Index, i)
			}
		}
	}
}

// markAssignment runs the iterated-dominance-frontier worklist for one
// assignment of original variable origIndex at block start: every block in
// the frontier of a block already on the worklist gets an empty synthesized
// phi for origIndex, unless one is already there.
func (u *updater) markAssignment(origIndex, start int) {
	worklist := []int{start}
	for len(worklist) > 0 {
		x := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, f := range u.df[x] {
			if u.hasSynthPhi(f, origIndex) {
				continue
			}
			if u.hasExistingIncoming(f, x, origIndex) {
				continue
			}
			u.addSynthPhi(f, origIndex)
			worklist = append(worklist, f)
		}
	}
}

func (u *updater) hasSynthPhi(block, origIndex int) bool {
	_, ok := u.synthIndex[block][origIndex]
	return ok
}

func (u *updater) addSynthPhi(block, origIndex int) {
	if u.synthIndex[block] == nil {
		u.synthIndex[block] = make(map[int]int)
	}
	u.synthIndex[block][origIndex] = len(u.synthPhis[block])
	u.synthPhis[block] = append(u.synthPhis[block], &synthPhi{
		origIndex: origIndex,
		phi:       &ir.Phi{Receiver: u.prog.VariableAt(origIndex)},
	})
}

// hasExistingIncoming reports whether block already carries a pre-existing
// phi with an incoming exactly ⟨source, origIndex⟩, which placement treats
// as though a synthesized phi were already there.
func (u *updater) hasExistingIncoming(block, source, origIndex int) bool {
	for _, phi := range u.prog.BlockAt(block).Phis {
		for _, in := range phi.Incomings {
			if in.Source != nil && in.Source.Index == source &&
				in.Value != nil && in.Value.Index == origIndex {
				return true
			}
		}
	}
	return false
}
