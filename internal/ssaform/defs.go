package ssaform

import "github.com/ir-ssa/ssaform/internal/ir"

// extractDefinition returns the variable an instruction defines, or nil if
// the instruction defines none. Every ir.Instruction shape already exposes
// its receiver directly, so unlike a hand-written definition-extractor
// visitor over the closed shape set, this reduces to one generic dispatch.
func extractDefinition(insn ir.Instruction) *ir.Variable {
	return insn.Receiver()
}
