package ir

import "fmt"

// BasicBlock is a single node of a procedure's control-flow graph: an
// ordered list of phis, an ordered list of instructions ending in a
// terminator, and the try/catch regions it is protected by.
type BasicBlock struct {
	// Index uniquely identifies the block within its Program, in
	// [0, Program.BlockCount()).
	Index int

	// Phis holds the block's pre-existing phi-functions, in program order.
	// The construction pass appends its own synthesized phis here once
	// renaming completes; it never removes an existing one.
	Phis []*Phi

	// Instructions holds the block's instructions in execution order. The
	// last element, if any, is expected to be a Terminator for blocks that
	// end the procedure's normal control flow (Exit/Raise are also valid
	// terminal instructions with no CFG successors).
	Instructions []Instruction

	// TryCatches lists the try/catch regions protecting this block.
	TryCatches []*TryCatchBlock

	// ExceptionVariable is non-nil when this block is a handler entry: the
	// variable is implicitly defined at block entry by the runtime, not by
	// any instruction, phi, or joint.
	ExceptionVariable *Variable
}

// NewBasicBlock is exported for tests and IR builders that need to wire up
// blocks by hand; Program.CreateBlock is the normal entry point.
func NewBasicBlock(index int) *BasicBlock {
	return &BasicBlock{Index: index}
}

// String returns a short textual form (e.g. "b2") for diagnostics.
func (b *BasicBlock) String() string {
	if b == nil {
		return "<nil block>"
	}
	return fmt.Sprintf("b%d", b.Index)
}

// Terminator returns the block's last instruction if it implements
// Terminator, or nil otherwise. Exit and Raise implement Terminator with no
// targets, so a block ending in either has no ordinary CFG successors.
func (b *BasicBlock) Terminator() Terminator {
	if len(b.Instructions) == 0 {
		return nil
	}
	t, _ := b.Instructions[len(b.Instructions)-1].(Terminator)
	return t
}

// Successors returns the block's normal (non-exceptional) CFG successors,
// derived from its terminator instruction. Exception edges are not included
// here; they are represented separately by TryCatches and consumed by the
// pass's joint handling instead of ordinary phi placement.
func (b *BasicBlock) Successors() []*BasicBlock {
	t := b.Terminator()
	if t == nil {
		return nil
	}
	targets := t.Targets()
	out := make([]*BasicBlock, 0, len(targets))
	for _, tgt := range targets {
		if tgt != nil {
			out = append(out, tgt)
		}
	}
	return out
}

// AddInstruction appends an instruction to the block.
func (b *BasicBlock) AddInstruction(insn Instruction) {
	b.Instructions = append(b.Instructions, insn)
}

// AddPhi appends a pre-existing phi to the block.
func (b *BasicBlock) AddPhi(phi *Phi) {
	b.Phis = append(b.Phis, phi)
}

// AddTryCatch registers a try/catch region protecting this block.
func (b *BasicBlock) AddTryCatch(tc *TryCatchBlock) {
	b.TryCatches = append(b.TryCatches, tc)
}
