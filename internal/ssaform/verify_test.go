package ssaform

import (
	"testing"

	"github.com/ir-ssa/ssaform/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyEmptyProgramIsValid(t *testing.T) {
	prog := ir.NewProgram()
	require.NoError(t, Verify(prog))
}

func TestVerifyAcceptsWellFormedStraightLine(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	b0 := prog.CreateBlock()
	b0.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: v1})
	b0.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	assert.NoError(t, Verify(prog))
}

func TestVerifyRejectsDoublyDefinedVariable(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	b0 := prog.CreateBlock()
	// Two instructions both claim v1 as their receiver: not in SSA form.
	b0.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: v1})
	b0.AddInstruction(&ir.IntegerConstantInstruction{Value: 2, Receiver_: v1})
	b0.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	err := Verify(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 definition sites")
}

func TestVerifyRejectsUseWithNoDefinition(t *testing.T) {
	prog := ir.NewProgram()
	unbound := prog.CreateVariable()
	b0 := prog.CreateBlock()
	b0.AddInstruction(&ir.ExitInstruction{ValueToReturn: unbound})

	err := Verify(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no definition site")
}

func TestVerifyRejectsUseNotDominatedByDefinition(t *testing.T) {
	// Diamond where v1 is defined only on the left arm but used after the
	// merge without ever going through a phi: the use is reachable along the
	// right arm, where v1 is never defined.
	prog := ir.NewProgram()
	cond := prog.CreateVariable()
	v1 := prog.CreateVariable()

	entry := prog.CreateBlock()
	left := prog.CreateBlock()
	right := prog.CreateBlock()
	after := prog.CreateBlock()

	entry.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: cond})
	entry.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: left, Alternative: right})

	left.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: v1})
	left.AddInstruction(&ir.JumpInstruction{Target: after})

	right.AddInstruction(&ir.JumpInstruction{Target: after})

	after.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	err := Verify(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not dominate use")
}

func TestVerifyAcceptsPhiMissingAnIncoming(t *testing.T) {
	// A phi may legitimately carry fewer incomings than its block has CFG
	// predecessors: some path may never reach a definition of the variable
	// being merged. That is not a defect on its own.
	prog := ir.NewProgram()
	cond := prog.CreateVariable()
	v1 := prog.CreateVariable()
	vLeft := prog.CreateVariable()

	entry := prog.CreateBlock()
	left := prog.CreateBlock()
	right := prog.CreateBlock()
	after := prog.CreateBlock()

	entry.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: cond})
	entry.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: left, Alternative: right})

	left.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: vLeft})
	left.AddInstruction(&ir.JumpInstruction{Target: after})
	right.AddInstruction(&ir.JumpInstruction{Target: after})

	phi := &ir.Phi{Receiver: v1}
	phi.AddIncoming(left, vLeft)
	// right never contributes an incoming.
	after.AddPhi(phi)
	after.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	assert.NoError(t, Verify(prog))
}

func TestVerifyRejectsPhiWithExtraIncoming(t *testing.T) {
	prog := ir.NewProgram()
	cond := prog.CreateVariable()
	v1 := prog.CreateVariable()
	vLeft := prog.CreateVariable()
	vRight := prog.CreateVariable()
	vStray := prog.CreateVariable()

	entry := prog.CreateBlock()
	left := prog.CreateBlock()
	right := prog.CreateBlock()
	stray := prog.CreateBlock()
	after := prog.CreateBlock()

	entry.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: cond})
	entry.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: left, Alternative: right})

	left.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: vLeft})
	left.AddInstruction(&ir.JumpInstruction{Target: after})
	right.AddInstruction(&ir.IntegerConstantInstruction{Value: 2, Receiver_: vRight})
	right.AddInstruction(&ir.JumpInstruction{Target: after})

	// stray never jumps to after, so it is not a CFG predecessor: its
	// incoming below is bogus by construction.
	stray.AddInstruction(&ir.IntegerConstantInstruction{Value: 3, Receiver_: vStray})
	stray.AddInstruction(&ir.ExitInstruction{ValueToReturn: vStray})

	phi := &ir.Phi{Receiver: v1}
	phi.AddIncoming(left, vLeft)
	phi.AddIncoming(right, vRight)
	// stray is not a CFG predecessor of after, so this incoming is bogus.
	phi.AddIncoming(stray, vStray)
	after.AddPhi(phi)
	after.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	err := Verify(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-predecessors")
}

func TestVerifyIgnoresUnreachableBlocks(t *testing.T) {
	// A block with no predecessor and a malformed use of its own: since it
	// is unreachable from the entry, Verify does not flag its internal uses.
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	unbound := prog.CreateVariable()

	entry := prog.CreateBlock()
	entry.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: v1})
	entry.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	dead := prog.CreateBlock()
	dead.AddInstruction(&ir.ExitInstruction{ValueToReturn: unbound})

	assert.NoError(t, Verify(prog))
}

func TestVerifyOnUpdatedProgramsRoundTrips(t *testing.T) {
	prog := ir.NewProgram()
	cond := prog.CreateVariable()
	v1 := prog.CreateVariable()

	entry := prog.CreateBlock()
	left := prog.CreateBlock()
	right := prog.CreateBlock()
	after := prog.CreateBlock()

	entry.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: cond})
	entry.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: left, Alternative: right})

	left.AddInstruction(&ir.IntegerConstantInstruction{Value: 1, Receiver_: v1})
	left.AddInstruction(&ir.JumpInstruction{Target: after})
	right.AddInstruction(&ir.IntegerConstantInstruction{Value: 2, Receiver_: v1})
	right.AddInstruction(&ir.JumpInstruction{Target: after})

	after.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	Update(prog, nil)

	assert.NoError(t, Verify(prog))
}
