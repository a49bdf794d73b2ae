package ssaform

import (
	"testing"

	"github.com/ir-ssa/ssaform/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmptyProgramIsNoOp(t *testing.T) {
	prog := ir.NewProgram()
	assert.NotPanics(t, func() { Update(prog, nil) })
	assert.Equal(t, 0, prog.BlockCount())
}

func TestUpdateStraightLineReusesFirstReceiverThenAllocates(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	v1.AddDebugName("x")

	b0 := prog.CreateBlock()
	b1 := prog.CreateBlock()

	first := &ir.IntegerConstantInstruction{Value: 1, Receiver_: v1}
	second := &ir.IntegerConstantInstruction{Value: 2, Receiver_: v1}
	b0.AddInstruction(first)
	b0.AddInstruction(second)
	b0.AddInstruction(&ir.JumpInstruction{Target: b1})

	exit := &ir.ExitInstruction{ValueToReturn: v1}
	b1.AddInstruction(exit)

	Update(prog, nil)

	require.Equal(t, v1, first.Receiver(), "the first definition of a variable reuses it")
	require.NotEqual(t, v1, second.Receiver(), "a redefinition allocates a fresh version")
	assert.True(t, second.Receiver().HasDebugName("x"), "fresh versions inherit debug names")
	assert.Equal(t, second.Receiver(), exit.ValueToReturn, "the use downstream resolves to the last reaching definition")
	assert.Empty(t, b1.Phis, "no merge point exists on a straight line")

	require.NoError(t, Verify(prog))
}

func TestUpdateDiamondMergesBothArms(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()

	b0 := prog.CreateBlock()
	b1 := prog.CreateBlock()
	b2 := prog.CreateBlock()
	b3 := prog.CreateBlock()

	cond := prog.CreateVariable()
	b0.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: b1, Alternative: b2})

	left := &ir.IntegerConstantInstruction{Value: 1, Receiver_: v1}
	b1.AddInstruction(left)
	b1.AddInstruction(&ir.JumpInstruction{Target: b3})

	right := &ir.IntegerConstantInstruction{Value: 2, Receiver_: v1}
	b2.AddInstruction(right)
	b2.AddInstruction(&ir.JumpInstruction{Target: b3})

	exit := &ir.ExitInstruction{ValueToReturn: v1}
	b3.AddInstruction(exit)

	Update(prog, []*ir.Variable{cond})

	require.Len(t, b3.Phis, 1, "the join block gets exactly one synthesized phi for v1")
	phi := b3.Phis[0]
	require.Len(t, phi.Incomings, 2)

	incomingBySource := map[*ir.BasicBlock]*ir.Variable{}
	for _, in := range phi.Incomings {
		incomingBySource[in.Source] = in.Value
	}
	assert.Equal(t, left.Receiver(), incomingBySource[b1])
	assert.Equal(t, right.Receiver(), incomingBySource[b2])
	assert.Equal(t, phi.Receiver, exit.ValueToReturn, "the return value resolves to the phi")

	require.NoError(t, Verify(prog))
}

func TestUpdateLoopPhiFeedsBackIntoHeader(t *testing.T) {
	prog := ir.NewProgram()
	arg := prog.CreateVariable()
	v1 := prog.CreateVariable()
	tmp := prog.CreateVariable()

	b0 := prog.CreateBlock()
	b1 := prog.CreateBlock()
	b2 := prog.CreateBlock()

	init := &ir.IntegerConstantInstruction{Value: 0, Receiver_: v1}
	b0.AddInstruction(init)
	b0.AddInstruction(&ir.JumpInstruction{Target: b1})

	read := &ir.NegateInstruction{Operand: v1, Receiver_: tmp}
	next := &ir.IntegerConstantInstruction{Value: 5, Receiver_: v1}
	branch := &ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: arg, Consequent: b1, Alternative: b2}
	b1.AddInstruction(read)
	b1.AddInstruction(next)
	b1.AddInstruction(branch)

	exit := &ir.ExitInstruction{ValueToReturn: v1}
	b2.AddInstruction(exit)

	Update(prog, []*ir.Variable{arg})

	// tmp is also defined inside the loop, so the header carries a second,
	// partial phi for it (fed only by the back edge). It is placed first,
	// since the negate defining tmp precedes the constant redefining v1.
	require.Len(t, b1.Phis, 2, "the loop header merges the pre-header value with the back edge")
	phi := b1.Phis[1]
	require.Len(t, phi.Incomings, 2)
	assert.Equal(t, read.Operand, phi.Receiver, "the read inside the loop resolves to the header phi, not the pre-header constant")

	incomingBySource := map[*ir.BasicBlock]*ir.Variable{}
	for _, in := range phi.Incomings {
		incomingBySource[in.Source] = in.Value
	}
	assert.Equal(t, init.Receiver(), incomingBySource[b0])
	assert.Equal(t, next.Receiver(), incomingBySource[b1])

	require.NoError(t, Verify(prog))
}

func TestUpdateArgumentsSeedInitialVersion(t *testing.T) {
	prog := ir.NewProgram()
	arg := prog.CreateVariable()
	arg.AddDebugName("n")

	b0 := prog.CreateBlock()
	exit := &ir.ExitInstruction{ValueToReturn: arg}
	b0.AddInstruction(exit)

	Update(prog, []*ir.Variable{arg})

	assert.Equal(t, arg, exit.ValueToReturn, "an argument used without any redefinition resolves to itself")
	require.NoError(t, Verify(prog))
}

func TestUpdateTryCatchJointCollectsSourceVersions(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()

	protected := prog.CreateBlock()
	handler := prog.CreateBlock()
	after := prog.CreateBlock()

	joint := &ir.TryCatchJoint{Receiver: v1}
	tc := &ir.TryCatchBlock{Protected: protected, Handler: handler, Joints: []*ir.TryCatchJoint{joint}}
	protected.AddTryCatch(tc)

	before := &ir.IntegerConstantInstruction{Value: 1, Receiver_: v1}
	risky := &ir.IntegerConstantInstruction{Value: 2, Receiver_: v1}
	protected.AddInstruction(before)
	protected.AddInstruction(risky)
	protected.AddInstruction(&ir.JumpInstruction{Target: after})

	excVar := prog.CreateVariable()
	handler.ExceptionVariable = excVar
	// The handler is only reachable along the exception edge that Update's
	// ordinary dominator walk does not traverse, so its own instructions can
	// only use values it defines or has seeded itself (its exception
	// variable), never joint.Receiver directly.
	handlerExit := &ir.ExitInstruction{ValueToReturn: excVar}
	handler.AddInstruction(handlerExit)

	afterExit := &ir.ExitInstruction{ValueToReturn: v1}
	after.AddInstruction(afterExit)

	Update(prog, nil)

	require.NotNil(t, joint.Receiver)
	require.NotEmpty(t, joint.SourceVariables, "the joint accumulates the versions defined along the protected block")
	assert.Contains(t, joint.SourceVariables, before.Receiver())
	assert.Contains(t, joint.SourceVariables, risky.Receiver())
	assert.Equal(t, handler.ExceptionVariable, handlerExit.ValueToReturn, "the handler's exception variable is seeded at entry and usable by its own instructions")

	require.NoError(t, Verify(prog))
}

func TestUpdateUnusedDefinitionOnOneArmIsKeptPartial(t *testing.T) {
	// A diamond where only one arm defines v1. Dominance-frontier placement
	// schedules a phi at the join (v1's definer's frontier reaches it); only
	// the defining arm ever contributes an incoming, since the other path
	// never reaches a definition. A phi that collects at least one incoming
	// is a real, if partial, merge point and is kept rather than discarded.
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	cond := prog.CreateVariable()

	b0 := prog.CreateBlock()
	b1 := prog.CreateBlock()
	b2 := prog.CreateBlock()
	b3 := prog.CreateBlock()

	b0.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: b1, Alternative: b2})

	def := &ir.IntegerConstantInstruction{Value: 1, Receiver_: v1}
	b1.AddInstruction(def)
	b1.AddInstruction(&ir.JumpInstruction{Target: b3})

	b2.AddInstruction(&ir.JumpInstruction{Target: b3})

	b3.AddInstruction(&ir.ExitInstruction{})

	Update(prog, []*ir.Variable{cond})

	require.Len(t, b3.Phis, 1, "a phi with at least one incoming is kept even when short of the full predecessor set")
	phi := b3.Phis[0]
	require.Len(t, phi.Incomings, 1)
	assert.Same(t, b1, phi.Incomings[0].Source)
	assert.Equal(t, def.Receiver(), phi.Incomings[0].Value)

	require.NoError(t, Verify(prog))
}

func TestUpdatePreExistingPhiIncomingValuesAreRenamed(t *testing.T) {
	// A diamond with a hand-written phi already at the join. Both arms
	// redefine the variable the phi merges, so its incoming values (as
	// decoded from a wire program) still name the pre-rename variable; the
	// pass must rewrite them to each arm's actual reaching definition, not
	// just rename the phi's own receiver.
	prog := ir.NewProgram()
	cond := prog.CreateVariable()
	v1 := prog.CreateVariable()

	b0 := prog.CreateBlock()
	b1 := prog.CreateBlock()
	b2 := prog.CreateBlock()
	b3 := prog.CreateBlock()

	b0.AddInstruction(&ir.BranchingInstruction{Condition: ir.BranchIfTrue, Operand: cond, Consequent: b1, Alternative: b2})

	left := &ir.IntegerConstantInstruction{Value: 1, Receiver_: v1}
	b1.AddInstruction(left)
	b1.AddInstruction(&ir.JumpInstruction{Target: b3})

	right := &ir.IntegerConstantInstruction{Value: 2, Receiver_: v1}
	b2.AddInstruction(right)
	b2.AddInstruction(&ir.JumpInstruction{Target: b3})

	phi := &ir.Phi{Receiver: v1}
	phi.AddIncoming(b1, v1)
	phi.AddIncoming(b2, v1)
	b3.AddPhi(phi)

	exit := &ir.ExitInstruction{ValueToReturn: v1}
	b3.AddInstruction(exit)

	Update(prog, []*ir.Variable{cond})

	require.Len(t, phi.Incomings, 2)
	incomingBySource := map[*ir.BasicBlock]*ir.Variable{}
	for _, in := range phi.Incomings {
		incomingBySource[in.Source] = in.Value
	}
	assert.Equal(t, left.Receiver(), incomingBySource[b1], "the incoming from b1 resolves to b1's own reaching definition")
	assert.Equal(t, right.Receiver(), incomingBySource[b2], "the incoming from b2 resolves to b2's own reaching definition")
	assert.NotEqual(t, left.Receiver(), right.Receiver(), "the two arms define distinct SSA versions")

	require.NoError(t, Verify(prog))
}
