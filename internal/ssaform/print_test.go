package ssaform

import (
	"strings"
	"testing"

	"github.com/ir-ssa/ssaform/internal/ir"
	"github.com/stretchr/testify/assert"
)

func TestSprintStraightLine(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	b0 := prog.CreateBlock()
	b0.AddInstruction(&ir.IntegerConstantInstruction{Value: 42, Receiver_: v1})
	b0.AddInstruction(&ir.ExitInstruction{ValueToReturn: v1})

	out := Sprint(prog)
	assert.True(t, strings.HasPrefix(out, "b0:\n"))
	assert.Contains(t, out, "v0 = const_int 42")
	assert.Contains(t, out, "exit v0")
}

func TestSprintPhiAndJoint(t *testing.T) {
	prog := ir.NewProgram()
	v1 := prog.CreateVariable()
	b0 := prog.CreateBlock()
	b1 := prog.CreateBlock()

	phi := &ir.Phi{Receiver: v1}
	phi.AddIncoming(b0, v1)
	b1.AddPhi(phi)

	joint := &ir.TryCatchJoint{Receiver: v1, SourceVariables: []*ir.Variable{v1}}
	b0.AddTryCatch(&ir.TryCatchBlock{Protected: b0, Handler: b1, Joints: []*ir.TryCatchJoint{joint}})

	out := Sprint(prog)
	assert.Contains(t, out, "phi v0 = [b0: v0]")
	assert.Contains(t, out, "joint v0 = {v0} @ try(b0->b1)")
}

func TestFormatInstructionUnaryAndVoidShapes(t *testing.T) {
	array := &ir.Variable{Index: 0}
	assert.Equal(t, "monitor_enter v0", formatInstruction(&ir.MonitorEnterInstruction{ObjectRef: array}))
	assert.Equal(t, "exit", formatInstruction(&ir.ExitInstruction{}))
	assert.Equal(t, "init_class java.lang.Object", formatInstruction(&ir.InitClassInstruction{ClassName: "java.lang.Object"}))
}
