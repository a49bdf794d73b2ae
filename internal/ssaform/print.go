package ssaform

import (
	"fmt"
	"io"
	"strings"

	"github.com/ir-ssa/ssaform/internal/ir"
)

// Fprint writes a textual form of prog to w:
//
//	b0:
//	  v1 = const_int 1
//	  v1 = const_int 2
//	  jump b1
//	b1:
//	  phi v4 = [b0: v2, b2: v3]
//	  exit v4
func Fprint(w io.Writer, prog *ir.Program) {
	for i := 0; i < prog.BlockCount(); i++ {
		block := prog.BlockAt(i)
		fmt.Fprintf(w, "%s:\n", block)
		for _, phi := range block.Phis {
			fmt.Fprintf(w, "  phi %s\n", formatPhi(phi))
		}
		for _, tc := range block.TryCatches {
			for _, joint := range tc.Joints {
				fmt.Fprintf(w, "  joint %s\n", formatJoint(tc, joint))
			}
		}
		for _, insn := range block.Instructions {
			fmt.Fprintf(w, "  %s\n", formatInstruction(insn))
		}
	}
}

// Sprint returns Fprint's output as a string.
func Sprint(prog *ir.Program) string {
	var sb strings.Builder
	Fprint(&sb, prog)
	return sb.String()
}

func formatPhi(phi *ir.Phi) string {
	incomings := make([]string, len(phi.Incomings))
	for i, in := range phi.Incomings {
		incomings[i] = fmt.Sprintf("%s: %s", in.Source, in.Value)
	}
	return fmt.Sprintf("%s = [%s]", phi.Receiver, strings.Join(incomings, ", "))
}

func formatJoint(tc *ir.TryCatchBlock, joint *ir.TryCatchJoint) string {
	sources := make([]string, len(joint.SourceVariables))
	for i, sv := range joint.SourceVariables {
		sources[i] = sv.String()
	}
	return fmt.Sprintf("%s = {%s} @ try(%s->%s)", joint.Receiver, strings.Join(sources, ", "), tc.Protected, tc.Handler)
}

func formatInstruction(insn ir.Instruction) string {
	def := ""
	if r := insn.Receiver(); r != nil {
		def = r.String() + " = "
	}

	switch i := insn.(type) {
	case *ir.EmptyInstruction:
		return "empty"
	case *ir.InitClassInstruction:
		return fmt.Sprintf("init_class %s", i.ClassName)
	case *ir.ClassConstantInstruction:
		return fmt.Sprintf("%sconst_class %s", def, i.ClassName)
	case *ir.NullConstantInstruction:
		return fmt.Sprintf("%sconst_null", def)
	case *ir.IntegerConstantInstruction:
		return fmt.Sprintf("%sconst_int %d", def, i.Value)
	case *ir.LongConstantInstruction:
		return fmt.Sprintf("%sconst_long %d", def, i.Value)
	case *ir.FloatConstantInstruction:
		return fmt.Sprintf("%sconst_float %g", def, i.Value)
	case *ir.DoubleConstantInstruction:
		return fmt.Sprintf("%sconst_double %g", def, i.Value)
	case *ir.StringConstantInstruction:
		return fmt.Sprintf("%sconst_string %q", def, i.Value)
	case *ir.AssignInstruction:
		return fmt.Sprintf("%sassign %s", def, i.Assignee)
	case *ir.NegateInstruction:
		return fmt.Sprintf("%snegate %s", def, i.Operand)
	case *ir.BinaryInstruction:
		return fmt.Sprintf("%s%s %s, %s", def, binaryOpName(i.Op), i.First, i.Second)
	case *ir.BranchingInstruction:
		return fmt.Sprintf("branch %s %s -> %s, %s", branchConditionName(i.Condition), i.Operand, i.Consequent, i.Alternative)
	case *ir.BinaryBranchingInstruction:
		return fmt.Sprintf("branch2 %s %s, %s -> %s, %s", binaryBranchConditionName(i.Condition), i.First, i.Second, i.Consequent, i.Alternative)
	case *ir.JumpInstruction:
		return fmt.Sprintf("jump %s", i.Target)
	case *ir.SwitchInstruction:
		cases := make([]string, len(i.Cases))
		for j, c := range i.Cases {
			cases[j] = fmt.Sprintf("%d: %s", c.Value, c.Target)
		}
		return fmt.Sprintf("switch %s [%s] default %s", i.Condition, strings.Join(cases, ", "), i.Default)
	case *ir.ExitInstruction:
		if i.ValueToReturn == nil {
			return "exit"
		}
		return fmt.Sprintf("exit %s", i.ValueToReturn)
	case *ir.RaiseInstruction:
		return fmt.Sprintf("raise %s", i.Exception)
	case *ir.ConstructInstruction:
		return fmt.Sprintf("%sconstruct %s", def, i.Type)
	case *ir.ConstructArrayInstruction:
		return fmt.Sprintf("%sconstruct_array %s[%s]", def, i.ItemType, i.Size)
	case *ir.ConstructMultiArrayInstruction:
		dims := make([]string, len(i.Dimensions))
		for j, d := range i.Dimensions {
			dims[j] = d.String()
		}
		return fmt.Sprintf("%sconstruct_multi_array %s[%s]", def, i.ItemType, strings.Join(dims, ", "))
	case *ir.GetFieldInstruction:
		return fmt.Sprintf("%sget_field %s.%s", def, instanceOrStatic(i.Instance), i.Field)
	case *ir.PutFieldInstruction:
		return fmt.Sprintf("put_field %s.%s = %s", instanceOrStatic(i.Instance), i.Field, i.Value)
	case *ir.GetElementInstruction:
		return fmt.Sprintf("%sget_element %s[%s]", def, i.Array, i.Index)
	case *ir.PutElementInstruction:
		return fmt.Sprintf("put_element %s[%s] = %s", i.Array, i.Index, i.Value)
	case *ir.InvokeInstruction:
		return fmt.Sprintf("%sinvoke %s.%s(%s)", def, instanceOrStatic(i.Instance), i.Method, formatArgs(i.Args))
	case *ir.InvokeDynamicInstruction:
		return fmt.Sprintf("%sinvoke_dynamic %s.%s(%s)", def, instanceOrStatic(i.Instance), i.Bootstrap, formatArgs(i.Args))
	case *ir.IsInstanceInstruction:
		return fmt.Sprintf("%sis_instance %s, %s", def, i.Value, i.Type)
	case *ir.CastInstruction:
		return fmt.Sprintf("%scast %s, %s", def, i.Value, i.Type)
	case *ir.CastNumberInstruction:
		return fmt.Sprintf("%scast_number %s", def, i.Value)
	case *ir.CastIntegerInstruction:
		return fmt.Sprintf("%scast_integer %s", def, i.Value)
	case *ir.ArrayLengthInstruction:
		return fmt.Sprintf("%sarray_length %s", def, i.Array)
	case *ir.UnwrapArrayInstruction:
		return fmt.Sprintf("%sunwrap_array %s", def, i.Array)
	case *ir.CloneArrayInstruction:
		return fmt.Sprintf("%sclone_array %s", def, i.Array)
	case *ir.NullCheckInstruction:
		return fmt.Sprintf("%snull_check %s", def, i.Value)
	case *ir.MonitorEnterInstruction:
		return fmt.Sprintf("monitor_enter %s", i.ObjectRef)
	case *ir.MonitorExitInstruction:
		return fmt.Sprintf("monitor_exit %s", i.ObjectRef)
	default:
		return fmt.Sprintf("<unknown instruction %T>", insn)
	}
}

func instanceOrStatic(v *ir.Variable) string {
	if v == nil {
		return "static"
	}
	return v.String()
}

func formatArgs(args []*ir.Variable) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

func binaryOpName(op ir.BinaryOp) string {
	names := [...]string{"add", "sub", "mul", "div", "mod", "eq", "neq", "lt", "leq", "gt", "geq"}
	if int(op) < len(names) {
		return names[op]
	}
	return "binary?"
}

func branchConditionName(c ir.BranchCondition) string {
	names := [...]string{"true", "false", "null", "nonnull"}
	if int(c) < len(names) {
		return names[c]
	}
	return "branch?"
}

func binaryBranchConditionName(c ir.BinaryBranchCondition) string {
	names := [...]string{"eq", "neq", "refeq", "refneq"}
	if int(c) < len(names) {
		return names[c]
	}
	return "branch2?"
}
