package ir

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// wireProgram is the on-disk JSON shape for a Program, used by
// cmd/ssaupdatectl to load a procedure to run the pass on. No example repo
// in the retrieval pack ships a domain-specific serialization for this kind
// of small, tree-shaped IR, so this format is a plain stdlib encoding/json
// mapping rather than an adaptation of a third-party wire format.
type wireProgram struct {
	VariableCount int                 `json:"variableCount"`
	DebugNames    map[string][]string `json:"debugNames,omitempty"`
	Arguments     []int               `json:"arguments"`
	Blocks        []wireBlock         `json:"blocks"`
}

type wireBlock struct {
	Phis              []wirePhi         `json:"phis,omitempty"`
	Instructions      []json.RawMessage `json:"instructions"`
	TryCatch          []wireTryCatch    `json:"tryCatch,omitempty"`
	ExceptionVariable *int              `json:"exceptionVariable,omitempty"`
}

type wirePhi struct {
	Receiver  int             `json:"receiver"`
	Incomings []wireIncoming  `json:"incomings"`
}

type wireIncoming struct {
	Source int `json:"source"`
	Value  int `json:"value"`
}

type wireTryCatch struct {
	Handler int         `json:"handler"`
	Joints  []wireJoint `json:"joints,omitempty"`
}

type wireJoint struct {
	Receiver int   `json:"receiver"`
	Sources  []int `json:"sources,omitempty"`
}

// wireInstruction is the tagged-union envelope for one instruction. Only the
// fields relevant to Op are populated; the rest are left at their zero
// value.
type wireInstruction struct {
	Op string `json:"op"`

	Receiver *int `json:"receiver,omitempty"`

	// constants
	ClassName string  `json:"className,omitempty"`
	IntValue  int64   `json:"intValue,omitempty"`
	FloatVal  float64 `json:"floatValue,omitempty"`
	StrValue  string  `json:"stringValue,omitempty"`

	// operands
	Assignee  *int  `json:"assignee,omitempty"`
	Operand   *int  `json:"operand,omitempty"`
	First     *int  `json:"first,omitempty"`
	Second    *int  `json:"second,omitempty"`
	Instance  *int  `json:"instance,omitempty"`
	Value     *int  `json:"value,omitempty"`
	Array     *int  `json:"array,omitempty"`
	Index     *int  `json:"index,omitempty"`
	Size      *int  `json:"size,omitempty"`
	Args      []int `json:"args,omitempty"`
	Dims      []int `json:"dimensions,omitempty"`
	Condition *int  `json:"condition,omitempty"`
	Exception *int  `json:"exception,omitempty"`
	ObjectRef *int  `json:"objectRef,omitempty"`

	// branching
	BinOp        string `json:"binOp,omitempty"`
	BranchCond   string `json:"branchCond,omitempty"`
	Consequent   *int   `json:"consequent,omitempty"`
	Alternative  *int   `json:"alternative,omitempty"`
	Target       *int   `json:"target,omitempty"`
	Default      *int   `json:"default,omitempty"`
	Cases        []wireCase `json:"cases,omitempty"`

	// misc typed metadata
	Field     string `json:"field,omitempty"`
	Method    string `json:"method,omitempty"`
	Bootstrap string `json:"bootstrap,omitempty"`
	Type      string `json:"type,omitempty"`
	ItemType  string `json:"itemType,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Direction string `json:"direction,omitempty"`
}

type wireCase struct {
	Value  int32 `json:"value"`
	Target int   `json:"target"`
}

// Decode parses a JSON-encoded procedure into a Program, along with the
// argument variables in parameter order (suitable for internal/ssaform.Update).
func Decode(data []byte) (*Program, []*Variable, error) {
	var w wireProgram
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, nil, errors.Wrap(err, "decode program")
	}

	prog := NewProgram()
	for i := 0; i < w.VariableCount; i++ {
		prog.CreateVariable()
	}
	for idxStr, names := range w.DebugNames {
		var idx int
		if _, err := fmt.Sscanf(idxStr, "%d", &idx); err != nil {
			return nil, nil, errors.Wrapf(err, "debug name key %q", idxStr)
		}
		if idx < 0 || idx >= prog.VariableCount() {
			return nil, nil, errors.Errorf("debug name key %d out of range", idx)
		}
		for _, n := range names {
			prog.VariableAt(idx).AddDebugName(n)
		}
	}

	for range w.Blocks {
		prog.CreateBlock()
	}

	v := func(i *int) *Variable {
		if i == nil {
			return nil
		}
		return prog.VariableAt(*i)
	}
	vs := func(is []int) []*Variable {
		out := make([]*Variable, len(is))
		for i, idx := range is {
			out[i] = prog.VariableAt(idx)
		}
		return out
	}
	b := func(i *int) *BasicBlock {
		if i == nil {
			return nil
		}
		return prog.BlockAt(*i)
	}

	for bi, wb := range w.Blocks {
		block := prog.BlockAt(bi)
		if wb.ExceptionVariable != nil {
			block.ExceptionVariable = v(wb.ExceptionVariable)
		}
		for _, wp := range wb.Phis {
			phi := &Phi{Receiver: v(&wp.Receiver)}
			for _, wi := range wp.Incomings {
				phi.AddIncoming(prog.BlockAt(wi.Source), v(&wi.Value))
			}
			block.AddPhi(phi)
		}
		for _, raw := range wb.Instructions {
			insn, err := decodeInstruction(raw, v, vs, b)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "block %d", bi)
			}
			block.AddInstruction(insn)
		}
		for _, wt := range wb.TryCatch {
			tc := &TryCatchBlock{Protected: block, Handler: prog.BlockAt(wt.Handler)}
			for _, wj := range wt.Joints {
				tc.Joints = append(tc.Joints, &TryCatchJoint{
					Receiver:        v(&wj.Receiver),
					SourceVariables: vs(wj.Sources),
				})
			}
			block.AddTryCatch(tc)
		}
	}

	args := make([]*Variable, len(w.Arguments))
	for i, idx := range w.Arguments {
		args[i] = prog.VariableAt(idx)
	}
	return prog, args, nil
}

func decodeInstruction(
	raw json.RawMessage,
	v func(*int) *Variable,
	vs func([]int) []*Variable,
	b func(*int) *BasicBlock,
) (Instruction, error) {
	var w wireInstruction
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, errors.Wrap(err, "decode instruction")
	}

	switch w.Op {
	case "empty":
		return &EmptyInstruction{}, nil
	case "init_class":
		return &InitClassInstruction{ClassName: w.ClassName}, nil
	case "const_class":
		return &ClassConstantInstruction{ClassName: w.ClassName, Receiver_: v(w.Receiver)}, nil
	case "const_null":
		return &NullConstantInstruction{Receiver_: v(w.Receiver)}, nil
	case "const_int":
		return &IntegerConstantInstruction{Value: int32(w.IntValue), Receiver_: v(w.Receiver)}, nil
	case "const_long":
		return &LongConstantInstruction{Value: w.IntValue, Receiver_: v(w.Receiver)}, nil
	case "const_float":
		return &FloatConstantInstruction{Value: float32(w.FloatVal), Receiver_: v(w.Receiver)}, nil
	case "const_double":
		return &DoubleConstantInstruction{Value: w.FloatVal, Receiver_: v(w.Receiver)}, nil
	case "const_string":
		return &StringConstantInstruction{Value: w.StrValue, Receiver_: v(w.Receiver)}, nil
	case "assign":
		return &AssignInstruction{Assignee: v(w.Assignee), Receiver_: v(w.Receiver)}, nil
	case "negate":
		return &NegateInstruction{Operand: v(w.Operand), Receiver_: v(w.Receiver)}, nil
	case "binary":
		op, err := parseBinaryOp(w.BinOp)
		if err != nil {
			return nil, err
		}
		return &BinaryInstruction{Op: op, First: v(w.First), Second: v(w.Second), Receiver_: v(w.Receiver)}, nil
	case "branch":
		cond, err := parseBranchCondition(w.BranchCond)
		if err != nil {
			return nil, err
		}
		return &BranchingInstruction{
			Condition: cond, Operand: v(w.Operand),
			Consequent: b(w.Consequent), Alternative: b(w.Alternative),
		}, nil
	case "branch2":
		cond, err := parseBinaryBranchCondition(w.BranchCond)
		if err != nil {
			return nil, err
		}
		return &BinaryBranchingInstruction{
			Condition: cond, First: v(w.First), Second: v(w.Second),
			Consequent: b(w.Consequent), Alternative: b(w.Alternative),
		}, nil
	case "jump":
		return &JumpInstruction{Target: b(w.Target)}, nil
	case "switch":
		cases := make([]SwitchCase, len(w.Cases))
		for i, c := range w.Cases {
			cases[i] = SwitchCase{Value: c.Value, Target: b(&c.Target)}
		}
		return &SwitchInstruction{Condition: v(w.Condition), Cases: cases, Default: b(w.Default)}, nil
	case "exit":
		return &ExitInstruction{ValueToReturn: v(w.Value)}, nil
	case "raise":
		return &RaiseInstruction{Exception: v(w.Exception)}, nil
	case "construct":
		return &ConstructInstruction{Type: w.Type, Receiver_: v(w.Receiver)}, nil
	case "construct_array":
		return &ConstructArrayInstruction{ItemType: w.ItemType, Size: v(w.Size), Receiver_: v(w.Receiver)}, nil
	case "construct_multi_array":
		return &ConstructMultiArrayInstruction{ItemType: w.ItemType, Dimensions: vs(w.Dims), Receiver_: v(w.Receiver)}, nil
	case "get_field":
		return &GetFieldInstruction{Instance: v(w.Instance), Field: w.Field, Receiver_: v(w.Receiver)}, nil
	case "put_field":
		return &PutFieldInstruction{Instance: v(w.Instance), Field: w.Field, Value: v(w.Value)}, nil
	case "get_element":
		return &GetElementInstruction{Array: v(w.Array), Index: v(w.Index), Receiver_: v(w.Receiver)}, nil
	case "put_element":
		return &PutElementInstruction{Array: v(w.Array), Index: v(w.Index), Value: v(w.Value)}, nil
	case "invoke":
		return &InvokeInstruction{Instance: v(w.Instance), Method: w.Method, Args: vs(w.Args), Receiver_: v(w.Receiver)}, nil
	case "invoke_dynamic":
		return &InvokeDynamicInstruction{Instance: v(w.Instance), Bootstrap: w.Bootstrap, Args: vs(w.Args), Receiver_: v(w.Receiver)}, nil
	case "is_instance":
		return &IsInstanceInstruction{Value: v(w.Value), Type: w.Type, Receiver_: v(w.Receiver)}, nil
	case "cast":
		return &CastInstruction{Value: v(w.Value), Type: w.Type, Receiver_: v(w.Receiver)}, nil
	case "cast_number":
		kind, err := parseNumberKind(w.Kind)
		if err != nil {
			return nil, err
		}
		return &CastNumberInstruction{Value: v(w.Value), TargetKind: kind, Receiver_: v(w.Receiver)}, nil
	case "cast_integer":
		kind, err := parseIntegerKind(w.Kind)
		if err != nil {
			return nil, err
		}
		dir, err := parseCastDirection(w.Direction)
		if err != nil {
			return nil, err
		}
		return &CastIntegerInstruction{Value: v(w.Value), TargetKind: kind, Direction: dir, Receiver_: v(w.Receiver)}, nil
	case "array_length":
		return &ArrayLengthInstruction{Array: v(w.Array), Receiver_: v(w.Receiver)}, nil
	case "unwrap_array":
		return &UnwrapArrayInstruction{Array: v(w.Array), ElementType: w.ItemType, Receiver_: v(w.Receiver)}, nil
	case "clone_array":
		return &CloneArrayInstruction{Array: v(w.Array), Receiver_: v(w.Receiver)}, nil
	case "null_check":
		return &NullCheckInstruction{Value: v(w.Value), Receiver_: v(w.Receiver)}, nil
	case "monitor_enter":
		return &MonitorEnterInstruction{ObjectRef: v(w.ObjectRef)}, nil
	case "monitor_exit":
		return &MonitorExitInstruction{ObjectRef: v(w.ObjectRef)}, nil
	default:
		return nil, errors.Errorf("unknown instruction op %q", w.Op)
	}
}

func parseBinaryOp(s string) (BinaryOp, error) {
	switch s {
	case "add":
		return BinAdd, nil
	case "sub":
		return BinSub, nil
	case "mul":
		return BinMul, nil
	case "div":
		return BinDiv, nil
	case "mod":
		return BinMod, nil
	case "eq":
		return BinEq, nil
	case "neq":
		return BinNeq, nil
	case "lt":
		return BinLt, nil
	case "leq":
		return BinLeq, nil
	case "gt":
		return BinGt, nil
	case "geq":
		return BinGeq, nil
	default:
		return 0, errors.Errorf("unknown binOp %q", s)
	}
}

func parseBranchCondition(s string) (BranchCondition, error) {
	switch s {
	case "true":
		return BranchIfTrue, nil
	case "false":
		return BranchIfFalse, nil
	case "null":
		return BranchIfNull, nil
	case "nonnull":
		return BranchIfNonNull, nil
	default:
		return 0, errors.Errorf("unknown branchCond %q", s)
	}
}

func parseBinaryBranchCondition(s string) (BinaryBranchCondition, error) {
	switch s {
	case "eq":
		return BranchIfEqual, nil
	case "neq":
		return BranchIfNotEqual, nil
	case "refeq":
		return BranchIfRefEqual, nil
	case "refneq":
		return BranchIfRefNotEqual, nil
	default:
		return 0, errors.Errorf("unknown branchCond %q", s)
	}
}

func parseNumberKind(s string) (NumberKind, error) {
	switch s {
	case "int":
		return NumberInt, nil
	case "long":
		return NumberLong, nil
	case "float":
		return NumberFloat, nil
	case "double":
		return NumberDouble, nil
	default:
		return 0, errors.Errorf("unknown number kind %q", s)
	}
}

func parseIntegerKind(s string) (IntegerKind, error) {
	switch s {
	case "byte":
		return IntegerByte, nil
	case "short":
		return IntegerShort, nil
	case "char":
		return IntegerChar, nil
	case "int":
		return IntegerInt, nil
	default:
		return 0, errors.Errorf("unknown integer kind %q", s)
	}
}

func parseCastDirection(s string) (CastIntegerDirection, error) {
	switch s {
	case "", "narrowing":
		return CastIntegerNarrowing, nil
	case "widening":
		return CastIntegerWidening, nil
	default:
		return 0, errors.Errorf("unknown cast direction %q", s)
	}
}
