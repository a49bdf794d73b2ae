package ir

// Instruction is a single three-address IR instruction. Every instruction
// shape the IR defines implements this interface; the extractor and the
// renamer in internal/ssaform are polymorphic over the full set via
// ForEachUse and the receiver accessors, so the shape enumeration below is
// the single place a new instruction shape needs to be taught to the pass.
type Instruction interface {
	// Accept dispatches to the matching Visitor method.
	Accept(v Visitor)

	// ForEachUse calls fn once per use operand, in a fixed order per shape
	// (the invoke shapes visit their arguments before the instance),
	// replacing the operand with fn's return value. Implementations
	// must call fn even when passing through unchanged (fn(x) may still
	// have to run to record a use).
	ForEachUse(fn func(*Variable) *Variable)

	// Receiver returns the instruction's def operand, or nil if this shape
	// defines no variable.
	Receiver() *Variable

	// SetReceiver replaces the def operand. Only meaningful when Receiver
	// would return non-nil.
	SetReceiver(v *Variable)
}

// Terminator is implemented by the instruction shapes that end a basic
// block and determine its normal (non-exceptional) CFG successors.
type Terminator interface {
	Instruction
	Targets() []*BasicBlock
}

// Visitor dispatches over the full, closed set of instruction shapes.
// Nothing in internal/ssaform implements it: the pass uses ForEachUse /
// Receiver / SetReceiver, and the pretty-printer uses a type switch. Visitor
// is there for callers that want to dispatch by shape through Accept.
type Visitor interface {
	VisitEmpty(*EmptyInstruction)
	VisitClassConstant(*ClassConstantInstruction)
	VisitNullConstant(*NullConstantInstruction)
	VisitIntegerConstant(*IntegerConstantInstruction)
	VisitLongConstant(*LongConstantInstruction)
	VisitFloatConstant(*FloatConstantInstruction)
	VisitDoubleConstant(*DoubleConstantInstruction)
	VisitStringConstant(*StringConstantInstruction)
	VisitAssign(*AssignInstruction)
	VisitNegate(*NegateInstruction)
	VisitBinary(*BinaryInstruction)
	VisitBranching(*BranchingInstruction)
	VisitBinaryBranching(*BinaryBranchingInstruction)
	VisitJump(*JumpInstruction)
	VisitSwitch(*SwitchInstruction)
	VisitExit(*ExitInstruction)
	VisitRaise(*RaiseInstruction)
	VisitConstruct(*ConstructInstruction)
	VisitConstructArray(*ConstructArrayInstruction)
	VisitConstructMultiArray(*ConstructMultiArrayInstruction)
	VisitGetField(*GetFieldInstruction)
	VisitPutField(*PutFieldInstruction)
	VisitGetElement(*GetElementInstruction)
	VisitPutElement(*PutElementInstruction)
	VisitInvoke(*InvokeInstruction)
	VisitInvokeDynamic(*InvokeDynamicInstruction)
	VisitIsInstance(*IsInstanceInstruction)
	VisitCast(*CastInstruction)
	VisitCastNumber(*CastNumberInstruction)
	VisitCastInteger(*CastIntegerInstruction)
	VisitArrayLength(*ArrayLengthInstruction)
	VisitUnwrapArray(*UnwrapArrayInstruction)
	VisitCloneArray(*CloneArrayInstruction)
	VisitInitClass(*InitClassInstruction)
	VisitNullCheck(*NullCheckInstruction)
	VisitMonitorEnter(*MonitorEnterInstruction)
	VisitMonitorExit(*MonitorExitInstruction)
}

// BinaryOp names an arithmetic or comparison binary opcode.
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNeq
	BinLt
	BinLeq
	BinGt
	BinGeq
)

// BranchCondition names a unary branch test.
type BranchCondition int

const (
	BranchIfTrue BranchCondition = iota
	BranchIfFalse
	BranchIfNull
	BranchIfNonNull
)

// BinaryBranchCondition names a two-operand branch test.
type BinaryBranchCondition int

const (
	BranchIfEqual BinaryBranchCondition = iota
	BranchIfNotEqual
	BranchIfRefEqual
	BranchIfRefNotEqual
)

// NumberKind names a numeric cast target for CastNumberInstruction.
type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberLong
	NumberFloat
	NumberDouble
)

// IntegerKind names an integer width for CastIntegerInstruction.
type IntegerKind int

const (
	IntegerByte IntegerKind = iota
	IntegerShort
	IntegerChar
	IntegerInt
)

// CastIntegerDirection distinguishes narrowing/widening for CastIntegerInstruction.
type CastIntegerDirection int

const (
	CastIntegerNarrowing CastIntegerDirection = iota
	CastIntegerWidening
)

// ---- no uses, no receiver -------------------------------------------------

// EmptyInstruction is a no-op placeholder left by earlier passes.
type EmptyInstruction struct{}

func (i *EmptyInstruction) Accept(v Visitor) { v.VisitEmpty(i) }
func (i *EmptyInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *EmptyInstruction) Receiver() *Variable { return nil }
func (i *EmptyInstruction) SetReceiver(*Variable) {}

// InitClassInstruction triggers static class initialization.
type InitClassInstruction struct {
	ClassName string
}

func (i *InitClassInstruction) Accept(v Visitor) { v.VisitInitClass(i) }
func (i *InitClassInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *InitClassInstruction) Receiver() *Variable { return nil }
func (i *InitClassInstruction) SetReceiver(*Variable) {}

// ---- typed constants: no uses, receiver -----------------------------------

type ClassConstantInstruction struct {
	ClassName string
	Receiver_ *Variable
}

func (i *ClassConstantInstruction) Accept(v Visitor) { v.VisitClassConstant(i) }
func (i *ClassConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *ClassConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *ClassConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type NullConstantInstruction struct {
	Receiver_ *Variable
}

func (i *NullConstantInstruction) Accept(v Visitor) { v.VisitNullConstant(i) }
func (i *NullConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *NullConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *NullConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type IntegerConstantInstruction struct {
	Value     int32
	Receiver_ *Variable
}

func (i *IntegerConstantInstruction) Accept(v Visitor) { v.VisitIntegerConstant(i) }
func (i *IntegerConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *IntegerConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *IntegerConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type LongConstantInstruction struct {
	Value     int64
	Receiver_ *Variable
}

func (i *LongConstantInstruction) Accept(v Visitor) { v.VisitLongConstant(i) }
func (i *LongConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *LongConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *LongConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type FloatConstantInstruction struct {
	Value     float32
	Receiver_ *Variable
}

func (i *FloatConstantInstruction) Accept(v Visitor) { v.VisitFloatConstant(i) }
func (i *FloatConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *FloatConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *FloatConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type DoubleConstantInstruction struct {
	Value     float64
	Receiver_ *Variable
}

func (i *DoubleConstantInstruction) Accept(v Visitor) { v.VisitDoubleConstant(i) }
func (i *DoubleConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *DoubleConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *DoubleConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type StringConstantInstruction struct {
	Value     string
	Receiver_ *Variable
}

func (i *StringConstantInstruction) Accept(v Visitor) { v.VisitStringConstant(i) }
func (i *StringConstantInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *StringConstantInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *StringConstantInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

// ---- assign / unary negate / binary arithmetic ----------------------------

// AssignInstruction copies Assignee's value into Receiver.
type AssignInstruction struct {
	Assignee  *Variable
	Receiver_ *Variable
}

func (i *AssignInstruction) Accept(v Visitor) { v.VisitAssign(i) }
func (i *AssignInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Assignee = fn(i.Assignee)
}
func (i *AssignInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *AssignInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type NegateInstruction struct {
	Operand   *Variable
	Receiver_ *Variable
}

func (i *NegateInstruction) Accept(v Visitor) { v.VisitNegate(i) }
func (i *NegateInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Operand = fn(i.Operand)
}
func (i *NegateInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *NegateInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type BinaryInstruction struct {
	Op            BinaryOp
	First, Second *Variable
	Receiver_     *Variable
}

func (i *BinaryInstruction) Accept(v Visitor) { v.VisitBinary(i) }
func (i *BinaryInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.First = fn(i.First)
	i.Second = fn(i.Second)
}
func (i *BinaryInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *BinaryInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

// ---- branching: no receiver, and terminate their block --------------------

type BranchingInstruction struct {
	Condition               BranchCondition
	Operand                 *Variable
	Consequent, Alternative *BasicBlock
}

func (i *BranchingInstruction) Accept(v Visitor) { v.VisitBranching(i) }
func (i *BranchingInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Operand = fn(i.Operand)
}
func (i *BranchingInstruction) Receiver() *Variable { return nil }
func (i *BranchingInstruction) SetReceiver(*Variable) {}
func (i *BranchingInstruction) Targets() []*BasicBlock {
	return []*BasicBlock{i.Consequent, i.Alternative}
}

type BinaryBranchingInstruction struct {
	Condition               BinaryBranchCondition
	First, Second           *Variable
	Consequent, Alternative *BasicBlock
}

func (i *BinaryBranchingInstruction) Accept(v Visitor) { v.VisitBinaryBranching(i) }
func (i *BinaryBranchingInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.First = fn(i.First)
	i.Second = fn(i.Second)
}
func (i *BinaryBranchingInstruction) Receiver() *Variable { return nil }
func (i *BinaryBranchingInstruction) SetReceiver(*Variable) {}
func (i *BinaryBranchingInstruction) Targets() []*BasicBlock {
	return []*BasicBlock{i.Consequent, i.Alternative}
}

type JumpInstruction struct {
	Target *BasicBlock
}

func (i *JumpInstruction) Accept(v Visitor) { v.VisitJump(i) }
func (i *JumpInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *JumpInstruction) Receiver() *Variable { return nil }
func (i *JumpInstruction) SetReceiver(*Variable) {}
func (i *JumpInstruction) Targets() []*BasicBlock { return []*BasicBlock{i.Target} }

// SwitchCase pairs a matched constant with the block to jump to.
type SwitchCase struct {
	Value  int32
	Target *BasicBlock
}

type SwitchInstruction struct {
	Condition *Variable
	Cases     []SwitchCase
	Default   *BasicBlock
}

func (i *SwitchInstruction) Accept(v Visitor) { v.VisitSwitch(i) }
func (i *SwitchInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Condition = fn(i.Condition)
}
func (i *SwitchInstruction) Receiver() *Variable { return nil }
func (i *SwitchInstruction) SetReceiver(*Variable) {}
func (i *SwitchInstruction) Targets() []*BasicBlock {
	targets := make([]*BasicBlock, 0, len(i.Cases)+1)
	for _, c := range i.Cases {
		targets = append(targets, c.Target)
	}
	if i.Default != nil {
		targets = append(targets, i.Default)
	}
	return targets
}

// ---- exit / raise: terminate abnormally or return -------------------------

// ExitInstruction returns from the procedure. ValueToReturn is nil for a
// void return.
type ExitInstruction struct {
	ValueToReturn *Variable
}

func (i *ExitInstruction) Accept(v Visitor) { v.VisitExit(i) }
func (i *ExitInstruction) ForEachUse(fn func(*Variable) *Variable) {
	if i.ValueToReturn != nil {
		i.ValueToReturn = fn(i.ValueToReturn)
	}
}
func (i *ExitInstruction) Receiver() *Variable { return nil }
func (i *ExitInstruction) SetReceiver(*Variable) {}
func (i *ExitInstruction) Targets() []*BasicBlock { return nil }

// RaiseInstruction throws Exception. Its CFG successors, if any, are the
// handlers of the try/catch blocks protecting this instruction's block —
// those are not modeled as ordinary Targets, since they merge through
// try/catch joints rather than plain phis.
type RaiseInstruction struct {
	Exception *Variable
}

func (i *RaiseInstruction) Accept(v Visitor) { v.VisitRaise(i) }
func (i *RaiseInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Exception = fn(i.Exception)
}
func (i *RaiseInstruction) Receiver() *Variable { return nil }
func (i *RaiseInstruction) SetReceiver(*Variable) {}
func (i *RaiseInstruction) Targets() []*BasicBlock { return nil }

// ---- construct / construct-array / construct-multi-array -----------------

type ConstructInstruction struct {
	Type      string
	Receiver_ *Variable
}

func (i *ConstructInstruction) Accept(v Visitor) { v.VisitConstruct(i) }
func (i *ConstructInstruction) ForEachUse(fn func(*Variable) *Variable) {}
func (i *ConstructInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *ConstructInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type ConstructArrayInstruction struct {
	ItemType  string
	Size      *Variable
	Receiver_ *Variable
}

func (i *ConstructArrayInstruction) Accept(v Visitor) { v.VisitConstructArray(i) }
func (i *ConstructArrayInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Size = fn(i.Size)
}
func (i *ConstructArrayInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *ConstructArrayInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type ConstructMultiArrayInstruction struct {
	ItemType   string
	Dimensions []*Variable
	Receiver_  *Variable
}

func (i *ConstructMultiArrayInstruction) Accept(v Visitor) { v.VisitConstructMultiArray(i) }
func (i *ConstructMultiArrayInstruction) ForEachUse(fn func(*Variable) *Variable) {
	for idx, d := range i.Dimensions {
		i.Dimensions[idx] = fn(d)
	}
}
func (i *ConstructMultiArrayInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *ConstructMultiArrayInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

// ---- get/put field ---------------------------------------------------------

// GetFieldInstruction reads a field. Instance is nil for a static field.
type GetFieldInstruction struct {
	Instance  *Variable
	Field     string
	Receiver_ *Variable
}

func (i *GetFieldInstruction) Accept(v Visitor) { v.VisitGetField(i) }
func (i *GetFieldInstruction) ForEachUse(fn func(*Variable) *Variable) {
	if i.Instance != nil {
		i.Instance = fn(i.Instance)
	}
}
func (i *GetFieldInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *GetFieldInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type PutFieldInstruction struct {
	Instance *Variable
	Field    string
	Value    *Variable
}

func (i *PutFieldInstruction) Accept(v Visitor) { v.VisitPutField(i) }
func (i *PutFieldInstruction) ForEachUse(fn func(*Variable) *Variable) {
	if i.Instance != nil {
		i.Instance = fn(i.Instance)
	}
	i.Value = fn(i.Value)
}
func (i *PutFieldInstruction) Receiver() *Variable { return nil }
func (i *PutFieldInstruction) SetReceiver(*Variable) {}

// ---- get/put element --------------------------------------------------------

type GetElementInstruction struct {
	Array, Index *Variable
	Receiver_    *Variable
}

func (i *GetElementInstruction) Accept(v Visitor) { v.VisitGetElement(i) }
func (i *GetElementInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Array = fn(i.Array)
	i.Index = fn(i.Index)
}
func (i *GetElementInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *GetElementInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type PutElementInstruction struct {
	Array, Index, Value *Variable
}

func (i *PutElementInstruction) Accept(v Visitor) { v.VisitPutElement(i) }
func (i *PutElementInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Array = fn(i.Array)
	i.Index = fn(i.Index)
	i.Value = fn(i.Value)
}
func (i *PutElementInstruction) Receiver() *Variable { return nil }
func (i *PutElementInstruction) SetReceiver(*Variable) {}

// ---- invoke / invoke-dynamic -----------------------------------------------

// InvokeInstruction calls Method. Instance is nil for a static call;
// Receiver_ is nil for a void call.
type InvokeInstruction struct {
	Instance  *Variable
	Method    string
	Args      []*Variable
	Receiver_ *Variable
}

func (i *InvokeInstruction) Accept(v Visitor) { v.VisitInvoke(i) }
func (i *InvokeInstruction) ForEachUse(fn func(*Variable) *Variable) {
	for idx, a := range i.Args {
		i.Args[idx] = fn(a)
	}
	if i.Instance != nil {
		i.Instance = fn(i.Instance)
	}
}
func (i *InvokeInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *InvokeInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type InvokeDynamicInstruction struct {
	Instance  *Variable
	Bootstrap string
	Args      []*Variable
	Receiver_ *Variable
}

func (i *InvokeDynamicInstruction) Accept(v Visitor) { v.VisitInvokeDynamic(i) }
func (i *InvokeDynamicInstruction) ForEachUse(fn func(*Variable) *Variable) {
	for idx, a := range i.Args {
		i.Args[idx] = fn(a)
	}
	if i.Instance != nil {
		i.Instance = fn(i.Instance)
	}
}
func (i *InvokeDynamicInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *InvokeDynamicInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

// ---- is-instance / cast / cast-number / cast-integer -----------------------

type IsInstanceInstruction struct {
	Value     *Variable
	Type      string
	Receiver_ *Variable
}

func (i *IsInstanceInstruction) Accept(v Visitor) { v.VisitIsInstance(i) }
func (i *IsInstanceInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Value = fn(i.Value)
}
func (i *IsInstanceInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *IsInstanceInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type CastInstruction struct {
	Value     *Variable
	Type      string
	Receiver_ *Variable
}

func (i *CastInstruction) Accept(v Visitor) { v.VisitCast(i) }
func (i *CastInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Value = fn(i.Value)
}
func (i *CastInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *CastInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type CastNumberInstruction struct {
	Value      *Variable
	TargetKind NumberKind
	Receiver_  *Variable
}

func (i *CastNumberInstruction) Accept(v Visitor) { v.VisitCastNumber(i) }
func (i *CastNumberInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Value = fn(i.Value)
}
func (i *CastNumberInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *CastNumberInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type CastIntegerInstruction struct {
	Value      *Variable
	TargetKind IntegerKind
	Direction  CastIntegerDirection
	Receiver_  *Variable
}

func (i *CastIntegerInstruction) Accept(v Visitor) { v.VisitCastInteger(i) }
func (i *CastIntegerInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Value = fn(i.Value)
}
func (i *CastIntegerInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *CastIntegerInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

// ---- array-length / unwrap-array / clone-array -----------------------------

type ArrayLengthInstruction struct {
	Array     *Variable
	Receiver_ *Variable
}

func (i *ArrayLengthInstruction) Accept(v Visitor) { v.VisitArrayLength(i) }
func (i *ArrayLengthInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Array = fn(i.Array)
}
func (i *ArrayLengthInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *ArrayLengthInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type UnwrapArrayInstruction struct {
	Array       *Variable
	ElementType string
	Receiver_   *Variable
}

func (i *UnwrapArrayInstruction) Accept(v Visitor) { v.VisitUnwrapArray(i) }
func (i *UnwrapArrayInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Array = fn(i.Array)
}
func (i *UnwrapArrayInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *UnwrapArrayInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type CloneArrayInstruction struct {
	Array     *Variable
	Receiver_ *Variable
}

func (i *CloneArrayInstruction) Accept(v Visitor) { v.VisitCloneArray(i) }
func (i *CloneArrayInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Array = fn(i.Array)
}
func (i *CloneArrayInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *CloneArrayInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

// ---- null-check / monitor-enter / monitor-exit -----------------------------

type NullCheckInstruction struct {
	Value     *Variable
	Receiver_ *Variable
}

func (i *NullCheckInstruction) Accept(v Visitor) { v.VisitNullCheck(i) }
func (i *NullCheckInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.Value = fn(i.Value)
}
func (i *NullCheckInstruction) Receiver() *Variable { return i.Receiver_ }
func (i *NullCheckInstruction) SetReceiver(v *Variable) { i.Receiver_ = v }

type MonitorEnterInstruction struct {
	ObjectRef *Variable
}

func (i *MonitorEnterInstruction) Accept(v Visitor) { v.VisitMonitorEnter(i) }
func (i *MonitorEnterInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.ObjectRef = fn(i.ObjectRef)
}
func (i *MonitorEnterInstruction) Receiver() *Variable { return nil }
func (i *MonitorEnterInstruction) SetReceiver(*Variable) {}

type MonitorExitInstruction struct {
	ObjectRef *Variable
}

func (i *MonitorExitInstruction) Accept(v Visitor) { v.VisitMonitorExit(i) }
func (i *MonitorExitInstruction) ForEachUse(fn func(*Variable) *Variable) {
	i.ObjectRef = fn(i.ObjectRef)
}
func (i *MonitorExitInstruction) Receiver() *Variable { return nil }
func (i *MonitorExitInstruction) SetReceiver(*Variable) {}
