package ir

// TryCatchJoint is a merge node for exception control flow, conceptually a
// phi whose incoming edges are potential exception throw points inside a
// protected region rather than ordinary CFG edges. Upstream IR construction
// declares the joint and its (empty) SourceVariables; the pass fills the
// source list in and renames Receiver.
type TryCatchJoint struct {
	// Receiver is the variable made available at the handler through this
	// joint.
	Receiver *Variable

	// SourceVariables lists, in original-variable terms before renaming,
	// the variable this joint tracks reaching definitions of. The pass
	// widens this into the actual set of versions that can reach the
	// handler.
	SourceVariables []*Variable
}

// TryCatchBlock associates a protected block with the block that handles
// exceptions raised inside it, along with the joints declared on that
// association.
type TryCatchBlock struct {
	Protected *BasicBlock
	Handler   *BasicBlock
	Joints    []*TryCatchJoint
}
