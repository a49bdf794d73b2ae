package ssaform

import "github.com/ir-ssa/ssaform/internal/ir"

// buildJointMap indexes every declared joint by (handler block, protected
// block, original variable index) so propagateToTryCatch can find, from
// inside a define happening in a protected block, which joint (if any)
// is tracking the variable just defined.
func (u *updater) buildJointMap() {
	u.jointMap = make(map[int]map[int]map[int]*ir.TryCatchJoint)
	for i := 0; i < u.prog.BlockCount(); i++ {
		for _, tc := range u.prog.BlockAt(i).TryCatches {
			h := tc.Handler.Index
			byProtected, ok := u.jointMap[h]
			if !ok {
				byProtected = make(map[int]map[int]*ir.TryCatchJoint)
				u.jointMap[h] = byProtected
			}
			byVar, ok := byProtected[i]
			if !ok {
				byVar = make(map[int]*ir.TryCatchJoint)
				byProtected[i] = byVar
			}
			for _, joint := range tc.Joints {
				byVar[joint.Receiver.Index] = joint
			}
		}
	}
}

// renameJoints performs the one-time rename of a try/catch's joints: it is
// only called for a try/catch whose protected block strictly dominates its
// handler (the case where the merge is actually needed), immediately before
// that protected block's own instructions are processed.
//
// Each joint's receiver becomes a fresh variable; its declared source list
// (originally naming the tracked original variables) is resolved against
// the reaching definitions just before entry, then replaced; and current is
// seeded so uses of the tracked variables inside the protected subtree
// observe the joint's receiver as their reaching definition.
func (u *updater) renameJoints(tc *ir.TryCatchBlock) {
	for _, joint := range tc.Joints {
		original := joint.Receiver
		mapped := u.introduce(original)
		mapped.UnionDebugNames(original)

		resolved := make([]*ir.Variable, len(joint.SourceVariables))
		for i, sv := range joint.SourceVariables {
			resolved[i] = u.use(sv)
		}
		for _, sv := range joint.SourceVariables {
			u.current[sv.Index] = mapped
		}
		u.current[original.Index] = mapped

		joint.SourceVariables = resolved
		joint.Receiver = mapped
	}
}

// propagateToTryCatch is called from define, once per redefinition of
// original inside block blockIdx, for every try/catch protecting that
// block. If a joint is tracking original, its source list gathers w; the
// first time a joint gathers anything, it also gathers the reaching
// definition old had just before this redefinition, so the joint's
// incoming list starts complete rather than missing the live-in value.
func (u *updater) propagateToTryCatch(blockIdx int, original, w, old *ir.Variable) {
	block := u.prog.BlockAt(blockIdx)
	for _, tc := range block.TryCatches {
		if tc.Handler.ExceptionVariable == original {
			continue
		}
		byVar := u.jointMap[tc.Handler.Index][blockIdx]
		if byVar == nil {
			continue
		}
		joint, ok := byVar[original.Index]
		if !ok {
			continue
		}
		if len(joint.SourceVariables) == 0 && old != nil {
			joint.SourceVariables = append(joint.SourceVariables, old)
		}
		joint.SourceVariables = append(joint.SourceVariables, w)
	}
}
