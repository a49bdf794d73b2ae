// Package ir defines the three-address intermediate representation that
// internal/ssaform's construction pass consumes and mutates in place.
//
// Building or parsing this IR from a source language is out of scope for
// this repository; internal/ir supplies one concrete realization of the
// data model so the pass has something real to run against and so the CLI
// under cmd/ssaupdatectl has a wire format to load.
package ir

import "fmt"

// Variable is an opaque SSA variable identifier. Two variables are the same
// variable if and only if they share an Index; Variable values are handed
// out by Program.CreateVariable and never reused within a Program.
type Variable struct {
	// Index uniquely identifies the variable within its owning Program,
	// in the range [0, Program.VariableCount()).
	Index int

	// DebugNames accumulates the set of source-level names this variable
	// has stood in for. Debug names of an original variable must be
	// carried forward onto every fresh variable that replaces it.
	DebugNames map[string]struct{}
}

// NewVariable returns a Variable with the given index and no debug names.
func NewVariable(index int) *Variable {
	return &Variable{Index: index}
}

// AddDebugName records name as one of the source names this variable stands
// in for.
func (v *Variable) AddDebugName(name string) {
	if name == "" {
		return
	}
	if v.DebugNames == nil {
		v.DebugNames = make(map[string]struct{}, 1)
	}
	v.DebugNames[name] = struct{}{}
}

// UnionDebugNames merges other's debug names into v.
func (v *Variable) UnionDebugNames(other *Variable) {
	if other == nil {
		return
	}
	for name := range other.DebugNames {
		v.AddDebugName(name)
	}
}

// HasDebugName reports whether v carries name among its debug names.
func (v *Variable) HasDebugName(name string) bool {
	_, ok := v.DebugNames[name]
	return ok
}

// String returns a short textual form (e.g. "v5") for diagnostics.
func (v *Variable) String() string {
	if v == nil {
		return "<nil var>"
	}
	return fmt.Sprintf("v%d", v.Index)
}
