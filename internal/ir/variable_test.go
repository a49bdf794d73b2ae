package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableDebugNames(t *testing.T) {
	v := NewVariable(3)
	assert.False(t, v.HasDebugName("x"))

	v.AddDebugName("x")
	v.AddDebugName("")
	assert.True(t, v.HasDebugName("x"))
	assert.Len(t, v.DebugNames, 1, "an empty debug name is ignored")

	other := NewVariable(4)
	other.AddDebugName("y")
	v.UnionDebugNames(other)
	assert.True(t, v.HasDebugName("y"))
	assert.True(t, v.HasDebugName("x"))
}

func TestVariableString(t *testing.T) {
	assert.Equal(t, "v3", NewVariable(3).String())
	var nilVar *Variable
	assert.Equal(t, "<nil var>", nilVar.String())
}

func TestProgramCreateVariableAndBlock(t *testing.T) {
	p := NewProgram()
	v0 := p.CreateVariable()
	v1 := p.CreateVariable()
	assert.Equal(t, 0, v0.Index)
	assert.Equal(t, 1, v1.Index)
	assert.Equal(t, 2, p.VariableCount())

	b0 := p.CreateBlock()
	b1 := p.CreateBlock()
	assert.Equal(t, 0, b0.Index)
	assert.Equal(t, 1, b1.Index)
	assert.Equal(t, 2, p.BlockCount())
}
