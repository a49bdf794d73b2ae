package ir

// Program is the mutable container for one procedure: its basic blocks and
// its growing set of variables. internal/ssaform.Update mutates a Program in
// place; nothing about Program itself is SSA-aware.
type Program struct {
	blocks    []*BasicBlock
	variables []*Variable
}

// NewProgram returns an empty Program.
func NewProgram() *Program {
	return &Program{}
}

// BlockCount returns the number of basic blocks.
func (p *Program) BlockCount() int { return len(p.blocks) }

// VariableCount returns the number of variables created so far.
func (p *Program) VariableCount() int { return len(p.variables) }

// BlockAt returns the block at the given index.
func (p *Program) BlockAt(i int) *BasicBlock { return p.blocks[i] }

// VariableAt returns the variable at the given index.
func (p *Program) VariableAt(i int) *Variable { return p.variables[i] }

// Blocks returns the program's blocks in index order. The returned slice is
// shared with the Program; callers must not mutate its length.
func (p *Program) Blocks() []*BasicBlock { return p.blocks }

// CreateBlock appends and returns a new, empty basic block.
func (p *Program) CreateBlock() *BasicBlock {
	b := NewBasicBlock(len(p.blocks))
	p.blocks = append(p.blocks, b)
	return b
}

// CreateVariable allocates and returns a fresh variable with no debug names.
func (p *Program) CreateVariable() *Variable {
	v := NewVariable(len(p.variables))
	p.variables = append(p.variables, v)
	return v
}
