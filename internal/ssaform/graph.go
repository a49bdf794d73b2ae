package ssaform

import "github.com/ir-ssa/ssaform/internal/ir"

// Graph is the abstract control-flow graph the dominance machinery in dom.go
// operates over. Nodes are dense integer indices in [0, Size()); dom.go
// never touches an *ir.BasicBlock directly, which keeps it reusable for any
// future graph shape (e.g. a call graph) without change.
type Graph interface {
	Size() int
	Entry() int
	Preds(n int) []int
	Succs(n int) []int
}

// CFG is the control-flow graph of one ir.Program, built once up front and
// shared by the dominance, placement and rename stages of the pass.
type CFG struct {
	prog  *ir.Program
	preds [][]int
	succs [][]int
}

// BuildCFG derives a CFG from prog's blocks and their terminators. Block
// index i in the graph corresponds to prog.BlockAt(i); the entry node is
// always block 0.
func BuildCFG(prog *ir.Program) *CFG {
	n := prog.BlockCount()
	cfg := &CFG{
		prog:  prog,
		preds: make([][]int, n),
		succs: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		block := prog.BlockAt(i)
		for _, s := range block.Successors() {
			cfg.succs[i] = append(cfg.succs[i], s.Index)
			cfg.preds[s.Index] = append(cfg.preds[s.Index], i)
		}
	}
	return cfg
}

func (g *CFG) Size() int         { return g.prog.BlockCount() }
func (g *CFG) Entry() int        { return 0 }
func (g *CFG) Preds(n int) []int { return g.preds[n] }
func (g *CFG) Succs(n int) []int { return g.succs[n] }

// Block returns the ir.BasicBlock backing graph node n.
func (g *CFG) Block(n int) *ir.BasicBlock { return g.prog.BlockAt(n) }

// Program returns the ir.Program this CFG was built from.
func (g *CFG) Program() *ir.Program { return g.prog }

// BuildExceptionCFG derives a graph like BuildCFG's, but with one additional
// edge per try/catch region, from its protected block to its handler. A
// handler is ordinarily reached only along the exception edges that
// ir.BasicBlock.Successors deliberately omits, so the plain CFG never
// dominates a handler from its protected block; this graph exists solely to
// answer that dominance question for try/catch joint renaming; it must not
// be used for ordinary phi placement or fillOutgoingPhis, both of which rely
// on handlers not being treated as ordinary CFG targets.
func BuildExceptionCFG(prog *ir.Program) *CFG {
	n := prog.BlockCount()
	cfg := &CFG{
		prog:  prog,
		preds: make([][]int, n),
		succs: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		block := prog.BlockAt(i)
		for _, s := range block.Successors() {
			cfg.succs[i] = append(cfg.succs[i], s.Index)
			cfg.preds[s.Index] = append(cfg.preds[s.Index], i)
		}
		for _, tc := range block.TryCatches {
			cfg.succs[i] = append(cfg.succs[i], tc.Handler.Index)
			cfg.preds[tc.Handler.Index] = append(cfg.preds[tc.Handler.Index], i)
		}
	}
	return cfg
}
