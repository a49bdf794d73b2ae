package ssaform

// DominatorTree holds the immediate-dominator relation for a Graph, computed
// once and queried repeatedly by rename.go and verify.go (placement.go reads
// only the frontiers derived from it).
type DominatorTree struct {
	graph    Graph
	rpo      []int
	rpoIndex []int // node -> position in rpo, -1 if unreachable
	idom     []int // node -> immediate dominator node, -1 for the entry or unreachable nodes
	children [][]int
}

// reversePostOrder walks g from its entry node and returns the reachable
// nodes in reverse post-order.
func reversePostOrder(g Graph) []int {
	visited := make([]bool, g.Size())
	var order []int

	var dfs func(n int)
	dfs = func(n int) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, s := range g.Succs(n) {
			dfs(s)
		}
		order = append(order, n)
	}
	dfs(g.Entry())

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// BuildDominatorTree computes immediate dominators using Cooper, Harvey and
// Kennedy's iterative fixpoint algorithm. Nodes unreachable from g.Entry()
// are left with no immediate dominator and are ignored by every query below.
func BuildDominatorTree(g Graph) *DominatorTree {
	rpo := reversePostOrder(g)

	rpoIndex := make([]int, g.Size())
	for i := range rpoIndex {
		rpoIndex[i] = -1
	}
	for i, n := range rpo {
		rpoIndex[n] = i
	}

	idom := make([]int, g.Size())
	for i := range idom {
		idom[i] = -1
	}

	if len(rpo) == 0 {
		return &DominatorTree{graph: g, rpo: rpo, rpoIndex: rpoIndex, idom: idom, children: make([][]int, g.Size())}
	}

	entry := rpo[0]
	idom[entry] = entry // sentinel during the fixpoint, cleared below

	intersect := func(a, b int) int {
		for a != b {
			for rpoIndex[a] > rpoIndex[b] {
				a = idom[a]
			}
			for rpoIndex[b] > rpoIndex[a] {
				b = idom[b]
			}
		}
		return a
	}

	changed := true
	for changed {
		changed = false
		for _, n := range rpo[1:] {
			var newIdom = -1
			for _, p := range g.Preds(n) {
				if idom[p] != -1 {
					newIdom = p
					break
				}
			}
			if newIdom == -1 {
				continue
			}
			for _, p := range g.Preds(n) {
				if p == newIdom || idom[p] == -1 {
					continue
				}
				newIdom = intersect(p, newIdom)
			}
			if idom[n] != newIdom {
				idom[n] = newIdom
				changed = true
			}
		}
	}

	idom[entry] = -1

	children := make([][]int, g.Size())
	for _, n := range rpo {
		if idom[n] != -1 {
			children[idom[n]] = append(children[idom[n]], n)
		}
	}

	return &DominatorTree{graph: g, rpo: rpo, rpoIndex: rpoIndex, idom: idom, children: children}
}

// IDom returns n's immediate dominator, or -1 if n is the entry node or is
// unreachable.
func (t *DominatorTree) IDom(n int) int { return t.idom[n] }

// Children returns the nodes t immediately dominates, in no particular
// order.
func (t *DominatorTree) Children(n int) []int { return t.children[n] }

// ReversePostOrder returns the reachable nodes in reverse post-order.
func (t *DominatorTree) ReversePostOrder() []int { return t.rpo }

// Reachable reports whether n was reached from the graph's entry node.
func (t *DominatorTree) Reachable(n int) bool { return t.rpoIndex[n] != -1 }

// Dominates reports whether a dominates b (reflexively: a dominates a).
func (t *DominatorTree) Dominates(a, b int) bool {
	if !t.Reachable(a) || !t.Reachable(b) {
		return false
	}
	for b != a {
		if t.idom[b] == -1 {
			return false
		}
		b = t.idom[b]
	}
	return true
}

// DominanceFrontiers computes, for every node, the set of nodes at which
// that node's dominance stops - the standard input to iterated phi
// placement.
func DominanceFrontiers(g Graph, t *DominatorTree) [][]int {
	df := make([][]int, g.Size())
	for _, b := range t.rpo {
		preds := g.Preds(b)
		if len(preds) < 2 {
			continue
		}
		for _, p := range preds {
			if !t.Reachable(p) {
				continue
			}
			runner := p
			for runner != -1 && runner != t.idom[b] {
				df[runner] = appendUniqueNode(df[runner], b)
				runner = t.idom[runner]
			}
		}
	}
	return df
}

func appendUniqueNode(list []int, n int) []int {
	for _, x := range list {
		if x == n {
			return list
		}
	}
	return append(list, n)
}
