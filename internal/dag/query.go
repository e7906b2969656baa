package dag

import "container/heap"

// TopologicalNodes returns every node in program order: all per-wire
// orders are respected and remaining ties break by insertion sequence,
// so two calls over an unmodified graph yield the same slice. The order
// is recomputed from the live graph on every call, never cached.
func (g *Graph) TopologicalNodes() []Node {
	indeg := make(map[Node]int, len(g.members))
	ready := &nodeHeap{}
	for n := range g.members {
		indeg[n] = len(g.pred[n])
		if indeg[n] == 0 {
			heap.Push(ready, n)
		}
	}

	order := make([]Node, 0, len(g.members))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(Node)
		order = append(order, n)
		for _, w := range wiresOf(n) {
			s, ok := g.succ[n][w]
			if !ok {
				continue
			}
			indeg[s]--
			if indeg[s] == 0 {
				heap.Push(ready, s)
			}
		}
	}
	return order
}

// OpNodes returns the operation nodes in program order.
func (g *Graph) OpNodes() []*OpNode {
	var ops []*OpNode
	for _, n := range g.TopologicalNodes() {
		if op, ok := n.(*OpNode); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Successors returns the nodes one outgoing edge away from n, across all
// of its wires, in operand-wire order with duplicates collapsed to their
// first occurrence. Querying a node that is not in the graph is a
// programmer error: it panics with *NodeNotFoundError.
func (g *Graph) Successors(n Node) []Node {
	g.mustContain(n)
	return g.neighbors(n, g.succ)
}

// Predecessors is the incoming-edge counterpart of Successors.
func (g *Graph) Predecessors(n Node) []Node {
	g.mustContain(n)
	return g.neighbors(n, g.pred)
}

// OpSuccessors filters Successors down to operation nodes, preserving
// order.
func (g *Graph) OpSuccessors(n Node) []*OpNode {
	return opsOnly(g.Successors(n))
}

// OpPredecessors filters Predecessors down to operation nodes,
// preserving order.
func (g *Graph) OpPredecessors(n Node) []*OpNode {
	return opsOnly(g.Predecessors(n))
}

func (g *Graph) neighbors(n Node, edges map[Node]map[int]Node) []Node {
	var out []Node
	seen := make(map[Node]bool)
	for _, w := range wiresOf(n) {
		m, ok := edges[n][w]
		if !ok || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func (g *Graph) mustContain(n Node) {
	if !g.members[n] {
		panic(&NodeNotFoundError{Node: n})
	}
}

func opsOnly(nodes []Node) []*OpNode {
	var ops []*OpNode
	for _, n := range nodes {
		if op, ok := n.(*OpNode); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// nodeHeap is a min-heap over insertion sequence, backing the
// deterministic topological walk.
type nodeHeap []Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].nodeSeq() < h[j].nodeSeq() }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}
