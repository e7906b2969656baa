package dag

import (
	"qpeep/internal/circuit"
)

// Graph is the DAG form of a circuit. Program order is encoded per wire:
// every wire is one simple path from its input terminal through the
// operations that touch it to its output terminal. The graph is a single
// mutable resource; rewrite passes mutate it in place and hold no
// references into it between applications.
type Graph struct {
	inputs  []*InNode
	outputs []*OutNode
	members map[Node]bool
	succ    map[Node]map[int]Node // successor per node, keyed by wire
	pred    map[Node]map[int]Node
	nextSeq int
}

// New returns a graph of numWires empty wires, each input terminal wired
// straight to its output terminal.
func New(numWires int) *Graph {
	g := &Graph{
		members: make(map[Node]bool),
		succ:    make(map[Node]map[int]Node),
		pred:    make(map[Node]map[int]Node),
	}
	for w := 0; w < numWires; w++ {
		in := &InNode{Wire: w}
		out := &OutNode{Wire: w}
		g.adopt(in)
		g.adopt(out)
		g.inputs = append(g.inputs, in)
		g.outputs = append(g.outputs, out)
		g.connect(in, w, out)
	}
	return g
}

// adopt registers a node, stamping it with the next insertion sequence.
// The sequence is the tie-breaker that keeps topological order
// deterministic.
func (g *Graph) adopt(n Node) {
	n.setSeq(g.nextSeq)
	g.nextSeq++
	g.members[n] = true
	g.succ[n] = make(map[int]Node)
	g.pred[n] = make(map[int]Node)
}

// connect installs the directed edge from -> to on wire, overwriting any
// previous edge of from on that wire.
func (g *Graph) connect(from Node, wire int, to Node) {
	g.succ[from][wire] = to
	g.pred[to][wire] = from
}

// NumWires returns the wire count the graph was built over.
func (g *Graph) NumWires() int { return len(g.inputs) }

// NumOps returns the number of operation nodes currently in the graph.
func (g *Graph) NumOps() int { return len(g.members) - 2*len(g.inputs) }

// Contains reports whether n is currently part of the graph.
func (g *Graph) Contains(n Node) bool { return g.members[n] }

// Input returns the input terminal of wire.
func (g *Graph) Input(wire int) *InNode { return g.inputs[wire] }

// Output returns the output terminal of wire.
func (g *Graph) Output(wire int) *OutNode { return g.outputs[wire] }

// Apply appends op at the current end of its wires, splicing it in just
// before their output terminals.
func (g *Graph) Apply(op circuit.Operation) *OpNode {
	n := &OpNode{
		Kind:   op.Kind,
		Qubits: append([]int(nil), op.Qubits...),
		Params: append([]float64(nil), op.Params...),
	}
	g.adopt(n)
	for _, w := range n.Qubits {
		out := g.outputs[w]
		front := g.pred[out][w]
		g.connect(front, w, n)
		g.connect(n, w, out)
	}
	return n
}

// FromCircuit builds the DAG for c, threading each wire's frontier
// forward in program order.
func FromCircuit(c *circuit.Circuit) *Graph {
	g := New(c.NumQubits)
	for _, op := range c.Ops {
		g.Apply(op)
	}
	return g
}

// ToCircuit materializes the graph back into an ordered gate list via
// topological iteration.
func (g *Graph) ToCircuit() *circuit.Circuit {
	out := circuit.New(g.NumWires())
	for _, n := range g.TopologicalNodes() {
		if op, ok := n.(*OpNode); ok {
			out.Ops = append(out.Ops, op.Operation())
		}
	}
	return out
}
