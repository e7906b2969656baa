package dag

import "qpeep/internal/circuit"

// Mutation primitives. Each one validates its preconditions first and
// touches edges only when it is certain to succeed, so a refused
// mutation leaves the graph exactly as it was.

// Substitute swaps the operation identity of n in place: kind and
// parameters change, operand wires and every edge stay put. O(1).
func (g *Graph) Substitute(n *OpNode, kind circuit.Kind, params []float64) error {
	if !g.members[n] {
		return &NodeNotFoundError{Node: n}
	}
	if want, fixed := circuit.Arity(kind); fixed && want != len(n.Qubits) {
		return &ArityMismatchError{Kind: kind, Want: want, Got: len(n.Qubits)}
	}
	n.Kind = kind
	n.Params = append([]float64(nil), params...)
	return nil
}

// Remove excises an operation node: on each operand wire the predecessor
// is reconnected to the successor, then n and its edges are discarded.
// Terminals are never removable.
func (g *Graph) Remove(n Node) error {
	op, ok := n.(*OpNode)
	if !ok {
		return &InvalidRemovalError{Node: n}
	}
	if !g.members[op] {
		return &NodeNotFoundError{Node: op}
	}
	for _, w := range op.Qubits {
		g.connect(g.pred[op][w], w, g.succ[op][w])
	}
	delete(g.succ, op)
	delete(g.pred, op)
	delete(g.members, op)
	return nil
}

// SubstituteWithGraph splices template in place of n: template wire i is
// grafted onto n's i-th operand wire. The template's operation nodes are
// copied fresh, so the template itself stays untouched and reusable. The
// template must expose exactly one entry and one exit per wire, which
// holds for any well-formed graph.
func (g *Graph) SubstituteWithGraph(n *OpNode, template *Graph) error {
	if !g.members[n] {
		return &NodeNotFoundError{Node: n}
	}
	if template.NumWires() != len(n.Qubits) {
		return &TemplateArityMismatchError{Want: len(n.Qubits), Got: template.NumWires()}
	}
	for _, tn := range template.TopologicalNodes() {
		top, ok := tn.(*OpNode)
		if !ok {
			continue
		}
		mapped := make([]int, len(top.Qubits))
		for i, tw := range top.Qubits {
			mapped[i] = n.Qubits[tw]
		}
		repl := &OpNode{
			Kind:   top.Kind,
			Qubits: mapped,
			Params: append([]float64(nil), top.Params...),
		}
		g.adopt(repl)
		// Insert directly upstream of n; successive insertions keep the
		// template's program order on every shared wire.
		for _, w := range mapped {
			g.connect(g.pred[n][w], w, repl)
			g.connect(repl, w, n)
		}
	}
	return g.Remove(n)
}
