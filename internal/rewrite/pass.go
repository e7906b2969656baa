package rewrite

import "qpeep/internal/dag"

// Pass is a single peephole rule. Apply scans the live graph, rewrites
// every match it can prove safe, and reports whether the graph changed.
// Passes are stateless and keep no references into the graph between
// applications; a candidate that fails a mutation precondition is simply
// skipped.
type Pass interface {
	Name() string
	Description() string
	Apply(g *dag.Graph) bool
}

// soleOpSuccessor returns n's only operation successor, if it has
// exactly one. Branching fan-out disqualifies a match: rewriting through
// it would silently drop the other branch's dependency.
func soleOpSuccessor(g *dag.Graph, n dag.Node) (*dag.OpNode, bool) {
	succs := g.OpSuccessors(n)
	if len(succs) != 1 {
		return nil, false
	}
	return succs[0], true
}

// sharedWires counts the operand wires a and b have in common.
func sharedWires(a, b *dag.OpNode) int {
	count := 0
	for _, qa := range a.Qubits {
		for _, qb := range b.Qubits {
			if qa == qb {
				count++
				break
			}
		}
	}
	return count
}
