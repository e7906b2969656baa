package rewrite

import (
	"qpeep/internal/circuit"
	"qpeep/internal/dag"
)

// CancelAdjacentSwaps removes back-to-back swap pairs on the same two
// wires: equal transpositions compose to the identity.
type CancelAdjacentSwaps struct{}

func (*CancelAdjacentSwaps) Name() string { return "cancel adjacent swaps" }

func (*CancelAdjacentSwaps) Description() string {
	return "Removes successive swap pairs on the same wire pair"
}

func (*CancelAdjacentSwaps) Apply(g *dag.Graph) bool {
	marked := make(map[*dag.OpNode]bool)
	var toRemove []*dag.OpNode
	for _, n := range g.OpNodes() {
		if n.Kind != circuit.Swap || marked[n] {
			continue
		}
		for _, succ := range g.OpSuccessors(n) {
			if succ.Kind == circuit.Swap && sharedWires(n, succ) == 2 {
				marked[n], marked[succ] = true, true
				toRemove = append(toRemove, n, succ)
				break
			}
		}
	}
	for _, n := range toRemove {
		_ = g.Remove(n)
	}
	return len(toRemove) > 0
}

// MergeAdjacentSwaps removes successive swap pairs whose operand sets
// intersect in exactly one wire.
type MergeAdjacentSwaps struct{}

func (*MergeAdjacentSwaps) Name() string { return "merge adjacent swaps" }

func (*MergeAdjacentSwaps) Description() string {
	return "Removes successive swap pairs sharing exactly one wire"
}

func (*MergeAdjacentSwaps) Apply(g *dag.Graph) bool {
	marked := make(map[*dag.OpNode]bool)
	var toRemove []*dag.OpNode
	for _, n := range g.OpNodes() {
		if n.Kind != circuit.Swap || marked[n] {
			continue
		}
		for _, succ := range g.OpSuccessors(n) {
			if succ.Kind == circuit.Swap && !marked[succ] && sharedWires(n, succ) == 1 {
				marked[n], marked[succ] = true, true
				toRemove = append(toRemove, n, succ)
				break
			}
		}
	}
	for _, n := range toRemove {
		_ = g.Remove(n)
	}
	return len(toRemove) > 0
}
