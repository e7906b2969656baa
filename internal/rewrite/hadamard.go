package rewrite

import (
	"qpeep/internal/circuit"
	"qpeep/internal/dag"
)

// XHXToHZ rewrites the single-wire chain X·H·X into H·Z. The two are
// equal up to global phase, which does not affect measurement.
type XHXToHZ struct{}

func (*XHXToHZ) Name() string { return "x-h-x to h-z" }

func (*XHXToHZ) Description() string {
	return "Rewrites X·H·X chains into H·Z"
}

func (*XHXToHZ) Apply(g *dag.Graph) bool {
	changed := false
	for _, n := range g.OpNodes() {
		if !g.Contains(n) || n.Kind != circuit.X {
			continue
		}
		mid, ok := soleOpSuccessor(g, n)
		if !ok || mid.Kind != circuit.H {
			continue
		}
		tail, ok := soleOpSuccessor(g, mid)
		if !ok || tail.Kind != circuit.X {
			continue
		}
		if g.Substitute(n, circuit.H, nil) != nil {
			continue
		}
		if g.Substitute(mid, circuit.Z, nil) != nil {
			continue
		}
		if g.Remove(tail) != nil {
			continue
		}
		changed = true
	}
	return changed
}

// HXHToZ rewrites the single-wire chain H·X·H into Z, equal up to global
// phase.
type HXHToZ struct{}

func (*HXHToZ) Name() string { return "h-x-h to z" }

func (*HXHToZ) Description() string {
	return "Rewrites H·X·H chains into Z"
}

func (*HXHToZ) Apply(g *dag.Graph) bool {
	changed := false
	for _, n := range g.OpNodes() {
		if !g.Contains(n) || n.Kind != circuit.H {
			continue
		}
		mid, ok := soleOpSuccessor(g, n)
		if !ok || mid.Kind != circuit.X {
			continue
		}
		tail, ok := soleOpSuccessor(g, mid)
		if !ok || tail.Kind != circuit.H {
			continue
		}
		if g.Substitute(n, circuit.Z, nil) != nil {
			continue
		}
		if g.Remove(mid) != nil {
			continue
		}
		if g.Remove(tail) != nil {
			continue
		}
		changed = true
	}
	return changed
}

// CancelAdjacentH removes pairs of consecutive H gates on the same wire
// with nothing in between: H·H is the identity.
type CancelAdjacentH struct{}

func (*CancelAdjacentH) Name() string { return "cancel adjacent h" }

func (*CancelAdjacentH) Description() string {
	return "Removes back-to-back H pairs on the same wire"
}

func (*CancelAdjacentH) Apply(g *dag.Graph) bool {
	// Two-phase: collect disjoint pairs over one scan, then remove.
	marked := make(map[*dag.OpNode]bool)
	var toRemove []*dag.OpNode
	for _, n := range g.OpNodes() {
		if n.Kind != circuit.H || marked[n] {
			continue
		}
		succ, ok := soleOpSuccessor(g, n)
		if !ok || succ.Kind != circuit.H || marked[succ] || succ.Qubits[0] != n.Qubits[0] {
			continue
		}
		marked[n], marked[succ] = true, true
		toRemove = append(toRemove, n, succ)
	}
	for _, n := range toRemove {
		_ = g.Remove(n)
	}
	return len(toRemove) > 0
}
