package rewrite

import (
	"qpeep/internal/circuit"
	"qpeep/internal/dag"
)

// MergeRotations folds runs of same-kind rotation gates on one wire into
// a single gate whose angle is the exact parameter sum. Angles are added
// as-is, with no normalization or wraparound.
type MergeRotations struct{}

func (*MergeRotations) Name() string { return "merge rotations" }

func (*MergeRotations) Description() string {
	return "Combines directly chained same-kind rotation gates by angle addition"
}

func (*MergeRotations) Apply(g *dag.Graph) bool {
	changed := false
	for _, kind := range []circuit.Kind{circuit.RX, circuit.RY, circuit.RZ} {
		for w := 0; w < g.NumWires(); w++ {
			if mergeChain(g, kind, w) {
				changed = true
			}
		}
	}
	return changed
}

// mergeChain walks the rotations of one kind on one wire pairwise, left
// to right, merging each pair joined by a direct edge until no adjacent
// pair remains. Bounded iteration: each merge shrinks the chain.
func mergeChain(g *dag.Graph, kind circuit.Kind, wire int) bool {
	var chain []*dag.OpNode
	for _, n := range g.OpNodes() {
		if n.Kind == kind && n.Qubits[0] == wire {
			chain = append(chain, n)
		}
	}

	changed := false
	i := 0
	for i < len(chain)-1 {
		cur, next := chain[i], chain[i+1]
		preds := g.Predecessors(next)
		if len(preds) != 1 || preds[0] != cur {
			i++
			continue
		}
		sum := cur.Params[0] + next.Params[0]
		if g.Substitute(cur, kind, []float64{sum}) != nil {
			i++
			continue
		}
		if g.Remove(next) != nil {
			i++
			continue
		}
		chain = append(chain[:i+1], chain[i+2:]...)
		changed = true
	}
	return changed
}
