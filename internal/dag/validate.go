package dag

import "fmt"

// Validate checks the structural invariants every rewrite relies on:
// each wire is a single simple path from its input terminal to its
// output terminal passing only through operations that list the wire,
// every edge has a matching back edge, the graph is acyclic, and no node
// is orphaned. It returns the first violation found.
func (g *Graph) Validate() error {
	visited := make(map[Node]map[int]bool, len(g.members))

	for w := range g.inputs {
		n := Node(g.inputs[w])
		steps := 0
		for {
			s, ok := g.succ[n][w]
			if !ok {
				return fmt.Errorf("dag: wire %d ends early at %s", w, describe(n))
			}
			if !g.members[s] {
				return fmt.Errorf("dag: wire %d reaches foreign node %s", w, describe(s))
			}
			if back := g.pred[s][w]; back != n {
				return fmt.Errorf("dag: wire %d edge %s -> %s has no matching back edge",
					w, describe(n), describe(s))
			}
			if visited[s] == nil {
				visited[s] = make(map[int]bool)
			}
			if visited[s][w] {
				return fmt.Errorf("dag: wire %d revisits %s", w, describe(s))
			}
			visited[s][w] = true

			if out, isOut := s.(*OutNode); isOut {
				if out.Wire != w || out != g.outputs[w] {
					return fmt.Errorf("dag: wire %d terminates at wrong output %s", w, describe(s))
				}
				break
			}
			op, isOp := s.(*OpNode)
			if !isOp {
				return fmt.Errorf("dag: wire %d passes through input terminal %s", w, describe(s))
			}
			if !containsWire(op.Qubits, w) {
				return fmt.Errorf("dag: wire %d passes through %s which does not list it",
					w, describe(s))
			}
			if steps++; steps > len(g.members) {
				return fmt.Errorf("dag: wire %d walk does not terminate", w)
			}
			n = s
		}
	}

	// Every operation must have been reached on each of its operand
	// wires; together with the walk above this rules out dangling edges
	// and degree anomalies.
	for n := range g.members {
		op, ok := n.(*OpNode)
		if !ok {
			continue
		}
		for _, q := range op.Qubits {
			if !visited[op][q] {
				return fmt.Errorf("dag: %s unreachable on wire %d", describe(op), q)
			}
		}
	}

	// Acyclicity across wires: the topological walk must consume the
	// whole graph.
	if got := len(g.TopologicalNodes()); got != len(g.members) {
		return fmt.Errorf("dag: cycle detected, topological walk covered %d of %d nodes",
			got, len(g.members))
	}
	return nil
}

func containsWire(qubits []int, w int) bool {
	for _, q := range qubits {
		if q == w {
			return true
		}
	}
	return false
}
