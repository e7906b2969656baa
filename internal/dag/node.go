package dag

import (
	"fmt"

	"qpeep/internal/circuit"
)

// Node is the sealed set of DAG node variants. Rewrite rules type-switch
// over it; identity is pointer identity. A node belongs to at most one
// graph at a time.
type Node interface {
	nodeSeq() int
	setSeq(int)
}

// InNode is the unique entry terminal of one wire. It has no
// predecessors and exactly one successor edge, on its wire.
type InNode struct {
	Wire int
	seq  int
}

// OutNode is the unique exit terminal of one wire. It has no successors
// and exactly one predecessor edge, on its wire.
type OutNode struct {
	Wire int
	seq  int
}

// OpNode is a gate application. Qubits is ordered, non-empty and
// distinct; Params is ordered and possibly empty.
type OpNode struct {
	Kind   circuit.Kind
	Qubits []int
	Params []float64
	seq    int
}

func (n *InNode) nodeSeq() int  { return n.seq }
func (n *InNode) setSeq(s int)  { n.seq = s }
func (n *OutNode) nodeSeq() int { return n.seq }
func (n *OutNode) setSeq(s int) { n.seq = s }
func (n *OpNode) nodeSeq() int  { return n.seq }
func (n *OpNode) setSeq(s int)  { n.seq = s }

// Operation copies the node back into its record form.
func (n *OpNode) Operation() circuit.Operation {
	return circuit.Operation{
		Kind:   n.Kind,
		Qubits: append([]int(nil), n.Qubits...),
		Params: append([]float64(nil), n.Params...),
	}
}

// wiresOf returns the wires a node touches, in operand order.
func wiresOf(n Node) []int {
	switch v := n.(type) {
	case *InNode:
		return []int{v.Wire}
	case *OutNode:
		return []int{v.Wire}
	case *OpNode:
		return v.Qubits
	default:
		return nil
	}
}

// describe renders a node for error messages and the printer.
func describe(n Node) string {
	switch v := n.(type) {
	case *InNode:
		return fmt.Sprintf("in q%d", v.Wire)
	case *OutNode:
		return fmt.Sprintf("out q%d", v.Wire)
	case *OpNode:
		return v.Operation().String()
	default:
		return fmt.Sprintf("unknown node %T", n)
	}
}
