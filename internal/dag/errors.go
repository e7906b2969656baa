package dag

import (
	"fmt"

	"qpeep/internal/circuit"
)

// NodeNotFoundError reports a query or mutation against a node that is
// not, or is no longer, part of the graph. Queries treat this as a
// programmer error and panic with it; mutations return it so a rule can
// skip an already-consumed candidate and keep scanning.
type NodeNotFoundError struct {
	Node Node
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("dag: node %s not in graph", describe(e.Node))
}

// ArityMismatchError reports a substitution whose new kind requires a
// different operand count than the node carries.
type ArityMismatchError struct {
	Kind circuit.Kind
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("dag: %s takes %d operands, node has %d", e.Kind, e.Want, e.Got)
}

// InvalidRemovalError reports an attempt to remove a terminal node.
// Terminals are never removable.
type InvalidRemovalError struct {
	Node Node
}

func (e *InvalidRemovalError) Error() string {
	return fmt.Sprintf("dag: cannot remove terminal %s", describe(e.Node))
}

// TemplateArityMismatchError reports a subgraph substitution whose
// template spans a different number of wires than the node has operands.
type TemplateArityMismatchError struct {
	Want int // operand count of the substituted node
	Got  int // wire count of the template
}

func (e *TemplateArityMismatchError) Error() string {
	return fmt.Sprintf("dag: template spans %d wires, node has %d operands", e.Got, e.Want)
}
