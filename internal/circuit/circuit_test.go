package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromName(t *testing.T) {
	for _, name := range []string{"h", "x", "rx", "cx", "swap", "ccx", "mcz", "tdg"} {
		kind, ok := KindFromName(name)
		assert.True(t, ok, "kind %q should resolve", name)
		assert.Equal(t, name, kind.String())
	}

	_, ok := KindFromName("bogus")
	assert.False(t, ok)
}

func TestArity(t *testing.T) {
	n, fixed := Arity(H)
	assert.Equal(t, 1, n)
	assert.True(t, fixed)

	n, fixed = Arity(CX)
	assert.Equal(t, 2, n)
	assert.True(t, fixed)

	n, fixed = Arity(CCX)
	assert.Equal(t, 3, n)
	assert.True(t, fixed)

	_, fixed = Arity(MCZ)
	assert.False(t, fixed, "mcz accepts any operand count")
}

func TestParamCount(t *testing.T) {
	assert.Equal(t, 1, ParamCount(RX))
	assert.Equal(t, 1, ParamCount(CP))
	assert.Equal(t, 0, ParamCount(H))
	assert.Equal(t, 0, ParamCount(Swap))
}

func TestIsRotation(t *testing.T) {
	assert.True(t, IsRotation(RX))
	assert.True(t, IsRotation(RY))
	assert.True(t, IsRotation(RZ))
	assert.False(t, IsRotation(CP))
	assert.False(t, IsRotation(H))
}

func TestAppendValidation(t *testing.T) {
	qc := New(2)

	assert.NoError(t, qc.Append(Operation{Kind: H, Qubits: []int{0}}))
	assert.NoError(t, qc.Append(Operation{Kind: CX, Qubits: []int{0, 1}}))
	assert.NoError(t, qc.Append(Operation{Kind: RX, Qubits: []int{1}, Params: []float64{0.5}}))
	assert.Len(t, qc.Ops, 3)

	assert.Error(t, qc.Append(Operation{Kind: H, Qubits: nil}), "empty operand list")
	assert.Error(t, qc.Append(Operation{Kind: CX, Qubits: []int{0}}), "arity mismatch")
	assert.Error(t, qc.Append(Operation{Kind: H, Qubits: []int{2}}), "wire out of range")
	assert.Error(t, qc.Append(Operation{Kind: H, Qubits: []int{-1}}), "negative wire")
	assert.Error(t, qc.Append(Operation{Kind: CX, Qubits: []int{1, 1}}), "duplicate operand")
	assert.Error(t, qc.Append(Operation{Kind: RX, Qubits: []int{0}}), "missing parameter")
	assert.Error(t, qc.Append(Operation{Kind: H, Qubits: []int{0}, Params: []float64{1}}), "unexpected parameter")

	assert.Len(t, qc.Ops, 3, "rejected operations must not be recorded")
}

func TestGateHelpers(t *testing.T) {
	qc := New(3)
	qc.H(0)
	qc.RX(1, 0.25)
	qc.CX(0, 1)
	qc.CCX(0, 1, 2)
	qc.MCZ(0, 1, 2)

	assert.Len(t, qc.Ops, 5)
	assert.Equal(t, H, qc.Ops[0].Kind)
	assert.Equal(t, []int{0, 1}, qc.Ops[2].Qubits)
	assert.Equal(t, []int{0, 1, 2}, qc.Ops[3].Qubits)
	assert.Equal(t, MCZ, qc.Ops[4].Kind)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "h 0", Operation{Kind: H, Qubits: []int{0}}.String())
	assert.Equal(t, "cx 0, 1", Operation{Kind: CX, Qubits: []int{0, 1}}.String())
	assert.Equal(t, "rx(0.5) 2", Operation{Kind: RX, Qubits: []int{2}, Params: []float64{0.5}}.String())
}

func TestOptimizedToffoli(t *testing.T) {
	qc := OptimizedToffoli()

	assert.Equal(t, 3, qc.NumQubits)
	assert.Len(t, qc.Ops, 11)
	assert.Equal(t, H, qc.Ops[0].Kind)
	assert.Equal(t, H, qc.Ops[10].Kind)

	tCount, tdgCount := 0, 0
	for _, op := range qc.Ops {
		switch op.Kind {
		case T:
			tCount++
		case Tdg:
			tdgCount++
		}
	}
	assert.Equal(t, 3, tCount)
	assert.Equal(t, 2, tdgCount)
}
