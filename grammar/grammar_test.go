// SPDX-License-Identifier: Apache-2.0
package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qpeep/grammar"
	"qpeep/internal/circuit"
)

func TestParseBasicCircuit(t *testing.T) {
	program, err := grammar.ParseString("test.qpc", `
// two-wire bell pair
circuit 2;

h 0;
cx 0, 1;
rx(0.5) 1;
`)
	require.NoError(t, err)
	require.NotNil(t, program)

	assert.Len(t, program.Comments, 1)
	assert.Equal(t, "// two-wire bell pair", program.Comments[0].Text)
	assert.Equal(t, 2, program.Header.Wires)

	require.Len(t, program.Gates, 3)
	assert.Equal(t, "h", program.Gates[0].Gate.Name)
	assert.Equal(t, []int{0}, program.Gates[0].Gate.Wires)
	assert.Equal(t, "cx", program.Gates[1].Gate.Name)
	assert.Equal(t, []int{0, 1}, program.Gates[1].Gate.Wires)
	assert.Equal(t, "rx", program.Gates[2].Gate.Name)
	assert.Equal(t, []float64{0.5}, program.Gates[2].Gate.Params)
}

func TestParseInterleavedComments(t *testing.T) {
	program, err := grammar.ParseString("test.qpc", `
circuit 1;
h 0;
// undoes the one above
h 0;
`)
	require.NoError(t, err)

	require.Len(t, program.Gates, 3)
	assert.NotNil(t, program.Gates[1].Comment)
	assert.Nil(t, program.Gates[1].Gate)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := grammar.ParseString("test.qpc", `circuit 2; h 0`)
	assert.Error(t, err, "missing semicolon")

	_, err = grammar.ParseString("test.qpc", `h 0;`)
	assert.Error(t, err, "missing circuit header")
}

func TestParseExampleFiles(t *testing.T) {
	for _, path := range []string{"../examples/peephole.qpc", "../examples/grover.qpc"} {
		program, err := grammar.ParseFile(path)
		require.NoError(t, err, path)

		qc, err := grammar.ToCircuit(program)
		require.NoError(t, err, path)
		assert.NotEmpty(t, qc.Ops, path)
	}
}

func TestToCircuit(t *testing.T) {
	program, err := grammar.ParseString("test.qpc", `
circuit 3;
h 0;
rz(0.25) 1;
ccx 0, 1, 2;
mcz 0, 1, 2;
`)
	require.NoError(t, err)

	qc, err := grammar.ToCircuit(program)
	require.NoError(t, err)

	assert.Equal(t, 3, qc.NumQubits)
	require.Len(t, qc.Ops, 4)
	assert.Equal(t, circuit.H, qc.Ops[0].Kind)
	assert.Equal(t, circuit.RZ, qc.Ops[1].Kind)
	assert.Equal(t, []float64{0.25}, qc.Ops[1].Params)
	assert.Equal(t, circuit.CCX, qc.Ops[2].Kind)
	assert.Equal(t, []int{0, 1, 2}, qc.Ops[3].Qubits)
}

func TestToCircuitValidation(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"unknown gate", "circuit 1;\nfoo 0;"},
		{"wire out of range", "circuit 2;\nh 2;"},
		{"wrong arity", "circuit 2;\ncx 0;"},
		{"duplicate operand", "circuit 2;\ncx 0, 0;"},
		{"missing parameter", "circuit 1;\nrx 0;"},
		{"unexpected parameter", "circuit 1;\nh(0.5) 0;"},
		{"zero wires", "circuit 0;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			program, err := grammar.ParseString("test.qpc", tc.source)
			require.NoError(t, err)

			_, err = grammar.ToCircuit(program)
			assert.Error(t, err)
		})
	}
}
