package grammar

import (
	"fmt"

	"qpeep/internal/circuit"
)

// ToCircuit lowers a parsed program into an operation list, resolving
// gate names and validating arity, parameter counts and wire bounds
// against the declared wire count.
func ToCircuit(program *Program) (*circuit.Circuit, error) {
	if program.Header.Wires <= 0 {
		return nil, fmt.Errorf("circuit must declare at least one wire, got %d", program.Header.Wires)
	}
	qc := circuit.New(program.Header.Wires)
	for _, stmt := range program.Gates {
		if stmt.Gate == nil {
			continue
		}
		gate := stmt.Gate
		kind, ok := circuit.KindFromName(gate.Name)
		if !ok {
			return nil, fmt.Errorf("unknown gate %q", gate.Name)
		}
		op := circuit.Operation{Kind: kind, Qubits: gate.Wires, Params: gate.Params}
		if err := qc.Append(op); err != nil {
			return nil, err
		}
	}
	return qc, nil
}
