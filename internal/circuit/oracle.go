package circuit

import "fmt"

// GroverOracle builds a marking circuit for a set of equal-length target
// bit-strings. For each target the zero bits are sandwiched between X
// gates around a multi-controlled Z over all wires, flipping the phase of
// exactly that basis state. Bit 0 of a target string is its rightmost
// character.
func GroverOracle(marked []string) (*Circuit, error) {
	if len(marked) == 0 {
		return nil, fmt.Errorf("grover oracle: no marked states")
	}
	numQubits := len(marked[0])
	if numQubits == 0 {
		return nil, fmt.Errorf("grover oracle: empty marked state")
	}
	for _, target := range marked {
		if len(target) != numQubits {
			return nil, fmt.Errorf("grover oracle: state %q has %d bits, expected %d",
				target, len(target), numQubits)
		}
		for _, ch := range target {
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("grover oracle: state %q is not a bit-string", target)
			}
		}
	}

	qc := New(numQubits)
	all := make([]int, numQubits)
	for i := range all {
		all[i] = i
	}

	for _, target := range marked {
		var zeros []int
		for i := 0; i < numQubits; i++ {
			// Reverse indexing: wire i carries bit i, the i-th
			// character from the right.
			if target[numQubits-1-i] == '0' {
				zeros = append(zeros, i)
			}
		}
		for _, q := range zeros {
			qc.X(q)
		}
		qc.MCZ(all...)
		for _, q := range zeros {
			qc.X(q)
		}
	}
	return qc, nil
}
