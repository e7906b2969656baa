package circuit

// OptimizedToffoli returns the fixed three-wire decomposition of a
// doubly-controlled X with a T-count of four (Amy et al.), ancilla-free.
// Wires 0 and 1 are the controls, wire 2 the target.
func OptimizedToffoli() *Circuit {
	qc := New(3)
	qc.H(2)
	qc.T(2)
	qc.CX(1, 2)
	qc.Tdg(2)
	qc.CX(0, 2)
	qc.T(2)
	qc.CX(1, 2)
	qc.Tdg(2)
	qc.CX(0, 2)
	qc.T(1)
	qc.H(2)
	return qc
}
