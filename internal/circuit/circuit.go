package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation is one gate application: a kind, its ordered operand wires,
// and any real parameters. Operand order is semantically significant for
// asymmetric gates, so it is preserved everywhere.
type Operation struct {
	Kind   Kind
	Qubits []int
	Params []float64
}

func (op Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.Kind.String())
	if len(op.Params) > 0 {
		sb.WriteString("(")
		for i, p := range op.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
		}
		sb.WriteString(")")
	}
	for i, q := range op.Qubits {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %d", q)
	}
	return sb.String()
}

// Circuit is an ordered gate list over a fixed wire count. It is the
// exchange format between the builders, the DAG, and the printer.
type Circuit struct {
	NumQubits int
	Ops       []Operation
}

// New returns an empty circuit over numQubits wires.
func New(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// Append validates op against the circuit before recording it. The DAG
// builder assumes appended operations are well formed, so all ingestion
// validation lives here.
func (c *Circuit) Append(op Operation) error {
	if len(op.Qubits) == 0 {
		return fmt.Errorf("%s: operation needs at least one operand", op.Kind)
	}
	if n, fixed := Arity(op.Kind); fixed && len(op.Qubits) != n {
		return fmt.Errorf("%s: expected %d operands, got %d", op.Kind, n, len(op.Qubits))
	}
	if got, want := len(op.Params), ParamCount(op.Kind); got != want {
		return fmt.Errorf("%s: expected %d parameters, got %d", op.Kind, want, got)
	}
	seen := make(map[int]bool, len(op.Qubits))
	for _, q := range op.Qubits {
		if q < 0 || q >= c.NumQubits {
			return fmt.Errorf("%s: qubit %d out of range [0, %d)", op.Kind, q, c.NumQubits)
		}
		if seen[q] {
			return fmt.Errorf("%s: duplicate operand qubit %d", op.Kind, q)
		}
		seen[q] = true
	}
	c.Ops = append(c.Ops, op)
	return nil
}

// add records an operation without validation. The named gate helpers
// below use it; callers building circuits programmatically are expected
// to pass in-range, distinct wires.
func (c *Circuit) add(k Kind, params []float64, qubits ...int) {
	c.Ops = append(c.Ops, Operation{Kind: k, Qubits: qubits, Params: params})
}

func (c *Circuit) H(q int)              { c.add(H, nil, q) }
func (c *Circuit) X(q int)              { c.add(X, nil, q) }
func (c *Circuit) Y(q int)              { c.add(Y, nil, q) }
func (c *Circuit) Z(q int)              { c.add(Z, nil, q) }
func (c *Circuit) S(q int)              { c.add(S, nil, q) }
func (c *Circuit) Sdg(q int)            { c.add(Sdg, nil, q) }
func (c *Circuit) T(q int)              { c.add(T, nil, q) }
func (c *Circuit) Tdg(q int)            { c.add(Tdg, nil, q) }
func (c *Circuit) RX(q int, theta float64) { c.add(RX, []float64{theta}, q) }
func (c *Circuit) RY(q int, theta float64) { c.add(RY, []float64{theta}, q) }
func (c *Circuit) RZ(q int, theta float64) { c.add(RZ, []float64{theta}, q) }
func (c *Circuit) CX(control, target int)  { c.add(CX, nil, control, target) }
func (c *Circuit) CZ(control, target int)  { c.add(CZ, nil, control, target) }
func (c *Circuit) CP(control, target int, theta float64) {
	c.add(CP, []float64{theta}, control, target)
}
func (c *Circuit) Swap(a, b int)              { c.add(Swap, nil, a, b) }
func (c *Circuit) CCX(c1, c2, target int)     { c.add(CCX, nil, c1, c2, target) }
func (c *Circuit) MCZ(qubits ...int)          { c.add(MCZ, nil, qubits...) }
