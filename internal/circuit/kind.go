package circuit

import "fmt"

// Kind identifies a gate type. The set is closed: rewrite rules and the
// printer switch over it exhaustively.
type Kind int

const (
	I Kind = iota
	H
	X
	Y
	Z
	S
	Sdg
	T
	Tdg
	RX
	RY
	RZ
	CX
	CZ
	CP
	Swap
	CCX
	MCZ
)

var kindNames = [...]string{
	I:    "i",
	H:    "h",
	X:    "x",
	Y:    "y",
	Z:    "z",
	S:    "s",
	Sdg:  "sdg",
	T:    "t",
	Tdg:  "tdg",
	RX:   "rx",
	RY:   "ry",
	RZ:   "rz",
	CX:   "cx",
	CZ:   "cz",
	CP:   "cp",
	Swap: "swap",
	CCX:  "ccx",
	MCZ:  "mcz",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromName resolves a lowercase gate name to its kind.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Arity returns the operand count a kind requires. fixed is false for
// kinds that accept any operand count: mcz takes any number of controls
// followed by one target.
func Arity(k Kind) (n int, fixed bool) {
	switch k {
	case CX, CZ, CP, Swap:
		return 2, true
	case CCX:
		return 3, true
	case MCZ:
		return 0, false
	default:
		return 1, true
	}
}

// ParamCount returns how many real parameters a kind carries.
func ParamCount(k Kind) int {
	switch k {
	case RX, RY, RZ, CP:
		return 1
	default:
		return 0
	}
}

// IsRotation reports whether k is a single-axis rotation whose angles
// compose by addition.
func IsRotation(k Kind) bool {
	return k == RX || k == RY || k == RZ
}
