package program

import (
	"fmt"
	"strings"
)

type Operation string

// List of Guu operations
const (
	OpSet   Operation = "set"
	OpCall  Operation = "call"
	OpPrint Operation = "print"
)

// Arity returns the number of operands the operation takes, or -1 for unknown operations
func (op Operation) Arity() int {
	switch op {
	case OpSet:
		return 2
	case OpCall, OpPrint:
		return 1
	default:
		return -1
	}
}

// Instruction is a single operation of a function body.
// set carries (variable, literal), call carries (function), print carries (variable).
type Instruction struct {
	Op   Operation
	Args []string
}

// NewInstruction validates the operand count and builds an instruction
func NewInstruction(op Operation, args ...string) (Instruction, error) {
	if want := op.Arity(); want != len(args) {
		if want < 0 {
			return Instruction{}, fmt.Errorf("unknown operation %q", op)
		}
		return Instruction{}, fmt.Errorf("%s takes %d operand(s), found %d", op, want, len(args))
	}

	return Instruction{Op: op, Args: append([]string(nil), args...)}, nil
}

// Arg returns the n-th operand, or "" if it does not exist
func (i Instruction) Arg(n int) string {
	if n < 0 || n >= len(i.Args) {
		return ""
	}
	return i.Args[n]
}

// String returns the instruction as it would appear in source code
func (i Instruction) String() string {
	if len(i.Args) == 0 {
		return string(i.Op)
	}
	return string(i.Op) + " " + strings.Join(i.Args, " ")
}
