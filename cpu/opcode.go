package cpu

import (
	"fmt"
)

// Opcode is one of the three boot code operation kinds.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ACC = Opcode(0) // acc
	OP_JMP = Opcode(1) // jmp
	OP_NOP = Opcode(2) // nop
)

// Swappable returns true if the Opcode is eligible for a jmp/nop swap.
func (op Opcode) Swappable() bool {
	return op == OP_JMP || op == OP_NOP
}

// Swapped returns the jmp/nop counterpart of the Opcode.
// OP_ACC has no counterpart and is returned unchanged.
func (op Opcode) Swapped() Opcode {
	switch op {
	case OP_JMP:
		return OP_NOP
	case OP_NOP:
		return OP_JMP
	}

	return op
}

// Instruction represents a single line of assembled boot code.
type Instruction struct {
	LineNo int    // Line number the instruction was assembled from.
	Op     Opcode // Operation kind.
	Arg    int    // Signed operand.
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	return fmt.Sprintf("%v %+d", inst.Op, inst.Arg)
}
