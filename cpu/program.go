package cpu

import (
	"iter"
	"slices"
	"strings"
)

// Program is the boot code listing: instructions indexed by address,
// 0-based and contiguous. The listing is owned by the caller; the CPU
// borrows it for the duration of a run, and the repair search mutates
// at most one instruction at a time.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions in the listing.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// At returns the instruction at the given address.
func (prog *Program) At(addr int) (inst Instruction, ok bool) {
	if addr < 0 || addr >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[addr], true
}

// Swap flips the opcode at addr between OP_JMP and OP_NOP, in place.
// Returns false if addr is out of range, or if the instruction is an
// OP_ACC, which has no jmp/nop counterpart.
func (prog *Program) Swap(addr int) (ok bool) {
	if addr < 0 || addr >= len(prog.Instructions) {
		return
	}

	op := prog.Instructions[addr].Op
	if !op.Swappable() {
		return
	}

	prog.Instructions[addr].Op = op.Swapped()
	return true
}

// All returns an iterator over the listing's addresses and instructions.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.Instructions)
}

// String returns the listing as assembly language text, one
// instruction per line.
func (prog *Program) String() (text string) {
	lines := make([]string, 0, len(prog.Instructions))
	for _, inst := range prog.Instructions {
		lines = append(lines, inst.String())
	}

	return strings.Join(lines, "\n")
}
