// Package cpu implements the boot code interpreter for the handheld console.
//
// The CPU consists of an instruction pointer, an accumulator, and a visit
// history used to detect infinite loops. Boot code is a flat listing of
// acc/jmp/nop instructions with signed operands; jumps are relative.
//
// The assembler loads listings from text, supporting comments, equates,
// and compile-time expression evaluation. The repair search finds the
// single jmp/nop swap that converts a looping listing into one that
// terminates.
package cpu
