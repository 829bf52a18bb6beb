// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package console

import (
	"io"

	"github.com/ezrec/bootfix/cpu"
)

// Console state. CPU + boot code listing.
type Console struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Program *cpu.Program // Reference to the loaded boot code listing.
}

// NewConsole creates a new console with an empty boot code listing.
func NewConsole() (con *Console) {
	prog := &cpu.Program{}
	con = &Console{
		Cpu:     cpu.NewCpu(prog),
		Program: prog,
	}

	return
}

// Load assembles a boot code listing from an input stream, replacing
// the current listing and resetting the CPU.
func (con *Console) Load(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: con.Verbose}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	*con.Program = *prog
	con.Cpu.Reset()

	return
}

// LineNo returns the source line number for the last executed
// instruction, or 0 if nothing has executed.
func (con *Console) LineNo() int {
	if len(con.Cpu.History) == 0 {
		return 0
	}

	addr := con.Cpu.History[len(con.Cpu.History)-1]
	inst, ok := con.Program.At(addr)
	if !ok {
		return 0
	}

	return inst.LineNo
}

// Boot resets the CPU and runs the listing until it terminates or
// revisits an instruction. On OUTCOME_LOOP the instruction pointer is
// left at the repeated address.
func (con *Console) Boot() (outcome cpu.Outcome, err error) {
	con.Cpu.Verbose = con.Verbose

	con.Cpu.Reset()

	outcome, err = con.Cpu.Run()
	if err != nil {
		err = &ErrRuntime{LineNo: con.LineNo(), Err: err}
	}

	return
}

// Repair searches for the jmp/nop swap that lets the loaded listing
// terminate. Boot must have reported OUTCOME_LOOP first; the search
// consumes its visit history.
func (con *Console) Repair() (acc int, ok bool, err error) {
	con.Cpu.Verbose = con.Verbose

	acc, ok, err = con.Cpu.Repair()
	if err != nil {
		err = &ErrRuntime{LineNo: con.LineNo(), Err: err}
	}

	return
}
