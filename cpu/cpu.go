package cpu

import (
	"fmt"
	"log"
)

// Outcome is the result of running a boot code listing to completion.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_TERMINATED = Outcome(0) // terminated
	OUTCOME_LOOP       = Outcome(1) // loop
)

// Cpu is the simulation context for the handheld's boot processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Reference to the boot code listing.

	Ip          int   // Current instruction pointer.
	Accumulator int   // Accumulator register.
	History     []int // Addresses executed this run, in first-visit order.

	seen map[int]struct{} // Presence index over History.
}

// NewCpu creates a new CPU attached to a boot code listing.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
		seen:    map[int]struct{}{},
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   ip: %v\n", cpu.Ip)
	text += fmt.Sprintf("  acc: %v\n", cpu.Accumulator)
	text += fmt.Sprintf("steps: %v\n", len(cpu.History))

	return
}

// Reset the CPU state.
// - Zeros the instruction pointer and accumulator.
// - Clears the visit history.
// The boot code listing is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Ip = 0
	cpu.Accumulator = 0
	cpu.History = cpu.History[:0]

	if cpu.seen == nil {
		cpu.seen = map[int]struct{}{}
	}
	clear(cpu.seen)
}

// Visited returns true if addr was already executed this run.
func (cpu *Cpu) Visited(addr int) (ok bool) {
	_, ok = cpu.seen[addr]
	return
}

// mark records addr in the visit history. Run never steps an address
// twice, so duplicates cannot occur.
func (cpu *Cpu) mark(addr int) {
	if cpu.seen == nil {
		cpu.seen = map[int]struct{}{}
	}

	cpu.History = append(cpu.History, addr)
	cpu.seen[addr] = struct{}{}
}

// Fetch fetches the instruction addressed by the instruction pointer.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	inst, ok := cpu.Program.At(cpu.Ip)
	if !ok {
		err = ErrIpRange(cpu.Ip)
	}

	return
}

// Step executes a single instruction cycle, applying its effect to the
// accumulator and/or instruction pointer. The pre-step instruction
// pointer is recorded in the visit history.
func (cpu *Cpu) Step() (err error) {
	inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, inst)
	}

	cpu.mark(cpu.Ip)

	switch inst.Op {
	case OP_ACC:
		cpu.Accumulator += inst.Arg
		cpu.Ip += 1
	case OP_JMP:
		cpu.Ip += inst.Arg
	case OP_NOP:
		cpu.Ip += 1
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// Run executes until the listing terminates or revisits an address.
//
// Returns OUTCOME_TERMINATED when the instruction pointer lands exactly
// one past the final instruction. Returns OUTCOME_LOOP when the pointer
// addresses an instruction already in the visit history; the pointer is
// left at the repeated address, and the instruction is not executed
// again. A pointer that goes negative or strictly past the end of the
// listing is an ErrIpRange error, never a normal termination.
func (cpu *Cpu) Run() (outcome Outcome, err error) {
	for {
		if cpu.Visited(cpu.Ip) {
			outcome = OUTCOME_LOOP
			return
		}

		if cpu.Ip == cpu.Program.Len() {
			outcome = OUTCOME_TERMINATED
			return
		}

		err = cpu.Step()
		if err != nil {
			return
		}
	}
}
