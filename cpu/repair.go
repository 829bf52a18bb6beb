package cpu

import (
	"log"
	"slices"
)

// Repair searches for the single jmp/nop swap that lets a looping
// listing terminate.
//
// Candidates are tried in the order the looping run first visited them,
// so Run must have returned OUTCOME_LOOP on this CPU before calling;
// with an empty history there are no candidates. Each trial swaps one
// instruction, resets the CPU, and re-runs. On termination the swap is
// kept in the listing and the final accumulator is returned; on a
// renewed loop the swap is reverted before the next candidate.
// Exhausting the candidates is a normal outcome, reported through ok.
// Execution errors halt the search, with the listing restored.
func (cpu *Cpu) Repair() (acc int, ok bool, err error) {
	history := slices.Clone(cpu.History)

	for _, addr := range history {
		if !cpu.Program.Swap(addr) {
			// OP_ACC, not a candidate.
			continue
		}

		if cpu.Verbose {
			inst, _ := cpu.Program.At(addr)
			log.Printf("repair: %03d: trying %v", addr, inst)
		}

		cpu.Reset()

		var outcome Outcome
		outcome, err = cpu.Run()
		if err != nil {
			cpu.Program.Swap(addr)
			return
		}

		if outcome == OUTCOME_TERMINATED {
			acc = cpu.Accumulator
			ok = true
			return
		}

		cpu.Program.Swap(addr)
	}

	return
}
