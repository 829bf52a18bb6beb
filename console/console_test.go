package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bootfix/cpu"
)

// The looping listing from the handheld's boot diagnostics.
var loopListing = strings.Join([]string{
	"nop +0",
	"acc +1",
	"jmp +4",
	"acc +3",
	"jmp -3",
	"acc -99",
	"acc +1",
	"jmp -4",
	"acc +6",
}, "\n")

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	assert.False(con.Verbose)
	assert.NotNil(con.Cpu)
	assert.Equal(0, con.Program.Len())
}

func TestConsole_BootTerminates(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	err := con.Load(strings.NewReader("nop +0\nacc +5"))
	assert.NoError(err)

	outcome, err := con.Boot()
	assert.NoError(err)
	assert.Equal(cpu.OUTCOME_TERMINATED, outcome)
	assert.Equal(5, con.Cpu.Accumulator)
}

func TestConsole_BootLoops(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	err := con.Load(strings.NewReader(loopListing))
	assert.NoError(err)

	outcome, err := con.Boot()
	assert.NoError(err)
	assert.Equal(cpu.OUTCOME_LOOP, outcome)
	assert.Equal(1, con.Cpu.Ip)
	assert.Equal(5, con.Cpu.Accumulator)
}

func TestConsole_Repair(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	err := con.Load(strings.NewReader(loopListing))
	assert.NoError(err)

	outcome, err := con.Boot()
	assert.NoError(err)
	assert.Equal(cpu.OUTCOME_LOOP, outcome)

	acc, ok, err := con.Repair()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(8, acc)

	// The corrected listing carries the swapped instruction.
	inst, found := con.Program.At(7)
	assert.True(found)
	assert.Equal(cpu.OP_NOP, inst.Op)
	assert.Equal(8, inst.LineNo)
	assert.Contains(con.Program.String(), "nop -4")
}

func TestConsole_Boot_Idempotent(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	err := con.Load(strings.NewReader(loopListing))
	assert.NoError(err)

	outcome, err := con.Boot()
	assert.NoError(err)

	again, err := con.Boot()
	assert.NoError(err)
	assert.Equal(outcome, again)
	assert.Equal(5, con.Cpu.Accumulator)
}

func TestConsole_LoadError(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	err := con.Load(strings.NewReader("nop +0\nfoo +1"))
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)

	var syn *cpu.ErrSyntax
	assert.True(errors.As(err, &syn))
	assert.Equal(2, syn.LineNo)

	// A failed load leaves the previous (empty) listing in place.
	assert.Equal(0, con.Program.Len())
}

func TestConsole_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()

	err := con.Load(strings.NewReader("nop +0\njmp +3"))
	assert.NoError(err)

	_, err = con.Boot()
	assert.ErrorIs(err, cpu.ErrIpRange(0))

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(2, rt.LineNo)
}

func TestConsole_LineNo(t *testing.T) {
	assert := assert.New(t)

	con := NewConsole()
	assert.Equal(0, con.LineNo())

	err := con.Load(strings.NewReader(loopListing))
	assert.NoError(err)

	_, err = con.Boot()
	assert.NoError(err)

	// The last executed instruction is the jmp -3 on line 5.
	assert.Equal(5, con.LineNo())
}
