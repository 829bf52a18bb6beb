package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAssembler(f *testing.F) {
	f.Add("nop +0")
	f.Add("acc +1 ; bump")
	f.Add("jmp -4")
	f.Add(".equ LIMIT +25\nacc LIMIT")
	f.Add("jmp $(1 + 2)")
	f.Add("acc +9223372036854775807")
	f.Add("foo bar baz")

	f.Fuzz(func(t *testing.T, listing string) {
		assert := assert.New(t)

		asm := &Assembler{}

		prog, err := asm.Parse(strings.NewReader(listing))
		if err != nil {
			// Rejected input; nothing further to check.
			return
		}

		// Anything the assembler accepts must render back to a
		// listing it accepts again, with identical instructions.
		again, err := asm.Parse(strings.NewReader(prog.String()))
		assert.NoError(err)
		if err != nil {
			return
		}

		assert.Equal(len(prog.Instructions), len(again.Instructions))
		for n := range prog.Instructions {
			assert.Equal(prog.Instructions[n].Op, again.Instructions[n].Op)
			assert.Equal(prog.Instructions[n].Arg, again.Instructions[n].Arg)
		}
	})
}
