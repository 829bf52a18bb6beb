package cpu

import (
	"errors"

	"github.com/ezrec/bootfix/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
)

// ErrIpRange indicates the instruction pointer left the listing,
// either by going negative or by jumping strictly past the end.
// Distinct from normal termination, which lands exactly one past
// the final instruction.
type ErrIpRange int

func (e ErrIpRange) Error() string {
	return f("ip %v out of range", int(e))
}

func (e ErrIpRange) Is(err error) (ok bool) {
	_, ok = err.(ErrIpRange)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a signed number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
