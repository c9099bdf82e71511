package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/nanochip/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrConstantSyntax     = errors.New(f("constant needs a name and a value"))
	ErrConstantDuplicate  = errors.New(f("constant duplicated"))
	ErrLabelSyntax        = errors.New(f("label needs a name"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelIndirect      = errors.New(f("indirect addressing on labels is not allowed"))
	ErrProgramFull        = errors.New(f("too many instructions, a program can contain at most %d instructions", MAX_INSTRUCTIONS))
	ErrOpcodeInvalid      = errors.New(f("unknown instruction name"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrValueRange         = errors.New(f("values can't be over 255"))
	ErrBracket            = errors.New(f("missing closing ]"))
	ErrParameterInvalid   = errors.New(f("parameter has no value"))
)

// ErrOpcode is an instruction word that does not decode.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("unknown opcode 0x%02x in word 0x%04x", Code(eo).Opcode(), uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrForm is a parameter kind an opcode does not accept.
type ErrForm Form

func (ef ErrForm) Error() string {
	return f("%v does not take %v parameters", ef.Opcode, ef.Kind)
}

type ErrConstantMissing string

func (ec ErrConstantMissing) Error() string {
	return f("constant %v missing", string(ec))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrValueUnresolved string

func (ev ErrValueUnresolved) Error() string {
	return f("'%v' is not resolved", string(ev))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("%v is not a valid expression", string(err))
}

// ErrSyntax is an assembly error, located at its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("Error line %v: %v", strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
