package cpu

import (
	"fmt"
	"maps"
)

// Opcode is an instruction mnemonic.
type Opcode int

const (
	OP_ST    = Opcode(0)  // ST
	OP_LD    = Opcode(1)  // LD
	OP_AND   = Opcode(2)  // AND
	OP_OR    = Opcode(3)  // OR
	OP_XOR   = Opcode(4)  // XOR
	OP_ROL   = Opcode(5)  // ROL
	OP_ROR   = Opcode(6)  // ROR
	OP_ADD   = Opcode(7)  // ADD
	OP_ADC   = Opcode(8)  // ADC
	OP_NEG   = Opcode(9)  // NEG
	OP_INC   = Opcode(10) // INC
	OP_DEC   = Opcode(11) // DEC
	OP_SETC  = Opcode(12) // SETC
	OP_CLRC  = Opcode(13) // CLRC
	OP_TRFNC = Opcode(14) // TRFNC
	OP_BZ0   = Opcode(15) // BZ0
	OP_BZ1   = Opcode(16) // BZ1
	OP_BC0   = Opcode(17) // BC0
	OP_BC1   = Opcode(18) // BC1
	OP_BV0   = Opcode(19) // BV0
	OP_BV1   = Opcode(20) // BV1
	OP_BN0   = Opcode(21) // BN0
	OP_BN1   = Opcode(22) // BN1
	OP_BRA   = Opcode(23) // BRA
	OP_NOP   = Opcode(24) // NOP

	OP_COUNT = 25 // Number of opcodes.
)

var opcodeName = [OP_COUNT]string{
	"ST", "LD", "AND", "OR", "XOR", "ROL", "ROR", "ADD", "ADC", "NEG",
	"INC", "DEC", "SETC", "CLRC", "TRFNC",
	"BZ0", "BZ1", "BC0", "BC1", "BV0", "BV1", "BN0", "BN1", "BRA", "NOP",
}

// String returns the assembler mnemonic of the opcode.
func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeName) {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeName[op]
}

// Kind is the addressing shape of an instruction parameter.
type Kind int

const (
	KIND_NONE     = Kind(0) // none
	KIND_ACC      = Kind(1) // ACC
	KIND_DIRECT   = Kind(2) // direct
	KIND_INDIRECT = Kind(3) // indirect
)

var kindName = [...]string{"none", "ACC", "direct", "indirect"}

func (kind Kind) String() string {
	if kind < 0 || int(kind) >= len(kindName) {
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
	return kindName[kind]
}

// opcodeForms is the legal parameter kinds of each opcode, and the
// opcode byte each one encodes to.
var opcodeForms = [OP_COUNT]map[Kind]uint8{
	OP_ST:    {KIND_INDIRECT: 0x01},
	OP_LD:    {KIND_DIRECT: 0x02, KIND_INDIRECT: 0x03},
	OP_AND:   {KIND_DIRECT: 0x04, KIND_INDIRECT: 0x05},
	OP_OR:    {KIND_DIRECT: 0x06, KIND_INDIRECT: 0x07},
	OP_XOR:   {KIND_DIRECT: 0x08, KIND_INDIRECT: 0x09},
	OP_ROL:   {KIND_ACC: 0x0A},
	OP_ROR:   {KIND_ACC: 0x0B},
	OP_ADD:   {KIND_DIRECT: 0x0C, KIND_INDIRECT: 0x0D},
	OP_ADC:   {KIND_DIRECT: 0x0E, KIND_INDIRECT: 0x0F},
	OP_NEG:   {KIND_ACC: 0x10, KIND_DIRECT: 0x11, KIND_INDIRECT: 0x12},
	OP_INC:   {KIND_ACC: 0x13, KIND_INDIRECT: 0x14},
	OP_DEC:   {KIND_ACC: 0x15, KIND_INDIRECT: 0x16},
	OP_SETC:  {KIND_NONE: 0x17},
	OP_CLRC:  {KIND_NONE: 0x18},
	OP_TRFNC: {KIND_NONE: 0x19},
	OP_BZ0:   {KIND_DIRECT: 0x1A},
	OP_BZ1:   {KIND_DIRECT: 0x1B},
	OP_BC0:   {KIND_DIRECT: 0x1C},
	OP_BC1:   {KIND_DIRECT: 0x1D},
	OP_BV0:   {KIND_DIRECT: 0x1E},
	OP_BV1:   {KIND_DIRECT: 0x1F},
	OP_BN0:   {KIND_DIRECT: 0x20},
	OP_BN1:   {KIND_DIRECT: 0x21},
	OP_BRA:   {KIND_DIRECT: 0x22},
	OP_NOP:   {KIND_NONE: 0x3F},
}

// Form is one legal (opcode, parameter kind) pairing.
type Form struct {
	Opcode Opcode
	Kind   Kind
}

// codeForms maps opcode bytes back to their form.
var codeForms = map[uint8]Form{}

// opcodeMap maps assembler mnemonics to opcodes.
var opcodeMap = map[string]Opcode{}

func init() {
	for n, forms := range opcodeForms {
		op := Opcode(n)
		opcodeMap[op.String()] = op
		for kind, code := range forms {
			codeForms[code] = Form{Opcode: op, Kind: kind}
		}
	}
}

// Forms returns the legal parameter kinds of the opcode, and the opcode
// byte of each.
func (op Opcode) Forms() map[Kind]uint8 {
	if op < 0 || int(op) >= len(opcodeForms) {
		return nil
	}
	return maps.Clone(opcodeForms[op])
}

// Code is a single 16-bit instruction word: opcode byte, then operand byte.
type Code uint16

// MakeCode creates an instruction word.
func MakeCode(opcode uint8, operand uint8) Code {
	return Code(uint16(opcode)<<8 | uint16(operand))
}

// Opcode returns the opcode byte of the instruction word.
func (code Code) Opcode() uint8 {
	return uint8(code >> 8)
}

// Operand returns the operand byte of the instruction word.
func (code Code) Operand() uint8 {
	return uint8(code & 0xff)
}

// Decode returns the form of the instruction word, if it is a known opcode.
func (code Code) Decode() (form Form, operand uint8, ok bool) {
	form, ok = codeForms[code.Opcode()]
	operand = code.Operand()
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	form, operand, ok := code.Decode()
	if !ok {
		return fmt.Sprintf("??? 0x%04x", uint16(code))
	}

	switch form.Kind {
	case KIND_ACC:
		return fmt.Sprintf("%v ACC", form.Opcode)
	case KIND_DIRECT:
		return fmt.Sprintf("%v %d", form.Opcode, operand)
	case KIND_INDIRECT:
		return fmt.Sprintf("%v [%d]", form.Opcode, operand)
	}

	return form.Opcode.String()
}

// Encode encodes an opcode and its resolved parameters into a Code.
// Parameters must not contain any unresolved constant or label.
func Encode(op Opcode, params ...Parameter) (code Code, err error) {
	if op < 0 || int(op) >= len(opcodeForms) {
		err = ErrOpcodeInvalid
		return
	}
	forms := opcodeForms[op]

	kind := KIND_NONE
	var operand uint8

	switch len(params) {
	case 0:
	case 1:
		param := params[0]
		if param == nil {
			err = ErrParameterInvalid
			return
		}
		kind = param.Kind()
		if value, ok := param.(Value); ok {
			if value.Ref == nil {
				err = ErrParameterInvalid
				return
			}
			raw, ok := value.Resolved()
			if !ok {
				err = ErrValueUnresolved(value.String())
				return
			}
			operand = raw
		}
	default:
		err = ErrOpcodeExtraArgs
		return
	}

	opcode, ok := forms[kind]
	if !ok {
		_, takesNone := forms[KIND_NONE]
		switch {
		case kind == KIND_NONE:
			err = ErrOpcodeValueMissing
		case takesNone:
			err = ErrOpcodeExtraArgs
		default:
			err = ErrForm{Opcode: op, Kind: kind}
		}
		return
	}

	code = MakeCode(opcode, operand)

	return
}
