package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzExecute(f *testing.F) {
	for op := range 0x40 {
		f.Add(uint16(op<<8|0x2A), uint8(0x81), true)
		f.Add(uint16(op<<8|0xFF), uint8(0), false)
	}
	f.Add(uint16(0xffff), uint8(0x7f), false)

	f.Fuzz(func(t *testing.T, word uint16, acc uint8, carry bool) {
		assert := assert.New(t)

		code := Code(word)

		cpu := NewCpu(nil)
		cpu.Acc = acc
		cpu.Carry = carry
		for n := range cpu.Ram {
			cpu.Ram[n] = uint8(n * 3)
		}

		before := *cpu

		err := cpu.Execute(code)

		form, operand, ok := code.Decode()
		if !ok {
			assert.ErrorIs(err, ErrOpcode(code), code.String())
			assert.Equal(before, *cpu, code.String())
			return
		}

		assert.NoError(err, code.String())
		assert.Equal(1, cpu.Ticks, code.String())

		switch form.Opcode {
		case OP_BZ0, OP_BZ1, OP_BC0, OP_BC1, OP_BV0, OP_BV1, OP_BN0, OP_BN1, OP_BRA:
			if cpu.Pc != operand {
				assert.Equal(uint8(1), cpu.Pc, code.String())
			}
			assert.Equal(before.Acc, cpu.Acc, code.String())
			assert.Equal(before.Ram, cpu.Ram, code.String())
		case OP_ST:
			assert.Equal(uint8(1), cpu.Pc, code.String())
			assert.Equal(acc, cpu.Ram[operand], code.String())
		case OP_LD, OP_AND, OP_OR, OP_XOR, OP_ADD, OP_ADC, OP_NEG, OP_ROL, OP_ROR:
			assert.Equal(uint8(1), cpu.Pc, code.String())
			assert.Equal(cpu.Acc == 0, cpu.Zero, code.String())
			assert.Equal(cpu.Acc&SIGN_BIT != 0, cpu.Negative, code.String())
			assert.Equal(before.Ram, cpu.Ram, code.String())
		default:
			assert.Equal(uint8(1), cpu.Pc, code.String())
		}
	})
}

func FuzzEncode(f *testing.F) {
	for op := range OP_COUNT {
		f.Add(int(op), uint8(0), uint8(42))
		f.Add(int(op), uint8(1), uint8(255))
		f.Add(int(op), uint8(2), uint8(0))
	}

	f.Fuzz(func(t *testing.T, op_index int, kind_index uint8, operand uint8) {
		assert := assert.New(t)

		op := Opcode(op_index)
		forms := op.Forms()
		if forms == nil {
			_, err := Encode(op)
			assert.ErrorIs(err, ErrOpcodeInvalid)
			return
		}

		var params []Parameter
		kind := Kind(kind_index % 4)
		switch kind {
		case KIND_NONE:
		case KIND_ACC:
			params = append(params, Acc{})
		case KIND_DIRECT:
			params = append(params, Value{Direct: true, Ref: Raw(operand)})
		case KIND_INDIRECT:
			params = append(params, Value{Direct: false, Ref: Raw(operand)})
		}

		code, err := Encode(op, params...)
		_, legal := forms[kind]
		if !legal {
			assert.Error(err, "%v %v", op, kind)
			return
		}

		assert.NoError(err, "%v %v", op, kind)

		form, decoded, ok := code.Decode()
		assert.True(ok)
		assert.Equal(Form{Opcode: op, Kind: kind}, form)
		switch kind {
		case KIND_DIRECT, KIND_INDIRECT:
			assert.Equal(operand, decoded)
		default:
			assert.Equal(uint8(0), decoded)
		}
	})
}
