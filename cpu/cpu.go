package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	RAM_SIZE = 256 // Bytes of RAM.
	ROM_SIZE = 256 // Words of ROM.

	SIGN_BIT = 0x80 // Sign bit of a byte.
)

var _cpu_defines = map[string]uint8{
	"RAM_LAST":      RAM_SIZE - 1,
	"SIGN_BIT":      SIGN_BIT,
	"PROGRAM_LIMIT": MAX_INSTRUCTIONS,
}

// Defines returns the machine constants, for use as assembler predefines.
func Defines() iter.Seq2[string, uint8] {
	return maps.All(_cpu_defines)
}

// Cpu is the simulation context for the nano chip.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Rom [ROM_SIZE]Code  // Program words.
	Ram [RAM_SIZE]uint8 // Data memory.

	Acc      uint8 // Accumulator.
	Zero     bool  // Z flag: last result was zero.
	Carry    bool  // C flag: carry (or borrow) out of bit 7.
	Overflow bool  // V flag: signed overflow.
	Negative bool  // N flag: bit 7 of last result.
	Pc       uint8 // Program counter.

	Ticks int // CPU ticks counter.

	fault error // Sticky fatal execution error.
}

// NewCpu creates a new CPU with the program words loaded into ROM.
func NewCpu(rom []Code) (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Load(rom)

	return
}

// Load replaces the ROM contents, and resets the CPU.
// Words past the end of the ROM are ignored.
func (cpu *Cpu) Load(rom []Code) {
	clear(cpu.Rom[:])
	copy(cpu.Rom[:], rom)
	cpu.Reset()
}

// Reset the CPU state.
// - Clears the RAM, the accumulator and the flags.
// - Sets the program counter to 0.
// - Zeros the ticks counter and clears any fault.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Ram[:])
	cpu.Acc = 0
	cpu.Zero = false
	cpu.Carry = false
	cpu.Overflow = false
	cpu.Negative = false
	cpu.Pc = 0
	cpu.Ticks = 0
	cpu.fault = nil
}

// Fault returns the fatal error that stopped the CPU, if any.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// Code returns the instruction word at the program counter.
func (cpu *Cpu) Code() Code {
	return cpu.Rom[cpu.Pc]
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	flag := func(set bool, name byte) byte {
		if set {
			return name
		}
		return '-'
	}

	flags := []byte{
		flag(cpu.Zero, 'Z'),
		flag(cpu.Carry, 'C'),
		flag(cpu.Overflow, 'V'),
		flag(cpu.Negative, 'N'),
	}

	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %02X\n", "acc", cpu.Acc)
	text += fmt.Sprintf("% 5s: %s\n", "flags", flags)
	text += fmt.Sprintf("% 5s: %04X %v\n", "code", uint16(cpu.Code()), cpu.Code())

	return
}

// Tick executes a single CPU instruction cycle.
// After a fatal error every further tick returns the same error.
func (cpu *Cpu) Tick() (err error) {
	if cpu.fault != nil {
		err = cpu.fault
		return
	}

	err = cpu.Execute(cpu.Code())
	if err != nil {
		cpu.fault = err
		return
	}

	return
}

// setResult sets the Zero and Negative flags from a result.
func (cpu *Cpu) setResult(value uint8) {
	cpu.Zero = value == 0
	cpu.Negative = value&SIGN_BIT != 0
}

// setAcc sets the accumulator and the Zero and Negative flags.
func (cpu *Cpu) setAcc(value uint8) {
	cpu.Acc = value
	cpu.setResult(value)
}

// getValue gets the value of a parameter, based on CPU state.
func (cpu *Cpu) getValue(kind Kind, operand uint8) (value uint8) {
	switch kind {
	case KIND_ACC:
		value = cpu.Acc
	case KIND_DIRECT:
		value = operand
	case KIND_INDIRECT:
		value = cpu.Ram[operand]
	}

	return
}

// setValue writes back to the accumulator or RAM location of a parameter.
func (cpu *Cpu) setValue(kind Kind, operand uint8, value uint8) {
	switch kind {
	case KIND_ACC:
		cpu.Acc = value
	case KIND_INDIRECT:
		cpu.Ram[operand] = value
	}
}

// add adds two bytes and a carry in, setting the Carry and Overflow flags.
func (cpu *Cpu) add(a, b uint8, carry bool) (sum uint8) {
	wide := uint16(a) + uint16(b)
	if carry {
		wide++
	}

	sum = uint8(wide)

	cpu.Carry = wide > 0xff
	cpu.Overflow = (a^b)&SIGN_BIT == 0 && (a^sum)&SIGN_BIT != 0

	return
}

// branchTaken returns true if the branch condition of the opcode holds.
func (cpu *Cpu) branchTaken(op Opcode) bool {
	switch op {
	case OP_BZ0:
		return !cpu.Zero
	case OP_BZ1:
		return cpu.Zero
	case OP_BC0:
		return !cpu.Carry
	case OP_BC1:
		return cpu.Carry
	case OP_BV0:
		return !cpu.Overflow
	case OP_BV1:
		return cpu.Overflow
	case OP_BN0:
		return !cpu.Negative
	case OP_BN1:
		return cpu.Negative
	case OP_BRA:
		return true
	}

	return false
}

// Execute executes a single instruction word.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	form, operand, ok := code.Decode()
	if !ok {
		err = ErrOpcode(code)
		return
	}

	next_pc := cpu.Pc + 1
	value := cpu.getValue(form.Kind, operand)

	switch form.Opcode {
	case OP_ST:
		cpu.Ram[operand] = cpu.Acc
	case OP_LD:
		cpu.setAcc(value)
	case OP_AND:
		cpu.setAcc(cpu.Acc & value)
	case OP_OR:
		cpu.setAcc(cpu.Acc | value)
	case OP_XOR:
		cpu.setAcc(cpu.Acc ^ value)
	case OP_ROL:
		cpu.Carry = cpu.Acc&0x80 != 0
		rotated := cpu.Acc << 1
		if cpu.Carry {
			rotated |= 0x01
		}
		cpu.setAcc(rotated)
	case OP_ROR:
		cpu.Carry = cpu.Acc&0x01 != 0
		rotated := cpu.Acc >> 1
		if cpu.Carry {
			rotated |= 0x80
		}
		cpu.setAcc(rotated)
	case OP_ADD:
		cpu.setAcc(cpu.add(cpu.Acc, value, false))
	case OP_ADC:
		cpu.setAcc(cpu.add(cpu.Acc, value, cpu.Carry))
	case OP_NEG:
		cpu.setAcc(-value)
	case OP_INC:
		result := value + 1
		cpu.Carry = result < value
		cpu.setValue(form.Kind, operand, result)
		cpu.setResult(result)
	case OP_DEC:
		result := value - 1
		cpu.Carry = result > value
		cpu.setValue(form.Kind, operand, result)
		cpu.setResult(result)
	case OP_SETC:
		cpu.Carry = true
	case OP_CLRC:
		cpu.Carry = false
	case OP_TRFNC:
		cpu.Carry = cpu.Negative
	case OP_BZ0, OP_BZ1, OP_BC0, OP_BC1, OP_BV0, OP_BV1, OP_BN0, OP_BN1, OP_BRA:
		if cpu.branchTaken(form.Opcode) {
			next_pc = operand
		}
	case OP_NOP:
		// pass
	default:
		err = ErrOpcode(code)
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
