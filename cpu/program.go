package cpu

import (
	"iter"
)

// Instruction represents a line of assembled code with its source location.
type Instruction struct {
	LineNo int         // Source line number, 1-based.
	Ip     int         // Index of the instruction in the program.
	Words  []string    // Source words.
	Opcode Opcode      // Instruction opcode.
	Params []Parameter // Parameters; resolved once the program is assembled.
	Code   Code        // Encoded instruction word.
}

type Program struct {
	Instructions []Instruction
}

type Debug struct {
	*Instruction
}

// Debug finds the instruction at an instruction pointer.
func (prog *Program) Debug(ip uint8) (dbg Debug) {
	for n, ins := range prog.Instructions {
		if ins.Ip == int(ip) {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
			}
			break
		}
	}

	return
}

// Codes returns an iterator over the instruction pointers and words.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(ip uint8, code Code) bool) {
		for _, ins := range prog.Instructions {
			if !yield(uint8(ins.Ip), ins.Code) {
				return
			}
		}
	}
}

// Words returns the program as a sequence of instruction words.
func (prog *Program) Words() (words []Code) {
	for _, code := range prog.Codes() {
		words = append(words, code)
	}

	return
}

// Binary returns the program image: each word high byte first.
func (prog *Program) Binary() (bins []byte) {
	for _, code := range prog.Codes() {
		bins = append(bins, code.Opcode(), code.Operand())
	}

	return
}
