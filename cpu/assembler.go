// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a two pass assembler for the nano chip.
//
// The first pass collects constants, labels and symbolic instructions,
// the second pass resolves symbols and encodes the instructions.
type Assembler struct {
	Verbose      bool          // If set, verbosely logs the assembler actions.
	Instructions []Instruction // List of parsed instructions.
	Symbols      *Symbols      // Symbol table of the last assembly.

	predefine map[string]uint8 // Predefined constants.
}

// Predefine defines a constant available to every assembly.
func (asm *Assembler) Predefine(name string, value uint8) {
	if asm.predefine == nil {
		asm.predefine = map[string]uint8{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Assemble assembles program text into instruction words.
func Assemble(text string) (words []Code, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	if err != nil {
		return
	}

	words = prog.Words()

	return
}

// isDecimal returns true if the word is a non-empty string of decimal digits.
func isDecimal(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// valueOf returns the byte value of a decimal word.
func valueOf(word string) (value uint8, err error) {
	if !isDecimal(word) {
		err = ErrParseNumber(word)
		return
	}

	v64, err := strconv.ParseUint(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xff {
		err = ErrValueRange
		return
	}

	value = uint8(v64)

	return
}

// parenEval does compile-time (...) evaluations of constant values.
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range asm.Symbols.Constants() {
		pred[key] = starlark.MakeInt(int(value))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xff {
		err = ErrValueRange
		return
	}
	value = uint8(st_int64)
	return
}

// parseRef parses a raw byte, constant or label reference.
func parseRef(word string) (ref Ref, err error) {
	switch {
	case isDecimal(word):
		var value uint8
		value, err = valueOf(word)
		if err != nil {
			return
		}
		ref = Raw(value)
	case len(word) > 1 && word[0] == '$':
		ref = Const(word[1:])
	case len(word) > 1 && word[0] == ':':
		ref = Label(word[1:])
	default:
		err = ErrParseValue(word)
	}

	return
}

// parseParameter parses an instruction parameter.
//
//	ACC      accumulator
//	[inner]  indirect value
//	42C      direct value 42
//	42A      indirect value 42
//	inner    direct value
func parseParameter(word string) (param Parameter, err error) {
	if word == "ACC" {
		param = Acc{}
		return
	}

	direct := true
	inner := word

	last := len(word) - 1
	switch {
	case word[0] == '[':
		if last < 1 || word[last] != ']' {
			err = ErrBracket
			return
		}
		inner = word[1:last]
		direct = false
	case last > 0 && isDecimal(word[:last]) && word[last] == 'C':
		inner = word[:last]
	case last > 0 && isDecimal(word[:last]) && word[last] == 'A':
		inner = word[:last]
		direct = false
	}

	ref, err := parseRef(inner)
	if err != nil {
		return
	}

	param = Value{Direct: direct, Ref: ref}

	return
}

// parseLine runs the first pass over a single line.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	words := strings.Fields(strings.SplitN(line, ";", 2)[0])

	if len(words) == 0 {
		return
	}

	// $name value
	if words[0][0] == '$' {
		if len(words) < 2 {
			err = ErrConstantSyntax
			return
		}
		var value uint8
		expr := strings.Join(words[1:], " ")
		if strings.HasPrefix(expr, "(") {
			value, err = asm.parenEval(expr)
		} else {
			value, err = valueOf(expr)
		}
		if err != nil {
			return
		}
		err = asm.Symbols.DefineConstant(words[0][1:], value)
		return
	}

	// :name [instruction]
	for words[0][0] == ':' {
		err = asm.Symbols.DefineLabel(words[0][1:], uint8(len(asm.Instructions)))
		if err != nil {
			return
		}
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	op, ok := opcodeMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	var params []Parameter
	for _, word := range words[1:] {
		var param Parameter
		param, err = parseParameter(word)
		if err != nil {
			return
		}
		value, ok := param.(Value)
		if ok && !value.Direct {
			if _, is_label := value.Ref.(Label); is_label {
				err = ErrLabelIndirect
				return
			}
		}
		params = append(params, param)
	}

	if len(asm.Instructions) >= MAX_INSTRUCTIONS {
		err = ErrProgramFull
		return
	}

	asm.Instructions = append(asm.Instructions, Instruction{
		LineNo: lineno,
		Ip:     len(asm.Instructions),
		Words:  words,
		Opcode: op,
		Params: params,
	})

	return
}

// Parse parses an input stream into a Program of encoded instructions.
// Assembly is all or nothing: on error, no program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Instructions = asm.Instructions[:0]
	asm.Symbols = NewSymbols()
	for name, value := range asm.predefine {
		asm.Symbols.Constant[name] = value
	}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Replace constant and label references with their values.
	for n := range asm.Instructions {
		ins := &asm.Instructions[n]
		lineno = ins.LineNo
		line = strings.Join(ins.Words, " ")

		ins.Params, err = asm.Symbols.ResolveAll(ins.Params)
		if err != nil {
			return
		}
	}

	for n := range asm.Instructions {
		ins := &asm.Instructions[n]
		lineno = ins.LineNo
		line = strings.Join(ins.Words, " ")

		ins.Code, err = Encode(ins.Opcode, ins.Params...)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%02x: %04x %v", ins.Ip, uint16(ins.Code), ins.Code)
		}
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instructions),
	}

	return
}
