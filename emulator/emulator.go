// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs nano chip program images.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"

	"github.com/ezrec/nanochip/cpu"
	"github.com/ezrec/nanochip/internal"
	"github.com/ezrec/nanochip/rom"
	"github.com/ezrec/nanochip/translate"
)

const (
	STATUS_COLUMNS = 8                            // RAM bytes per status row.
	STATUS_ROWS    = 8                            // RAM rows in the status.
	STATUS_BYTES   = STATUS_COLUMNS * STATUS_ROWS // RAM bytes shown in the status.
)

var _emulator_defines = map[string]uint8{
	"STATUS_LAST": STATUS_BYTES - 1,
}

// Emulator state. CPU + program image + optional source listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Source listing of the image, if known.
	Image    rom.Rom      // Program image.
}

// NewEmulator creates a new emulator, with an empty ROM.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, uint8] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Load an image from a reader, and reset.
// The source listing is cleared.
func (emu *Emulator) Load(r io.Reader) (err error) {
	err = emu.Image.Load(r)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{}
	emu.Reset()

	return
}

// LoadProgram loads an assembled program, and resets.
// The program is kept as the source listing.
func (emu *Emulator) LoadProgram(prog *cpu.Program) {
	emu.Image.Data = prog.Words()
	emu.Program = prog
	emu.Reset()
}

// Reset the CPU, reloading the ROM from the image.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Image.Data)
}

// LineNo returns the source line number of the current instruction,
// or 0 if it is not in the listing.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Instruction == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc

	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		return
	}

	return
}

// Run performs up to ticks ticks, stopping at the first error.
func (emu *Emulator) Run(ticks int) (err error) {
	for range ticks {
		err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// WriteStatus writes the RAM display and the CPU state.
func (emu *Emulator) WriteStatus(w io.Writer) (err error) {
	for row := range STATUS_ROWS {
		line := &strings.Builder{}
		for col := range STATUS_COLUMNS {
			fmt.Fprintf(line, "%3x", emu.Cpu.Ram[row*STATUS_COLUMNS+col])
		}
		_, err = fmt.Fprintln(w, line.String())
		if err != nil {
			return
		}
	}

	code := emu.Cpu.Code()

	_, err = translate.Fprintf(w, "\nProgram Counter : %x\nOpcode : %x\nOperand : %x\n",
		emu.Cpu.Pc, code.Opcode(), code.Operand())
	if err != nil {
		return
	}

	_, err = io.WriteString(w, emu.Cpu.String())
	if err != nil {
		return
	}

	lineno := emu.LineNo()
	if lineno != 0 {
		_, err = translate.Fprintf(w, "% 5s: %v\n", "line", strconv.Itoa(lineno))
		if err != nil {
			return
		}
	}

	_, err = translate.Fprintf(w, "% 5s: %v\n", "ticks", strconv.Itoa(emu.Cpu.Ticks))

	return
}

// String returns the emulator status as a string.
func (emu *Emulator) String() string {
	text := &strings.Builder{}
	emu.WriteStatus(text)
	return text.String()
}
