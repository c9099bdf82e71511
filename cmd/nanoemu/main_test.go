package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/nanochip/cpu"
	"github.com/ezrec/nanochip/emulator"
)

func newLoopEmulator(t *testing.T) *emulator.Emulator {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(":loop ADD 1\nBRA :loop"))
	if err != nil {
		t.Fatal(err)
	}

	emu := emulator.NewEmulator()
	emu.LoadProgram(prog)

	return emu
}

func TestStepUnlimited(t *testing.T) {
	assert := assert.New(t)

	emu := newLoopEmulator(t)

	// Ticks until the input runs out: one tick per line, plus the last.
	input := strings.Repeat("\n", 1500)
	out := &bytes.Buffer{}
	err := step(emu, strings.NewReader(input), out, 0)
	assert.NoError(err)
	assert.Equal(1501, emu.Cpu.Ticks)
	assert.Equal(1501, strings.Count(out.String(), "Program Counter"))
}

func TestStepLimit(t *testing.T) {
	assert := assert.New(t)

	emu := newLoopEmulator(t)

	err := step(emu, strings.NewReader(strings.Repeat("\n", 10)), &bytes.Buffer{}, 3)
	assert.NoError(err)
	assert.Equal(3, emu.Cpu.Ticks)
	assert.Equal(uint8(2), emu.Cpu.Acc)
}

func TestStepFault(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	err := emu.Load(bytes.NewReader([]byte{0x3F, 0x00}))
	assert.NoError(err)

	err = step(emu, strings.NewReader("\n\n\n"), &bytes.Buffer{}, 0)
	assert.ErrorIs(err, cpu.ErrOpcode(0))
	assert.Equal(1, emu.Cpu.Ticks)
}
