// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/nanochip/cpu"
	"github.com/ezrec/nanochip/emulator"
)

const (
	BATCH_TICKS = 1000 // Default tick limit without a terminal.
)

// step shows the status and ticks once per input line, until the input
// ends or ticks have run. Zero ticks is unlimited.
func step(emu *emulator.Emulator, in io.Reader, out io.Writer, ticks int) (err error) {
	input := bufio.NewReader(in)
	for n := 0; ticks == 0 || n < ticks; n++ {
		err = emu.WriteStatus(out)
		if err != nil {
			return
		}
		err = emu.Tick()
		if err != nil {
			return
		}
		_, err = input.ReadString('\n')
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	return
}

func main() {
	var verbose bool
	var ticks int
	var listing string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&ticks, "n", 0, "Maximum ticks to run, 0 for no limit when stepping")
	flag.StringVar(&listing, "l", "", ".asm source of the image, for line numbers")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [options] image.bin", os.Args[0], os.Args[0])
	}

	image := flag.Arg(0)

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	inf, err := os.Open(image)
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}
	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	if len(listing) != 0 {
		lnf, err := os.Open(listing)
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
		asm := &cpu.Assembler{}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		prog, err := asm.Parse(lnf)
		lnf.Close()
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
		emu.Program = prog
	}

	// Without a terminal, run to the tick limit and show the final state.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if ticks == 0 {
			ticks = BATCH_TICKS
		}
		err = emu.Run(ticks)
		emu.WriteStatus(os.Stdout)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		return
	}

	err = step(emu, os.Stdin, os.Stdout, ticks)
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}
}
