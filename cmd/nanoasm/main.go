// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/nanochip/cpu"
	"github.com/ezrec/nanochip/emulator"
	"github.com/ezrec/nanochip/internal"
	"github.com/ezrec/nanochip/rom"
)

// defineFlags collects -D name=value options.
type defineFlags map[string]uint8

func (df defineFlags) String() string {
	var defs []string
	for name, value := range df {
		defs = append(defs, fmt.Sprintf("%s=%d", name, value))
	}
	return strings.Join(defs, ",")
}

func (df defineFlags) Set(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%q: expected name=value", text)
		return
	}

	number, err := strconv.ParseUint(value, 0, 8)
	if err != nil {
		return
	}

	df[name] = uint8(number)

	return
}

func main() {
	var verbose bool
	var dump bool
	defines := defineFlags{}

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "dump", false, "Dump the assembled listing")
	flag.Var(defines, "D", "Predefine a constant, as name=value")

	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("%v: usage: %v [options] input.asm output.bin", os.Args[0], os.Args[0])
	}

	input := flag.Arg(0)
	output := flag.Arg(1)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	emu := emulator.NewEmulator()
	for name, value := range internal.IterSeq2Concat(emu.Defines(), maps.All(defines)) {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if dump {
		pp.Println(prog)
	}

	image := &rom.Rom{Data: prog.Words()}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	defer ouf.Close()

	err = image.Save(ouf)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
