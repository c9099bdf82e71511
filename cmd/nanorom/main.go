// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/nanochip/rom"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v image.bin", os.Args[0], os.Args[0])
	}

	input := flag.Arg(0)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	image := &rom.Rom{}
	err = image.Load(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	err = image.WriteVHDL(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}
