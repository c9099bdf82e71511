// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rom reads, writes and exports nano chip program images.
//
// An image is a raw sequence of big endian instruction words, with no
// header or trailer.
package rom

import (
	"io"
	"iter"

	"github.com/ezrec/nanochip/cpu"
)

const (
	MAX_WORDS = cpu.ROM_SIZE  // Maximum words in an image.
	MAX_BYTES = MAX_WORDS * 2 // Maximum bytes in an image.
)

// Rom is a program image.
type Rom struct {
	Data []cpu.Code
}

// Load replaces the image with the contents of a reader.
// A trailing odd byte is ignored.
func (rom *Rom) Load(r io.Reader) (err error) {
	buff, err := io.ReadAll(io.LimitReader(r, MAX_BYTES+1))
	if err != nil {
		return
	}

	if len(buff) > MAX_BYTES {
		err = ErrRomSize
		return
	}

	data := make([]cpu.Code, len(buff)/2)
	for n := range data {
		data[n] = cpu.MakeCode(buff[n*2], buff[n*2+1])
	}

	rom.Data = data

	return
}

// Save writes the image, high byte first.
func (rom *Rom) Save(w io.Writer) (err error) {
	if len(rom.Data) > MAX_WORDS {
		err = ErrRomSize
		return
	}

	buff := make([]byte, 0, len(rom.Data)*2)
	for _, code := range rom.Data {
		buff = append(buff, code.Opcode(), code.Operand())
	}

	_, err = w.Write(buff)

	return
}

// Codes returns an iterator over the ROM addresses and words.
func (rom *Rom) Codes() iter.Seq2[uint8, cpu.Code] {
	return func(yield func(addr uint8, code cpu.Code) bool) {
		for n, code := range rom.Data {
			if n >= MAX_WORDS {
				return
			}
			if !yield(uint8(n), code) {
				return
			}
		}
	}
}
