// Package cpu implements the nano chip microprocessor and its assembler.
//
// The nano chip is an 8-bit accumulator machine: one accumulator, four flags
// (Zero, Carry, oVerflow, Negative), an 8-bit program counter, 256 bytes of
// RAM and a 256 word ROM. Every instruction is a single 16-bit word holding
// the opcode byte followed by the operand byte.
//
// The assembler is a two-pass, line oriented assembler. Constants ($name) and
// labels (:name) are collected in a per-assembly symbol table, and resolved
// once the whole program is known, so labels may be used before they are
// declared.
package cpu
