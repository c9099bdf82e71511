package rom

import (
	"bufio"
	"fmt"
	"io"
)

const (
	VHDL_WORD_MASK = 0x3fff           // Opcodes are 6 bits wide in the ROM table.
	VHDL_OTHERS    = "10001011111111" // Word selected for unused addresses.
)

// WriteVHDL writes the image as the choices of a VHDL selected signal
// assignment: one line per word, keyed by its address, then the
// fallback for all other addresses.
func (rom *Rom) WriteVHDL(w io.Writer) (err error) {
	wr := bufio.NewWriter(w)

	for addr, code := range rom.Codes() {
		_, err = fmt.Fprintf(wr, "\"%014b\" when \"%08b\",\n", uint16(code)&VHDL_WORD_MASK, addr)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(wr, "\"%s\" when others;\n", VHDL_OTHERS)
	if err != nil {
		return
	}

	err = wr.Flush()

	return
}
