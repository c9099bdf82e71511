package emulator

import (
	"strconv"

	"github.com/ezrec/nanochip/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int   // Source line, or 0 if no listing is loaded.
	Pc     uint8 // Program counter of the failing instruction.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc %02x: %v", err.Pc, err.Err)
	}
	return f("line %v (pc %02x): %v", strconv.Itoa(err.LineNo), err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
