package rom

import (
	"errors"

	"github.com/ezrec/nanochip/translate"
)

var f = translate.From

var (
	ErrRomSize = errors.New(f("rom file size must be at most %d bytes", MAX_BYTES))
)
