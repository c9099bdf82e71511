package rom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/nanochip/cpu"
)

func TestRomLoad(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input []byte
		data  []cpu.Code
	}){
		{[]byte{}, []cpu.Code{}},
		{[]byte{0x01, 0x2A}, []cpu.Code{0x012A}},
		{[]byte{0x02, 0x10, 0x3F, 0x00}, []cpu.Code{0x0210, 0x3F00}},
		{[]byte{0x02, 0x10, 0x3F}, []cpu.Code{0x0210}},
	}

	for _, entry := range table {
		rom := &Rom{}
		err := rom.Load(bytes.NewReader(entry.input))
		assert.NoError(err, "%v", entry.input)
		assert.Equal(entry.data, rom.Data, "%v", entry.input)
	}
}

func TestRomLoadLimit(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}

	err := rom.Load(bytes.NewReader(make([]byte, MAX_BYTES)))
	assert.NoError(err)
	assert.Equal(MAX_WORDS, len(rom.Data))

	err = rom.Load(bytes.NewReader(make([]byte, MAX_BYTES+1)))
	assert.ErrorIs(err, ErrRomSize)
	assert.Equal(MAX_WORDS, len(rom.Data))
}

func TestRomSave(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []cpu.Code{0x012A, 0x3F00}}

	buff := &bytes.Buffer{}
	err := rom.Save(buff)
	assert.NoError(err)
	assert.Equal([]byte{0x01, 0x2A, 0x3F, 0x00}, buff.Bytes())

	loaded := &Rom{}
	err = loaded.Load(buff)
	assert.NoError(err)
	assert.Equal(rom.Data, loaded.Data)

	rom.Data = make([]cpu.Code, MAX_WORDS+1)
	err = rom.Save(&bytes.Buffer{})
	assert.ErrorIs(err, ErrRomSize)
}

func TestRomAssembled(t *testing.T) {
	assert := assert.New(t)

	words, err := cpu.Assemble("LD 42A\nNEG ACC\nNOP")
	assert.NoError(err)

	rom := &Rom{Data: words}
	buff := &bytes.Buffer{}
	assert.NoError(rom.Save(buff))
	assert.Equal([]byte{0x03, 0x2A, 0x10, 0x00, 0x3F, 0x00}, buff.Bytes())
}
