package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value    Value
		kind     Kind
		text     string
		raw      uint8
		resolved bool
	}){
		{Value{Direct: true, Ref: Raw(42)}, KIND_DIRECT, "42", 42, true},
		{Value{Direct: false, Ref: Raw(7)}, KIND_INDIRECT, "[7]", 7, true},
		{Value{Direct: true, Ref: Const("top")}, KIND_DIRECT, "$top", 0, false},
		{Value{Direct: false, Ref: Const("top")}, KIND_INDIRECT, "[$top]", 0, false},
		{Value{Direct: true, Ref: Label("loop")}, KIND_DIRECT, ":loop", 0, false},
		{Value{Direct: true}, KIND_DIRECT, "?", 0, false},
	}

	for _, entry := range table {
		assert.Equal(entry.kind, entry.value.Kind(), entry.text)
		assert.Equal(entry.text, entry.value.String())

		raw, ok := entry.value.Resolved()
		assert.Equal(entry.resolved, ok, entry.text)
		assert.Equal(entry.raw, raw, entry.text)
	}
}

func TestAcc(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KIND_ACC, Acc{}.Kind())
	assert.Equal("ACC", Acc{}.String())
}
