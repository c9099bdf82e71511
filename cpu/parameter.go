package cpu

import (
	"fmt"
)

// Parameter is an instruction parameter, either Acc or a Value.
type Parameter interface {
	// Kind returns the addressing shape of the parameter.
	Kind() Kind
	// String returns the assembler text of the parameter.
	String() string
}

// Acc is the accumulator parameter.
type Acc struct{}

var _ Parameter = Acc{}

func (Acc) Kind() Kind {
	return KIND_ACC
}

func (Acc) String() string {
	return "ACC"
}

// Ref is the source of a Value: Raw, Const or Label.
type Ref interface {
	isRef()
	String() string
}

// Raw is a literal byte.
type Raw uint8

// Const is a reference to a constant.
type Const string

// Label is a reference to a label.
type Label string

func (Raw) isRef()   {}
func (Const) isRef() {}
func (Label) isRef() {}

func (raw Raw) String() string {
	return fmt.Sprintf("%d", uint8(raw))
}

func (name Const) String() string {
	return "$" + string(name)
}

func (name Label) String() string {
	return ":" + string(name)
}

// Value is an operand: directly used, or used as a RAM address.
type Value struct {
	Direct bool // Use the byte itself, rather than RAM at the byte.
	Ref    Ref  // Source of the byte.
}

var _ Parameter = Value{}

func (value Value) Kind() Kind {
	if value.Direct {
		return KIND_DIRECT
	}
	return KIND_INDIRECT
}

func (value Value) String() string {
	if value.Ref == nil {
		return "?"
	}
	if value.Direct {
		return value.Ref.String()
	}
	return "[" + value.Ref.String() + "]"
}

// Resolved returns the raw byte of the value, if it has been resolved.
func (value Value) Resolved() (raw uint8, ok bool) {
	r, ok := value.Ref.(Raw)
	raw = uint8(r)
	return
}
