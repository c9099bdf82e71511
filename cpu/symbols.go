package cpu

import (
	"iter"
	"maps"
)

const (
	MAX_INSTRUCTIONS = 128 // Maximum instructions in a program.
)

// Symbols is the constant and label table of a single assembly.
// Both maps only grow; a name may be defined once.
type Symbols struct {
	Constant map[string]uint8 // Constant values.
	Label    map[string]uint8 // Label instruction indexes.
}

// NewSymbols creates an empty symbol table.
func NewSymbols() *Symbols {
	return &Symbols{
		Constant: make(map[string]uint8),
		Label:    make(map[string]uint8),
	}
}

// DefineConstant defines a new constant.
func (sym *Symbols) DefineConstant(name string, value uint8) (err error) {
	if len(name) == 0 {
		err = ErrConstantSyntax
		return
	}

	_, ok := sym.Constant[name]
	if ok {
		err = ErrConstantDuplicate
		return
	}

	sym.Constant[name] = value

	return
}

// DefineLabel defines a new label at an instruction index.
func (sym *Symbols) DefineLabel(name string, ip uint8) (err error) {
	if len(name) == 0 {
		err = ErrLabelSyntax
		return
	}

	_, ok := sym.Label[name]
	if ok {
		err = ErrLabelDuplicate
		return
	}

	sym.Label[name] = ip

	return
}

// Constants returns an iterator over the defined constants.
func (sym *Symbols) Constants() iter.Seq2[string, uint8] {
	return maps.All(sym.Constant)
}

// Resolve replaces a constant or label reference with its raw value.
// The addressing mode of the value is kept.
func (sym *Symbols) Resolve(param Parameter) (resolved Parameter, err error) {
	value, ok := param.(Value)
	if !ok {
		resolved = param
		return
	}

	switch ref := value.Ref.(type) {
	case Const:
		raw, ok := sym.Constant[string(ref)]
		if !ok {
			err = ErrConstantMissing(ref)
			return
		}
		value.Ref = Raw(raw)
	case Label:
		raw, ok := sym.Label[string(ref)]
		if !ok {
			err = ErrLabelMissing(ref)
			return
		}
		value.Ref = Raw(raw)
	}

	resolved = value

	return
}

// ResolveAll resolves every parameter of an instruction.
func (sym *Symbols) ResolveAll(params []Parameter) (resolved []Parameter, err error) {
	for _, param := range params {
		var out Parameter
		out, err = sym.Resolve(param)
		if err != nil {
			resolved = nil
			return
		}
		resolved = append(resolved, out)
	}

	return
}
