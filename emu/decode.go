package emu

import "github.com/pdxjjb/lc16/isa"

// Decoded is a fetched instruction word broken into its opcode and operand
// fields, ready for Execute to dispatch on.
type Decoded struct {
	Word   uint16
	Opcode isa.Opcode
	Shape  isa.Shape
	Fields isa.Fields
}

// Decode extracts the opcode and, from its shape, the operand fields of a
// fetched instruction word (§4.6). An opcode value outside the 29-element
// enum is fatal.
func Decode(word uint16) (Decoded, error) {
	raw := isa.DecodeOpcode(word)
	op, ok := isa.OpcodeFromByte(raw)
	if !ok {
		return Decoded{}, errUnrecognizedOpcode(raw)
	}
	shape := isa.ShapeOf(op)
	return Decoded{
		Word:   word,
		Opcode: op,
		Shape:  shape,
		Fields: isa.DecodeFields(word, shape),
	}, nil
}
