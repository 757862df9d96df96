// Package isa is the single source of truth for the LC-16 instruction set:
// opcode numbering, instruction shapes, register aliases, and condition-flag
// bit positions. Both the assembler (package asm) and the emulator (package
// emu) import it so the two tools can never disagree about how a word is
// built or taken apart.
package isa

// Opcode identifies one of the 29 LC-16 instructions. Values are dense in
// 0x00..=0x1C; anything else is not a valid opcode.
type Opcode uint8

const (
	OpMovImm Opcode = 0x00
	OpMovReg Opcode = 0x01
	OpLda    Opcode = 0x02
	OpLdr    Opcode = 0x03
	OpStra   Opcode = 0x04
	OpStrr   Opcode = 0x05
	OpPush   Opcode = 0x06
	OpPop    Opcode = 0x07
	OpAddImm Opcode = 0x08
	OpAddReg Opcode = 0x09
	OpSubImm Opcode = 0x0A
	OpSubReg Opcode = 0x0B
	OpShl    Opcode = 0x0C
	OpShr    Opcode = 0x0D
	OpAnd    Opcode = 0x0E
	OpOr     Opcode = 0x0F
	OpNot    Opcode = 0x10
	OpJmp    Opcode = 0x11
	OpBln    Opcode = 0x12
	OpRet    Opcode = 0x13
	OpCmpImm Opcode = 0x14
	OpCmpReg Opcode = 0x15
	OpBeq    Opcode = 0x16
	OpBne    Opcode = 0x17
	OpBgt    Opcode = 0x18
	OpBgtu   Opcode = 0x19
	OpBlt    Opcode = 0x1A
	OpBltu   Opcode = 0x1B
	OpHalt   Opcode = 0x1C

	// OpcodeMax is the highest opcode value the enum defines.
	OpcodeMax = OpHalt
)

var opcodeNames = map[Opcode]string{
	OpMovImm: "mov", OpMovReg: "mov", OpLda: "lda", OpLdr: "ldr",
	OpStra: "stra", OpStrr: "strr", OpPush: "push", OpPop: "pop",
	OpAddImm: "add", OpAddReg: "add", OpSubImm: "sub", OpSubReg: "sub",
	OpShl: "shl", OpShr: "shr", OpAnd: "and", OpOr: "or", OpNot: "not",
	OpJmp: "jmp", OpBln: "bln", OpRet: "ret", OpCmpImm: "cmp", OpCmpReg: "cmp",
	OpBeq: "beq", OpBne: "bne", OpBgt: "bgt", OpBgtu: "bgtu", OpBlt: "blt",
	OpBltu: "bltu", OpHalt: "halt",
}

// OpcodeFromByte converts a raw 5-bit value to an Opcode, failing on values
// outside the 29-element enum.
func OpcodeFromByte(b uint8) (Opcode, bool) {
	if b > uint8(OpcodeMax) {
		return 0, false
	}
	if _, ok := opcodeNames[Opcode(b)]; !ok {
		return 0, false
	}
	return Opcode(b), true
}

// String returns the mnemonic associated with the opcode. Immediate/register
// variant pairs (mov, add, sub, cmp) share one mnemonic; pop/shr/or print
// distinctly from their push/shl/and partner.
func (o Opcode) String() string {
	if n, ok := opcodeNames[o]; ok {
		return n
	}
	return "???"
}

// IsBranchFamily reports whether the opcode belongs to the set of
// instructions that control pc directly (§4.7 PC update discipline):
// jmp, bln, ret, and the six conditional branches.
func (o Opcode) IsBranchFamily() bool {
	switch o {
	case OpJmp, OpBln, OpRet, OpBeq, OpBne, OpBgt, OpBgtu, OpBlt, OpBltu:
		return true
	default:
		return false
	}
}
