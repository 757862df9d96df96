package asm

import (
	"strconv"
	"strings"

	"github.com/pdxjjb/lc16/isa"
)

// encoder is the shared contract every mnemonic handler satisfies (§4.4):
// given its argument tokens, the completed symbol table, and the 0-based
// source line (for error reporting), produce the instruction's two bytes.
type encoder func(args []string, symbols map[string]uint16, line int) (msb, lsb uint8, err error)

// encoders is a static table keyed by mnemonic string, built once as a
// composite literal (§9's design note: no mutable global built via Insert
// calls after startup).
var encoders = map[string]encoder{
	"mov":  encodeMov,
	"lda":  encodeLabelOnly(isa.OpLda),
	"ldr":  encodeLoadStore(isa.OpLdr),
	"stra": encodeLabelOnly(isa.OpStra),
	"strr": encodeLoadStore(isa.OpStrr),
	"push": encodePush,
	"pop":  withBit3(encodePush),
	"add":  encodeArith(isa.OpAddImm, isa.OpAddReg),
	"sub":  encodeArith(isa.OpSubImm, isa.OpSubReg),
	"shl":  encodeShift,
	"shr":  withBit3(encodeShift),
	"and":  encodeT4Triple(isa.OpAnd),
	"or":   withBit3(encodeT4Triple(isa.OpAnd)),
	"not":  encodeNot,
	"jmp":  encodeLabelOnly(isa.OpJmp),
	"bln":  encodeLabelOnly(isa.OpBln),
	"ret":  encodeNoArgs(isa.OpRet),
	"cmp":  encodeCmp,
	"beq":  encodeLabelOnly(isa.OpBeq),
	"bne":  encodeLabelOnly(isa.OpBne),
	"bgt":  encodeLabelOnly(isa.OpBgt),
	"bgtu": encodeLabelOnly(isa.OpBgtu),
	"blt":  encodeLabelOnly(isa.OpBlt),
	"bltu": encodeLabelOnly(isa.OpBltu),
	"halt": encodeNoArgs(isa.OpHalt),
}

// withBit3 wraps an encoder whose "twin" mnemonic (push/shl/and) shares its
// shape and argument parsing, flipping the opcode to its +1 partner by
// OR-ing bit 3 of the MSB byte (§4.4).
func withBit3(base encoder) encoder {
	return func(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
		msb, lsb, err := base(args, symbols, line)
		if err != nil {
			return 0, 0, err
		}
		return msb | 0x08, lsb, nil
	}
}

// splitWord returns an encoded word as the (msb, lsb, nil) triple every
// encoder returns.
func splitWord(word uint16) (uint8, uint8, error) {
	msb, lsb := isa.Split(word)
	return msb, lsb, nil
}

func encodeNoArgs(op isa.Opcode) encoder {
	return func(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
		if len(args) != 0 {
			return 0, 0, errWrongArgs(line, op.String())
		}
		return splitWord(isa.EncodeT3(op, 0))
	}
}

func encodeLabelOnly(op isa.Opcode) encoder {
	return func(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
		if len(args) != 1 {
			return 0, 0, errWrongArgs(line, op.String())
		}
		addr, err := parseLabel(args[0], symbols, line)
		if err != nil {
			return 0, 0, err
		}
		return splitWord(isa.EncodeT3(op, addr))
	}
}

func encodeMov(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
	if len(args) != 2 {
		return 0, 0, errWrongArgs(line, "mov")
	}
	rd, err := parseRegister(args[0], line)
	if err != nil {
		return 0, 0, err
	}
	if strings.HasPrefix(args[1], "#") {
		imm, err := parseImmediate(args[1], line)
		if err != nil {
			return 0, 0, err
		}
		return splitWord(isa.EncodeT1(isa.OpMovImm, rd, imm))
	}
	rs, err := parseRegister(args[1], line)
	if err != nil {
		return 0, 0, err
	}
	return splitWord(isa.EncodeT2(isa.OpMovReg, rd, rs, 0))
}

func encodeCmp(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
	if len(args) != 2 {
		return 0, 0, errWrongArgs(line, "cmp")
	}
	ra, err := parseRegister(args[0], line)
	if err != nil {
		return 0, 0, err
	}
	if strings.HasPrefix(args[1], "#") {
		imm, err := parseImmediate(args[1], line)
		if err != nil {
			return 0, 0, err
		}
		return splitWord(isa.EncodeT1(isa.OpCmpImm, ra, imm))
	}
	rb, err := parseRegister(args[1], line)
	if err != nil {
		return 0, 0, err
	}
	return splitWord(isa.EncodeT2(isa.OpCmpReg, ra, rb, 0))
}

// encodeArith handles the three-operand immediate/register variant pair
// shared by add and sub: rd, rA, #imm|rB (§6.2).
func encodeArith(immOp, regOp isa.Opcode) encoder {
	return func(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
		name := immOp.String()
		if len(args) != 3 {
			return 0, 0, errWrongArgs(line, name)
		}
		rd, err := parseRegister(args[0], line)
		if err != nil {
			return 0, 0, err
		}
		ra, err := parseRegister(args[1], line)
		if err != nil {
			return 0, 0, err
		}
		if strings.HasPrefix(args[2], "#") {
			imm, err := parseImmediate(args[2], line)
			if err != nil {
				return 0, 0, err
			}
			return splitWord(isa.EncodeT2(immOp, rd, ra, imm))
		}
		rb, err := parseRegister(args[2], line)
		if err != nil {
			return 0, 0, err
		}
		return splitWord(isa.EncodeT4(regOp, rd, ra, rb, 0))
	}
}

// encodeT4Triple handles the plain three-register T4 shapes: and (or, via
// withBit3), rd rA rB (§6.2).
func encodeT4Triple(op isa.Opcode) encoder {
	return func(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
		if len(args) != 3 {
			return 0, 0, errWrongArgs(line, op.String())
		}
		rd, err := parseRegister(args[0], line)
		if err != nil {
			return 0, 0, err
		}
		ra, err := parseRegister(args[1], line)
		if err != nil {
			return 0, 0, err
		}
		rb, err := parseRegister(args[2], line)
		if err != nil {
			return 0, 0, err
		}
		return splitWord(isa.EncodeT4(op, rd, ra, rb, 0))
	}
}

func encodeNot(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
	if len(args) != 2 {
		return 0, 0, errWrongArgs(line, "not")
	}
	rd, err := parseRegister(args[0], line)
	if err != nil {
		return 0, 0, err
	}
	rs, err := parseRegister(args[1], line)
	if err != nil {
		return 0, 0, err
	}
	return splitWord(isa.EncodeT2(isa.OpNot, rd, rs, 0))
}

func encodeShift(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
	if len(args) != 3 {
		return 0, 0, errWrongArgs(line, "shl")
	}
	rd, err := parseRegister(args[0], line)
	if err != nil {
		return 0, 0, err
	}
	rs, err := parseRegister(args[1], line)
	if err != nil {
		return 0, 0, err
	}
	imm, err := parseImmediate(args[2], line)
	if err != nil {
		return 0, 0, err
	}
	return splitWord(isa.EncodeT5(isa.OpShl, rd, rs, imm))
}

// encodeLoadStore handles ldr/strr: rd|rs, &radr, optional #off (§6.2).
func encodeLoadStore(op isa.Opcode) encoder {
	return func(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
		name := op.String()
		if len(args) != 2 && len(args) != 3 {
			return 0, 0, errWrongArgs(line, name)
		}
		rd, err := parseRegister(args[0], line)
		if err != nil {
			return 0, 0, err
		}
		radr, err := parseAddrRegister(args[1], line)
		if err != nil {
			return 0, 0, err
		}
		var off uint8
		if len(args) == 3 {
			off, err = parseImmediate(args[2], line)
			if err != nil {
				return 0, 0, err
			}
		}
		return splitWord(isa.EncodeT2(op, rd, radr, off))
	}
}

// encodePush implements push (and, via withBit3, pop): 1-3 registers packed
// into T4's ra/rb/rc slots, with the register count recorded explicitly in
// the shape's two unused bits (OQ1).
func encodePush(args []string, symbols map[string]uint16, line int) (uint8, uint8, error) {
	if len(args) < 1 || len(args) > 3 {
		return 0, 0, errWrongArgs(line, "push")
	}
	var regs [3]uint8
	for i, a := range args {
		r, err := parseRegister(a, line)
		if err != nil {
			return 0, 0, err
		}
		regs[i] = r
	}
	return splitWord(isa.EncodeT4(isa.OpPush, regs[0], regs[1], regs[2], uint8(len(args))))
}

func parseRegister(tok string, line int) (uint8, error) {
	idx, ok := isa.RegisterByName(strings.ToLower(tok))
	if !ok {
		return 0, errUnrecognized(line, tok)
	}
	return idx, nil
}

func parseAddrRegister(tok string, line int) (uint8, error) {
	if !strings.HasPrefix(tok, "&") {
		return 0, errStartWithAmp(line, tok)
	}
	return parseRegister(tok[1:], line)
}

func parseImmediate(tok string, line int) (uint8, error) {
	if !strings.HasPrefix(tok, "#") {
		return 0, errStartWithHash(line, tok)
	}
	v, err := strconv.ParseInt(tok[1:], 10, 8)
	if err != nil {
		return 0, errUnrecognized(line, tok)
	}
	return uint8(int8(v)), nil
}

func parseLabel(tok string, symbols map[string]uint16, line int) (uint16, error) {
	addr, ok := symbols[tok]
	if !ok {
		return 0, errUnrecognized(line, tok)
	}
	return addr, nil
}
