package emu

import (
	"fmt"
	"strings"

	"github.com/pdxjjb/lc16/isa"
)

// InstructionName returns a short human-readable description of a decoded
// instruction, used by debug mode's single-step trace.
func InstructionName(d Decoded) string {
	switch d.Opcode {
	case isa.OpMovImm:
		return fmt.Sprintf("mov r%d, #%d", d.Fields.RD, int8(d.Fields.Imm8))
	case isa.OpMovReg:
		return fmt.Sprintf("mov r%d, r%d", d.Fields.RD, d.Fields.RS)
	case isa.OpLda:
		return fmt.Sprintf("lda %#x", d.Fields.Imm11)
	case isa.OpStra:
		return fmt.Sprintf("stra %#x", d.Fields.Imm11)
	case isa.OpLdr:
		return fmt.Sprintf("ldr r%d, &r%d+%d", d.Fields.RD, d.Fields.RS, d.Fields.T2F)
	case isa.OpStrr:
		return fmt.Sprintf("strr r%d, &r%d+%d", d.Fields.RD, d.Fields.RS, d.Fields.T2F)
	case isa.OpPush:
		return fmt.Sprintf("push %s", pushPopRegs(d.Fields))
	case isa.OpPop:
		return fmt.Sprintf("pop %s", pushPopRegs(d.Fields))
	case isa.OpAddImm:
		return fmt.Sprintf("add r%d, r%d, #%d", d.Fields.RD, d.Fields.RS, signExtend5(d.Fields.T2F))
	case isa.OpAddReg:
		return fmt.Sprintf("add r%d, r%d, r%d", d.Fields.RA, d.Fields.RB, d.Fields.RC)
	case isa.OpSubImm:
		return fmt.Sprintf("sub r%d, r%d, #%d", d.Fields.RD, d.Fields.RS, signExtend5(d.Fields.T2F))
	case isa.OpSubReg:
		return fmt.Sprintf("sub r%d, r%d, r%d", d.Fields.RA, d.Fields.RB, d.Fields.RC)
	case isa.OpShl:
		return fmt.Sprintf("shl r%d, r%d, #%d", d.Fields.RD, d.Fields.RS, d.Fields.Imm4)
	case isa.OpShr:
		return fmt.Sprintf("shr r%d, r%d, #%d", d.Fields.RD, d.Fields.RS, d.Fields.Imm4)
	case isa.OpAnd:
		return fmt.Sprintf("and r%d, r%d, r%d", d.Fields.RA, d.Fields.RB, d.Fields.RC)
	case isa.OpOr:
		return fmt.Sprintf("or r%d, r%d, r%d", d.Fields.RA, d.Fields.RB, d.Fields.RC)
	case isa.OpNot:
		return fmt.Sprintf("not r%d, r%d", d.Fields.RD, d.Fields.RS)
	case isa.OpJmp:
		return fmt.Sprintf("jmp %#x", d.Fields.Imm11)
	case isa.OpBln:
		return fmt.Sprintf("bln %#x", d.Fields.Imm11)
	case isa.OpRet:
		return "ret"
	case isa.OpCmpImm:
		return fmt.Sprintf("cmp r%d, #%d", d.Fields.RD, int8(d.Fields.Imm8))
	case isa.OpCmpReg:
		return fmt.Sprintf("cmp r%d, r%d", d.Fields.RD, d.Fields.RS)
	case isa.OpBeq, isa.OpBne, isa.OpBgt, isa.OpBgtu, isa.OpBlt, isa.OpBltu:
		return fmt.Sprintf("%s %#x", d.Opcode, d.Fields.Imm11)
	case isa.OpHalt:
		return "halt"
	default:
		return "???"
	}
}

func pushPopRegs(f isa.Fields) string {
	slots := [3]uint8{f.RA, f.RB, f.RC}
	names := make([]string, 0, f.T4Count)
	for i := 0; i < int(f.T4Count) && i < 3; i++ {
		names = append(names, isa.RegisterName(slots[i]))
	}
	return strings.Join(names, ", ")
}

// DumpRegisters renders the register file as a two-column table — r0..r3 on
// the left, fp/sp/lr/mbr on the right, each shown signed, unsigned, and hex —
// the layout carried forward from the reference implementation's own register
// dump.
func DumpRegisters(cpu *CPU) string {
	var b strings.Builder
	half := isa.NumGPR / 2
	for i := 0; i < half; i++ {
		j := i + half
		fmt.Fprintf(&b, "%-8s % 6d  %5d  %#06x    %-8s % 6d  %5d  %#06x\n",
			isa.RegisterName(uint8(i)), cpu.GP[i], uint16(cpu.GP[i]), uint16(cpu.GP[i]),
			isa.RegisterName(uint8(j)), cpu.GP[j], uint16(cpu.GP[j]), uint16(cpu.GP[j]))
	}
	fmt.Fprintf(&b, "pc=%#06x  ir=%#06x  flags=OV:%d CA:%d ZR:%d NG:%d  steps=%d\n",
		cpu.PC, cpu.IR,
		boolBit(cpu.TestFlag(isa.FlagOV)), boolBit(cpu.TestFlag(isa.FlagCA)),
		boolBit(cpu.TestFlag(isa.FlagZR)), boolBit(cpu.TestFlag(isa.FlagNG)),
		cpu.Steps)
	return b.String()
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
