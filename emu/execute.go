package emu

import "github.com/pdxjjb/lc16/isa"

// StepResult tells Run how to update pc after one instruction (§4.7): most
// instructions advance normally, the branch family either sets pc itself or
// falls through to a normal advance, and halt stops the loop outright.
type StepResult int

const (
	StepNormal StepResult = iota // advance pc by 1
	StepBranch                   // pc was already set by the instruction
	StepHalt                     // terminate the loop
)

// Execute applies one decoded instruction's semantics to cpu, per opcode
// (§4.7). It never itself advances pc for the branch family; Run does that
// based on the returned StepResult.
func Execute(cpu *CPU, d Decoded) (StepResult, error) {
	f := d.Fields
	switch d.Opcode {
	case isa.OpMovImm:
		cpu.GP[f.RD] = signExtend8(f.Imm8)
		return StepNormal, nil

	case isa.OpMovReg:
		cpu.GP[f.RD] = cpu.GP[f.RS]
		return StepNormal, nil

	case isa.OpLda:
		addr := f.Imm11
		word, err := cpu.Mem.Load(addr)
		if err != nil {
			return StepNormal, err
		}
		cpu.GP[isa.RegMBR] = int16(word)
		return StepNormal, nil

	case isa.OpStra:
		addr := f.Imm11
		if err := cpu.Mem.Store(addr, uint16(cpu.GP[isa.RegMBR])); err != nil {
			return StepNormal, err
		}
		return StepNormal, nil

	case isa.OpLdr:
		addr := uint16(cpu.GP[f.RS]) + uint16(f.T2F)
		word, err := cpu.Mem.Load(addr)
		if err != nil {
			return StepNormal, err
		}
		cpu.GP[f.RD] = int16(word)
		return StepNormal, nil

	case isa.OpStrr:
		addr := uint16(cpu.GP[f.RS]) + uint16(f.T2F)
		if err := cpu.Mem.Store(addr, uint16(cpu.GP[f.RD])); err != nil {
			return StepNormal, err
		}
		return StepNormal, nil

	case isa.OpPush:
		return StepNormal, execPush(cpu, f)

	case isa.OpPop:
		return StepNormal, execPop(cpu, f)

	case isa.OpAddImm:
		// T2 shape: RD=dest, RS=rA, T2F=5-bit immediate
		execAdd(cpu, f.RD, cpu.GP[f.RS], signExtend5(f.T2F))
		return StepNormal, nil

	case isa.OpAddReg:
		// T4 shape: RA=dest (assembler's rd), RB=rA, RC=rB
		execAdd(cpu, f.RA, cpu.GP[f.RB], cpu.GP[f.RC])
		return StepNormal, nil

	case isa.OpSubImm:
		execSub(cpu, f.RD, cpu.GP[f.RS], signExtend5(f.T2F), false)
		return StepNormal, nil

	case isa.OpSubReg:
		execSub(cpu, f.RA, cpu.GP[f.RB], cpu.GP[f.RC], false)
		return StepNormal, nil

	case isa.OpShl:
		v := uint16(cpu.GP[f.RS]) << f.Imm4
		execBitwiseResult(cpu, f.RD, int16(v))
		return StepNormal, nil

	case isa.OpShr:
		v := uint16(cpu.GP[f.RS]) >> f.Imm4
		execBitwiseResult(cpu, f.RD, int16(v))
		return StepNormal, nil

	case isa.OpAnd:
		// T4 shape: RA=dest (assembler's rd), RB=rA, RC=rB
		v := cpu.GP[f.RB] & cpu.GP[f.RC]
		execBitwiseResult(cpu, f.RA, v)
		return StepNormal, nil

	case isa.OpOr:
		v := cpu.GP[f.RB] | cpu.GP[f.RC]
		execBitwiseResult(cpu, f.RA, v)
		return StepNormal, nil

	case isa.OpNot:
		v := ^cpu.GP[f.RS]
		execBitwiseResult(cpu, f.RD, v)
		return StepNormal, nil

	case isa.OpJmp:
		cpu.PC = f.Imm11
		return StepBranch, nil

	case isa.OpBln:
		cpu.GP[isa.RegLR] = int16(cpu.PC + 1)
		cpu.PC = f.Imm11
		return StepBranch, nil

	case isa.OpRet:
		cpu.PC = uint16(cpu.GP[isa.RegLR])
		return StepBranch, nil

	case isa.OpCmpImm:
		execSub(cpu, 0, cpu.GP[f.RD], signExtend8(f.Imm8), true)
		return StepNormal, nil

	case isa.OpCmpReg:
		execSub(cpu, 0, cpu.GP[f.RD], cpu.GP[f.RS], true)
		return StepNormal, nil

	case isa.OpBeq, isa.OpBne, isa.OpBgt, isa.OpBgtu, isa.OpBlt, isa.OpBltu:
		if isa.BranchPredicate(d.Opcode, cpu.Flags) {
			cpu.PC = f.Imm11
			return StepBranch, nil
		}
		return StepNormal, nil

	case isa.OpHalt:
		return StepHalt, nil

	default:
		return StepNormal, errUnrecognizedOpcode(uint8(d.Opcode))
	}
}

func signExtend8(v uint8) int16 {
	return int16(int8(v))
}

// signExtend5 sign-extends a 5-bit two's complement value (the T2 shape's f
// field, used as the immediate for add/sub-immediate) to int16.
func signExtend5(v uint8) int16 {
	v &= 0x1F
	if v&0x10 != 0 {
		return int16(v) - 32
	}
	return int16(v)
}

// execAdd computes dst = a+b as a checked signed 16-bit addition (§4.7). On
// overflow OV and CA are both set and the destination is left untouched; on
// success OV/CA are cleared and ZR/NG follow the result.
func execAdd(cpu *CPU, dst uint8, a, b int16) {
	sum := int32(a) + int32(b)
	if sum < -32768 || sum > 32767 {
		cpu.SetFlag(isa.FlagOV, true)
		cpu.SetFlag(isa.FlagCA, true)
		return
	}
	cpu.SetFlag(isa.FlagOV, false)
	cpu.SetFlag(isa.FlagCA, false)
	result := int16(sum)
	cpu.GP[dst] = result
	cpu.updateArithFlags(result)
}

// execSub computes a-b as a checked signed 16-bit subtraction. discardOnly
// is true for cmp: flags are still updated but the destination is untouched.
func execSub(cpu *CPU, dst uint8, a, b int16, discardOnly bool) {
	diff := int32(a) - int32(b)
	if diff < -32768 || diff > 32767 {
		cpu.SetFlag(isa.FlagOV, true)
		return
	}
	cpu.SetFlag(isa.FlagOV, false)
	result := int16(diff)
	cpu.SetFlag(isa.FlagCA, result >= 0)
	cpu.updateArithFlags(result)
	if !discardOnly {
		cpu.GP[dst] = result
	}
}

// execBitwiseResult applies the flag discipline shared by shift and bitwise
// instructions: clear OV/CA, set ZR/NG from the result, then store it.
func execBitwiseResult(cpu *CPU, dst uint8, result int16) {
	cpu.SetFlag(isa.FlagOV, false)
	cpu.SetFlag(isa.FlagCA, false)
	cpu.updateArithFlags(result)
	cpu.GP[dst] = result
}

// execPush walks T4Count registers (ra, then rb, then rc — OQ1) and pushes
// each in turn: sp decrements before the write.
func execPush(cpu *CPU, f isa.Fields) error {
	slots := [3]uint8{f.RA, f.RB, f.RC}
	for i := 0; i < int(f.T4Count) && i < 3; i++ {
		sp := cpu.GP[isa.RegSP] - 1
		if err := cpu.Mem.Store(uint16(sp), uint16(cpu.GP[slots[i]])); err != nil {
			return err
		}
		cpu.GP[isa.RegSP] = sp
	}
	return nil
}

// execPop is push's mirror: pop reads then increments sp, walking the same
// three slots in the same order.
func execPop(cpu *CPU, f isa.Fields) error {
	slots := [3]uint8{f.RA, f.RB, f.RC}
	for i := 0; i < int(f.T4Count) && i < 3; i++ {
		sp := uint16(cpu.GP[isa.RegSP])
		word, err := cpu.Mem.Load(sp)
		if err != nil {
			return err
		}
		cpu.GP[slots[i]] = int16(word)
		cpu.GP[isa.RegSP] = int16(sp + 1)
	}
	return nil
}
