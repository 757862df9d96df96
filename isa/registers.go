package isa

// NumGPR is the number of general-purpose register slots, gp[0..7].
const NumGPR = 8

// Indices of the aliased general-purpose registers.
const (
	RegFP  = 4 // frame pointer
	RegSP  = 5 // stack pointer
	RegLR  = 6 // link register, used by bln/ret
	RegMBR = 7 // memory buffer register
)

// registerAliases maps every spelling a source file may use for a register
// to its gp[] slot. Built once as a composite literal: no runtime Insert
// calls, so there is nothing to race or to initialize lazily.
var registerAliases = map[string]uint8{
	"r0": 0, "r1": 1, "r2": 2, "r3": 3,
	"r4": 4, "r5": 5, "r6": 6, "r7": 7,
	"fp": RegFP, "sp": RegSP, "lr": RegLR, "mbr": RegMBR,
}

// RegisterByName resolves a register alias (e.g. "r3", "sp", "lr") to its
// gp[] index. Unrecognized names return ok=false.
func RegisterByName(name string) (uint8, bool) {
	idx, ok := registerAliases[name]
	return idx, ok
}

// RegisterName returns the r0..r7 spelling for a gp[] index, with the alias
// appended for slots 4-7 (e.g. "r5/sp"), used by disassembly and debug-mode
// instruction traces.
func RegisterName(idx uint8) string {
	switch idx {
	case RegFP:
		return "r4/fp"
	case RegSP:
		return "r5/sp"
	case RegLR:
		return "r6/lr"
	case RegMBR:
		return "r7/mbr"
	default:
		return "r" + string(rune('0'+idx))
	}
}
