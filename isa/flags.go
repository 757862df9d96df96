package isa

// Flag identifies one bit of the condition-flags byte.
//
//	7..4     3    2    1    0
//	unused | NG | ZR | CA | OV
type Flag uint8

const (
	FlagOV Flag = 1 << 0 // overflow
	FlagCA Flag = 1 << 1 // carry
	FlagZR Flag = 1 << 2 // zero
	FlagNG Flag = 1 << 3 // negative
)

// SetFlag returns flags with bit f forced to the given value.
func SetFlag(flags uint8, f Flag, value bool) uint8 {
	if value {
		return flags | uint8(f)
	}
	return flags &^ uint8(f)
}

// TestFlag reports whether bit f is set in flags.
func TestFlag(flags uint8, f Flag) bool {
	return flags&uint8(f) != 0
}

// ArithFlags computes the ZR/NG pair common to every flag-updating
// instruction, from a signed 16-bit result.
func ArithFlags(result int16) (zr, ng bool) {
	return result == 0, result < 0
}

// BranchPredicate evaluates the six conditional-branch predicates (§6.3)
// against the condition-flags byte.
func BranchPredicate(op Opcode, flags uint8) bool {
	zr := TestFlag(flags, FlagZR)
	ng := TestFlag(flags, FlagNG)
	ov := TestFlag(flags, FlagOV)
	ca := TestFlag(flags, FlagCA)

	switch op {
	case OpBeq:
		return zr
	case OpBne:
		return !zr
	case OpBgt:
		return ng == ov
	case OpBgtu:
		return ca && !zr
	case OpBlt:
		return ng != ov
	case OpBltu:
		return !ca
	default:
		return false
	}
}
