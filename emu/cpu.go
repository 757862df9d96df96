package emu

import "github.com/pdxjjb/lc16/isa"

// CPU holds the full architectural state of one LC-16 core: the
// general-purpose register file, program counter, instruction register,
// condition flags, and the memory it executes against (§3).
type CPU struct {
	GP    [isa.NumGPR]int16
	PC    uint16
	IR    uint16
	Flags uint8

	Mem Memory

	Steps   uint64 // instructions retired, for -max-steps bounding
	Running bool
}

// NewCPU returns a CPU with memory and registers reset (§3, §6.5).
func NewCPU() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset clears every register and sets sp to the address one past the top
// of the stack, so the first push decrements into the last valid word
// (§3: "sp points to the next free slot above the stack top").
func (c *CPU) Reset() {
	for i := range c.GP {
		c.GP[i] = 0
	}
	c.GP[isa.RegSP] = int16(MemSize)
	c.PC = 0
	c.IR = 0
	c.Flags = 0
	c.Steps = 0
	c.Running = true
}

// SetFlag updates one condition bit.
func (c *CPU) SetFlag(f isa.Flag, value bool) {
	c.Flags = isa.SetFlag(c.Flags, f, value)
}

// TestFlag reads one condition bit.
func (c *CPU) TestFlag(f isa.Flag) bool {
	return isa.TestFlag(c.Flags, f)
}

// updateArithFlags sets ZR/NG from result and clears them from nothing else;
// OV/CA are the caller's responsibility since only add/sub/cmp compute them.
func (c *CPU) updateArithFlags(result int16) {
	zr, ng := isa.ArithFlags(result)
	c.SetFlag(isa.FlagZR, zr)
	c.SetFlag(isa.FlagNG, ng)
}
