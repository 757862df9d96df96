package emu

import (
	"testing"

	"github.com/pdxjjb/lc16/isa"
)

func TestDecodeMovImm(t *testing.T) {
	d, err := Decode(0x0005) // mov r0, #5
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Opcode != isa.OpMovImm || d.Fields.RD != 0 || d.Fields.Imm8 != 5 {
		t.Fatalf("got %+v", d)
	}
}

func TestDecodeAddReg(t *testing.T) {
	d, err := Decode(0x4A04) // add r2, r0, r1
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Opcode != isa.OpAddReg || d.Fields.RA != 2 || d.Fields.RB != 0 || d.Fields.RC != 1 {
		t.Fatalf("got %+v", d)
	}
}

func TestDecodeUnrecognizedOpcode(t *testing.T) {
	// opcode 0x1D doesn't exist: bits 15..11 = 11101
	word := uint16(0x1D) << 11
	_, err := Decode(word)
	if err == nil {
		t.Fatal("expected an error")
	}
	emuErr, ok := err.(*Error)
	if !ok || emuErr.Kind != UnrecognizedOpcode {
		t.Fatalf("got %v, want UnrecognizedOpcode", err)
	}
}

func TestDecodeHalt(t *testing.T) {
	d, err := Decode(0xE000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Opcode != isa.OpHalt {
		t.Fatalf("got %v, want OpHalt", d.Opcode)
	}
}
