package emu

import "testing"

func TestRunLoopProgramIsBounded(t *testing.T) {
	cpu := NewCPU()
	// .section code / start: / mov r0 #0 / jmp start / halt
	cpu.Mem.LoadProgram([]byte{0x00, 0x00, 0x88, 0x00, 0xE0, 0x00})

	if err := Run(cpu, 1000, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.Steps != 1000 {
		t.Fatalf("steps = %d, want 1000 (loop never halts)", cpu.Steps)
	}
	if !cpu.Running {
		t.Fatal("a step-bounded run should leave the cpu still running, not halted")
	}
}

func TestRunToHalt(t *testing.T) {
	cpu := NewCPU()
	// mov r0 #5 / mov r1 r0 / add r2 r0 r1 / halt
	cpu.Mem.LoadProgram([]byte{0x00, 0x05, 0x09, 0x00, 0x4A, 0x04, 0xE0, 0x00})

	if err := Run(cpu, 0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.Running {
		t.Fatal("expected the cpu to have halted")
	}
	if cpu.GP[0] != 5 || cpu.GP[1] != 5 || cpu.GP[2] != 10 {
		t.Fatalf("got gp=%v, want [5 5 10 ...]", cpu.GP)
	}
}

func TestRunObserverCalledPerStep(t *testing.T) {
	cpu := NewCPU()
	cpu.Mem.LoadProgram([]byte{0x00, 0x05, 0xE0, 0x00})

	var calls int
	observe := func(c *CPU, d Decoded) { calls++ }
	if err := Run(cpu, 0, observe); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("observer called %d times, want 2", calls)
	}
}
