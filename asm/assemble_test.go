package asm

import (
	"os"
	"path/filepath"
	"testing"
)

// assembleSource writes src to a temp input file, assembles it, and returns
// the resulting binary bytes.
func assembleSource(t *testing.T, src string) []byte {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.s")
	out := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if err := Assemble(in, out); err != nil {
		t.Fatalf("assemble: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return data
}

func TestAssembleLoopProgram(t *testing.T) {
	src := ".section code\nstart:\nmov r0 #0\njmp start\nhalt\n"
	got := assembleSource(t, src)
	want := []byte{0x00, 0x00, 0x88, 0x00, 0xE0, 0x00}
	assertBytesEqual(t, got, want)
}

func TestAssembleDataSection(t *testing.T) {
	src := ".section code\nhalt\n.section data\narr:\n1, 2, 3\n"
	got := assembleSource(t, src)
	want := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}
	assertBytesEqual(t, got[len(got)-len(want):], want)
}

func TestAssembleByteExactRepeatability(t *testing.T) {
	src := ".section code\nstart:\nmov r0 #5\nmov r1 r0\nadd r2 r0 r1\nhalt\n"
	first := assembleSource(t, src)
	second := assembleSource(t, src)
	assertBytesEqual(t, first, second)

	want := []byte{0x00, 0x05, 0x09, 0x00, 0x4A, 0x04, 0xE0, 0x00}
	assertBytesEqual(t, first, want)
}

func TestAssembleSectionMismatch(t *testing.T) {
	src := ".section code\n\"oops\"\nhalt\n"
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.s")
	out := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	err := Assemble(in, out)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func assertBytesEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d bytes %X, want %d bytes %X", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %02X, want %02X (full: got %X want %X)", i, got[i], want[i], got, want)
		}
	}
}
