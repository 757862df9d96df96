package asm

import "testing"

func TestFirstPassSymbolTable(t *testing.T) {
	lines := []string{
		".section code",
		"start:",
		"mov r0 #0",
		"loop:",
		"add r0 r0 r1",
		"jmp loop",
		"halt",
	}
	symbols, ranges, err := FirstPass(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if symbols["start"] != 0 {
		t.Fatalf("start = %d, want 0", symbols["start"])
	}
	if symbols["loop"] != 1 {
		t.Fatalf("loop = %d, want 1", symbols["loop"])
	}
	if !ranges.HasCode || ranges.CodeStart != 0 || ranges.CodeEnd != len(lines) {
		t.Fatalf("unexpected code range: %+v", ranges)
	}
	if ranges.HasData {
		t.Fatalf("unexpected data range: %+v", ranges)
	}
}

func TestFirstPassNoSectionDecl(t *testing.T) {
	_, _, err := FirstPass([]string{"mov r0 #0"})
	assertKind(t, err, NoSectionDecl)
}

func TestFirstPassEmptySource(t *testing.T) {
	_, _, err := FirstPass(nil)
	assertKind(t, err, NoSectionDecl)
}

func TestFirstPassOnlyDataSection(t *testing.T) {
	_, _, err := FirstPass([]string{".section data", "1, 2, 3"})
	assertKind(t, err, OnlyDataSection)
}

func TestFirstPassDuplicateLabel(t *testing.T) {
	lines := []string{
		".section code",
		"start:",
		"mov r0 #0",
		"start:",
		"halt",
	}
	_, _, err := FirstPass(lines)
	assertKind(t, err, LabelMultiple)
}

func TestFirstPassTwoSections(t *testing.T) {
	lines := []string{
		".section code",
		"mov r0 #0",
		"halt",
		".section data",
		"arr:",
		"1, 2, 3",
	}
	symbols, ranges, err := FirstPass(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranges.CodeStart != 0 || ranges.CodeEnd != 3 {
		t.Fatalf("unexpected code range: %+v", ranges)
	}
	if ranges.DataStart != 3 || ranges.DataEnd != len(lines) {
		t.Fatalf("unexpected data range: %+v", ranges)
	}
	if symbols["arr"] != 2 {
		t.Fatalf("arr = %d, want 2", symbols["arr"])
	}
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	asmErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if asmErr.Kind != want {
		t.Fatalf("got error kind %v, want %v", asmErr.Kind, want)
	}
}
