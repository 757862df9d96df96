package asm

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr ErrorKind
		check   func(t *testing.T, l Line)
	}{
		{
			name: "blank",
			line: "   ",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindBlank {
					t.Fatalf("got %v, want KindBlank", l.Kind)
				}
			},
		},
		{
			name: "comment only",
			line: "// a note",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindBlank {
					t.Fatalf("got %v, want KindBlank", l.Kind)
				}
			},
		},
		{
			name: "section code",
			line: ".section code",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindSection || l.Section != SectionCode {
					t.Fatalf("got %+v", l)
				}
			},
		},
		{
			name: "section data capitalized",
			line: ".section Data",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindSection || l.Section != SectionData {
					t.Fatalf("got %+v", l)
				}
			},
		},
		{
			name:    "section neither",
			line:    ".section bogus",
			wantErr: WrongSection,
		},
		{
			name: "label",
			line: "start:",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindLabel || l.Label != "start" {
					t.Fatalf("got %+v", l)
				}
			},
		},
		{
			name:    "label with whitespace",
			line:    "my label:",
			wantErr: LabelWhitespace,
		},
		{
			name:    "label with extra colon",
			line:    "start::",
			wantErr: LabelMoreColon,
		},
		{
			name: "data string",
			line: `"hi\n"`,
			check: func(t *testing.T, l Line) {
				if l.Kind != KindData {
					t.Fatalf("got %+v", l)
				}
			},
		},
		{
			name: "data numbers",
			line: "1, 2, 3",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindData {
					t.Fatalf("got %+v", l)
				}
			},
		},
		{
			name: "instruction with trailing comment",
			line: "mov r0 #5 // set r0",
			check: func(t *testing.T, l Line) {
				if l.Kind != KindInstruction || l.Mnemonic != "mov" || len(l.Args) != 2 {
					t.Fatalf("got %+v", l)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Classify(tt.line, 0)
			if tt.wantErr != 0 || err != nil {
				asmErr, ok := err.(*Error)
				if !ok {
					t.Fatalf("expected *Error, got %v", err)
				}
				if asmErr.Kind != tt.wantErr {
					t.Fatalf("got error kind %v, want %v", asmErr.Kind, tt.wantErr)
				}
				return
			}
			tt.check(t, l)
		})
	}
}
