package asm

import "strings"

// LineKind is the result of classifying one source line (§4.1).
type LineKind int

const (
	KindBlank LineKind = iota
	KindSection
	KindData
	KindLabel
	KindInstruction
)

// Section names which of the two memory regions a SectionDecl line opens.
type Section int

const (
	SectionCode Section = iota
	SectionData
)

// Line holds the outcome of classifying a single source line.
type Line struct {
	Kind     LineKind
	Section  Section  // valid when Kind == KindSection
	Label    string   // valid when Kind == KindLabel
	Mnemonic string   // valid when Kind == KindInstruction
	Args     []string // valid when Kind == KindInstruction
	Raw      string   // valid when Kind == KindData: the literal text, comment-free, quotes/sign intact
}

// Classify trims a source line and sorts it into one of five kinds, in the
// priority order blank -> section -> data -> label -> instruction (§4.1).
func Classify(raw string, idx int) (Line, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return Line{Kind: KindBlank}, nil
	}

	if strings.HasPrefix(trimmed, ".section") {
		rest := strings.ToLower(strings.TrimSpace(trimmed[len(".section"):]))
		switch {
		case strings.Contains(rest, "code"):
			return Line{Kind: KindSection, Section: SectionCode}, nil
		case strings.Contains(rest, "data"):
			return Line{Kind: KindSection, Section: SectionData}, nil
		default:
			return Line{}, errWrongSection(idx, trimmed)
		}
	}

	if strings.HasPrefix(trimmed, "\"") || isASCIIDigit(trimmed[0]) {
		// A "//" comment may follow the literal; inside a quoted string it is text.
		start := 0
		if trimmed[0] == '"' {
			if end := strings.Index(trimmed[1:], "\""); end >= 0 {
				start = end + 2
			}
		}
		if i := strings.Index(trimmed[start:], "//"); i >= 0 {
			trimmed = strings.TrimSpace(trimmed[:start+i])
		}
		return Line{Kind: KindData, Raw: trimmed}, nil
	}

	if strings.Contains(trimmed, ":") {
		if strings.Count(trimmed, ":") > 1 {
			return Line{}, errLabelMoreColon(idx, trimmed)
		}
		parts := strings.SplitN(trimmed, ":", 2)
		name := strings.TrimSpace(parts[0])
		if strings.ContainsAny(name, " \t") {
			return Line{}, errLabelWhitespace(idx, name)
		}
		return Line{Kind: KindLabel, Label: name}, nil
	}

	tokens := stripComment(strings.Fields(trimmed))
	if len(tokens) == 0 {
		return Line{}, errUnrecognized(idx, trimmed)
	}
	return Line{
		Kind:     KindInstruction,
		Mnemonic: strings.ToLower(tokens[0]),
		Args:     tokens[1:],
	}, nil
}

// stripComment drops the first "//"-prefixed token and everything after it.
func stripComment(tokens []string) []string {
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "//") {
			return tokens[:i]
		}
	}
	return tokens
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
