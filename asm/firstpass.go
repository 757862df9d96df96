package asm

// SectionRanges records the half-open line-index spans (§3) occupied by the
// code and data sections. These are line ranges, not memory addresses.
type SectionRanges struct {
	CodeStart, CodeEnd int
	DataStart, DataEnd int
	HasCode, HasData   bool
}

// FirstPass walks the source once, building the label -> instruction-address
// symbol table and recording section ranges (§4.2). addr is a single running
// counter advanced by the document-order walk, matching the reference
// implementation: code and data both consume addr slots as they are seen, so
// a data section declared before the code section would (legally, since
// order is free per §6.1) assign lower addresses than it; the common
// ordering — code section first — is what gives data labels the "after the
// last code address" placement described in §3.
func FirstPass(lines []string) (map[string]uint16, SectionRanges, error) {
	symbols := make(map[string]uint16)
	var ranges SectionRanges

	var addr uint16
	sectionsSeen := 0
	var openSection Section
	openIdx := -1

	for idx, raw := range lines {
		cl, err := Classify(raw, idx)
		if err != nil {
			return nil, ranges, err
		}

		switch cl.Kind {
		case KindLabel:
			if _, exists := symbols[cl.Label]; exists {
				return nil, ranges, errLabelMultiple(idx, cl.Label)
			}
			symbols[cl.Label] = addr

		case KindSection:
			sectionsSeen++
			if openIdx >= 0 {
				closeSection(&ranges, openSection, idx)
			}
			openSection = cl.Section
			openIdx = idx
			openSectionRange(&ranges, cl.Section, idx)

		case KindData:
			data, err := ParseData(cl.Raw, idx)
			if err != nil {
				return nil, ranges, err
			}
			addr += uint16(len(data) / 2)

		case KindInstruction:
			addr++

		case KindBlank:
			// no effect
		}
	}

	if openIdx >= 0 {
		closeSection(&ranges, openSection, len(lines))
	}

	if sectionsSeen == 0 {
		return nil, ranges, errNoSectionDecl()
	}
	if !ranges.HasCode {
		return nil, ranges, errOnlyDataSection()
	}
	return symbols, ranges, nil
}

func openSectionRange(ranges *SectionRanges, s Section, idx int) {
	if s == SectionCode {
		ranges.HasCode = true
		ranges.CodeStart = idx
	} else {
		ranges.HasData = true
		ranges.DataStart = idx
	}
}

func closeSection(ranges *SectionRanges, s Section, idx int) {
	if s == SectionCode {
		ranges.CodeEnd = idx
	} else {
		ranges.DataEnd = idx
	}
}

// InCode reports whether line idx falls strictly between the code section's
// header and the line that closes it (OQ3: exclude both boundary lines).
func (r SectionRanges) InCode(idx int) bool {
	return r.HasCode && idx > r.CodeStart && idx < r.CodeEnd
}

// InData reports the data-section analogue of InCode.
func (r SectionRanges) InData(idx int) bool {
	return r.HasData && idx > r.DataStart && idx < r.DataEnd
}
