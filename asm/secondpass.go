package asm

// SecondPass walks the source once more, now with a completed symbol table
// and section ranges, and emits the flat output byte stream (§4.3). Lines
// are processed in document order so the byte stream lines up with the
// addresses FirstPass assigned; lines outside both ranges are ignored.
func SecondPass(lines []string, symbols map[string]uint16, ranges SectionRanges) ([]byte, error) {
	var out []byte

	for idx, raw := range lines {
		inCode := ranges.InCode(idx)
		inData := ranges.InData(idx)
		if !inCode && !inData {
			continue
		}

		cl, err := Classify(raw, idx)
		if err != nil {
			return nil, err
		}

		switch cl.Kind {
		case KindInstruction:
			if !inCode {
				return nil, errSectionMismatch(idx)
			}
			enc, ok := encoders[cl.Mnemonic]
			if !ok {
				return nil, errUnrecognized(idx, cl.Mnemonic)
			}
			msb, lsb, err := enc(cl.Args, symbols, idx)
			if err != nil {
				return nil, err
			}
			out = append(out, msb, lsb)

		case KindData:
			if !inData {
				return nil, errSectionMismatch(idx)
			}
			data, err := ParseData(cl.Raw, idx)
			if err != nil {
				return nil, err
			}
			out = append(out, data...)

		case KindLabel, KindSection, KindBlank:
			// nothing emitted
		}
	}

	return out, nil
}
