package asm

import (
	"strconv"
	"strings"

	"github.com/pdxjjb/lc16/isa"
)

// ParseData turns a classified data line's raw text into its big-endian byte
// stream (§4.5). The word count this consumes, for address-accounting
// purposes (§4.2, OQ4), is len(result)/2 — the caller advances addr by that.
func ParseData(raw string, line int) ([]byte, error) {
	if strings.HasPrefix(raw, "\"") {
		return parseStringLiteral(raw)
	}
	return parseNumberLiteral(raw, line)
}

func parseStringLiteral(raw string) ([]byte, error) {
	body := raw
	body = strings.TrimPrefix(body, "\"")
	body = strings.TrimSuffix(body, "\"")
	body = strings.ReplaceAll(body, `\n`, "\n")
	body = strings.ReplaceAll(body, `\t`, "\t")
	body += "\x00"

	out := make([]byte, 0, len(body)*2)
	for i := 0; i < len(body); i++ {
		out = append(out, 0, body[i])
	}
	return out, nil
}

func parseNumberLiteral(raw string, line int) ([]byte, error) {
	pieces := strings.Split(raw, ",")
	out := make([]byte, 0, len(pieces)*2)
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseInt(p, 10, 16)
		if err != nil {
			return nil, errUnrecognized(line, p)
		}
		msb, lsb := isa.Split(uint16(int16(v)))
		out = append(out, msb, lsb)
	}
	return out, nil
}
