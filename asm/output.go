package asm

import "os"

// WriteOutput writes the assembled byte stream to path as a flat binary: no
// magic number, no header, no length prefix, no checksum (§6.4). The file is
// only created once the full stream is in hand, so a failing assembly never
// leaves a partial binary on disk (§7).
func WriteOutput(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
