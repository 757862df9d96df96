package asm

import (
	"bufio"
	"fmt"
	"os"
)

// Assemble reads inputPath line by line, runs both passes, and writes the
// resulting flat binary to outputPath. It returns the first error either
// pass produces, formatted with a 1-based line number and the input file
// name, matching §7's reporter contract.
func Assemble(inputPath, outputPath string) error {
	lines, err := readLines(inputPath)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	symbols, ranges, err := FirstPass(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	out, err := SecondPass(lines, symbols, ranges)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := WriteOutput(outputPath, out); err != nil {
		return fmt.Errorf("%s: %w", outputPath, err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
