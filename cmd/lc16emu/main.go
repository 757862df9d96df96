package main

import (
	"bufio"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/pdxjjb/lc16/emu"
)

var savedTermState *term.State

// setupTerminal puts stdin into raw mode for single-step debug reads, so a
// bare newline (not a full cooked line) advances the interpreter.
func setupTerminal() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	state, err := term.GetState(int(os.Stdin.Fd()))
	if err != nil {
		return
	}
	savedTermState = state
	term.MakeRaw(int(os.Stdin.Fd()))
}

func restoreTerminal() {
	if savedTermState != nil && term.IsTerminal(int(os.Stdin.Fd())) {
		term.Restore(int(os.Stdin.Fd()), savedTermState)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "lc16emu"
	app.Usage = "Fetch-decode-execute emulator for the LC-16 instruction set"
	app.ArgsUsage = "<binary>"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"DEBUG"},
			Usage:   "single-step: wait for a newline on stdin between instructions",
		},
		&cli.Uint64Flag{
			Name:  "max-steps",
			Usage: "stop after N instructions (0 = unlimited)",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("no binary file given", 1)
		}
		image, err := os.ReadFile(c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}

		cpu := emu.NewCPU()
		cpu.Mem.LoadProgram(image)

		debug := c.Bool("debug")
		maxSteps := c.Uint64("max-steps")

		var observe emu.StepObserver
		if debug {
			setupTerminal()
			defer restoreTerminal()
			reader := bufio.NewReader(os.Stdin)
			observe = func(cpu *emu.CPU, d emu.Decoded) {
				fmt.Printf("%04x: %s\n", cpu.PC, emu.InstructionName(d))
				fmt.Print(emu.DumpRegisters(cpu))
				for {
					b, err := reader.ReadByte()
					if err != nil || b == '\n' || b == '\r' {
						break
					}
				}
			}
		}

		if err := emu.Run(cpu, maxSteps, observe); err != nil {
			return cli.Exit(err, 1)
		}

		fmt.Print(emu.DumpRegisters(cpu))
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
