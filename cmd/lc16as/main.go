package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/pdxjjb/lc16/asm"
)

func outputPath(inputPath, flag string) string {
	if flag != "" {
		return flag
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".bin"
}

func main() {
	app := cli.NewApp()
	app.Name = "lc16as"
	app.Usage = "Two-pass assembler for the LC-16 instruction set"
	app.ArgsUsage = "<input.s>"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output binary path (default: input path with .bin extension)",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("no input file given", 1)
		}
		input := c.Args().First()
		output := outputPath(input, c.String("output"))

		if err := asm.Assemble(input, output); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
