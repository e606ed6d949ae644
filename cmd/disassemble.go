package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/rawasm/disassembler"
	"github.com/urfave/cli/v2"
)

var OutputPathFlag = &cli.PathFlag{
	Name:     "output",
	Usage:    "File path to store the recovered source. Default: stdout",
	Required: false,
}

func CreateDisassembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "disassemble",
		Usage:       "Recovers source lines from a v3.0 raw memory image",
		Description: "Recovers source lines from a v3.0 raw memory image",
		ArgsUsage:   "<image>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			OutputPathFlag,
		},
	}
}

var DisassembleCommand = CreateDisassembleCommand(DisassembleImage)

func DisassembleImage(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("expected exactly one argument: <image>", 1)
	}
	prof, err := loadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	file, err := os.Open(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("error opening image: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	img, err := disassembler.ReadImage(file, prof.ImageWords)
	if err != nil {
		return fmt.Errorf("error reading image: %w", err)
	}
	lines, err := disassembler.Disassemble(img)
	if err != nil {
		return fmt.Errorf("error disassembling image: %w", err)
	}

	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	if outputPath := ctx.Path(OutputPathFlag.Name); outputPath != "" {
		return os.WriteFile(outputPath, []byte(text), 0644) //nolint:gosec
	}
	_, err = ctx.App.Writer.Write([]byte(text))
	return err
}
