// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ChainSafe/rawasm/assembler"
	"github.com/ChainSafe/rawasm/common"
	"github.com/ChainSafe/rawasm/profile"
	"github.com/ChainSafe/rawasm/renderer"
	"github.com/urfave/cli/v2"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the assembler profile config file. Default: 256-word image, all mnemonics",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the diagnostics report. Options: json, text",
		Required: false,
		Value:    "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for the diagnostics report. Default: stderr",
		Required: false,
	}
	ListingFlag = &cli.BoolFlag{
		Name:     "listing",
		Usage:    "print the encoded fields of every instruction to stdout",
		Required: false,
		Value:    false,
	}
	StrictFlag = &cli.BoolFlag{
		Name:     "strict",
		Usage:    "exit with an error when any line fails to encode",
		Required: false,
		Value:    false,
	}
	LogLevelFlag = &cli.StringFlag{
		Name:     "log-level",
		Usage:    "log level. Options: debug, info, warn, error",
		Required: false,
		Value:    "error",
	}
)

func CreateAssembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "assemble",
		Usage:       "Assembles a source file into a v3.0 raw memory image",
		Description: "Assembles a source file into a v3.0 raw memory image",
		ArgsUsage:   "<source> <destination>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			ReportOutputPathFlag,
			ListingFlag,
			StrictFlag,
			LogLevelFlag,
		},
	}
}

var AssembleCommand = CreateAssembleCommand(AssembleSource)

func AssembleSource(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.Exit("expected exactly two arguments: <source> <destination>", 1)
	}
	source := ctx.Args().Get(0)
	destination := ctx.Args().Get(1)
	if err := common.ValidateSourcePath(source); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	prof, err := loadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}
	logger, err := newLogger(ctx.String(LogLevelFlag.Name), ctx.App.ErrWriter)
	if err != nil {
		return err
	}
	rendererInstance, err := renderer.New(ctx.String(FormatFlag.Name))
	if err != nil {
		return err
	}

	result, err := assembler.New(prof, logger).AssembleFile(ctx.Context, source)
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	if err := os.WriteFile(destination, []byte(result.Image.String()), 0644); err != nil { //nolint:gosec
		return fmt.Errorf("unable to write memory image: %w", err)
	}
	logger.Info("memory image written", "path", destination, "instructions", len(result.Listing))

	if ctx.Bool(ListingFlag.Name) {
		if err := renderer.WriteListing(result.Listing, ctx.App.Writer); err != nil {
			return fmt.Errorf("unable to write listing: %w", err)
		}
	}
	if err := writeReport(result.Diagnostics, rendererInstance, ctx.Path(ReportOutputPathFlag.Name), ctx.App.ErrWriter); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	if ctx.Bool(StrictFlag.Name) && result.HasCritical() {
		return cli.Exit("one or more lines failed to assemble", 1)
	}
	return nil
}

func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadProfile(path)
}

func newLogger(level string, output io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: lvl})), nil
}

// writeReport outputs the diagnostics with the selected renderer.
func writeReport(diagnostics []*assembler.Diagnostic, r renderer.Renderer, outputPath string, fallback io.Writer) error {
	output := fallback
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}
	return r.Render(diagnostics, output)
}
