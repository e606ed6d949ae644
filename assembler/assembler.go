// Package assembler drives source lines through classification, extraction and
// encoding into a memory image.
package assembler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ChainSafe/rawasm/asmparser"
	"github.com/ChainSafe/rawasm/asmparser/mips"
	"github.com/ChainSafe/rawasm/encoder"
	"github.com/ChainSafe/rawasm/memimage"
	"github.com/ChainSafe/rawasm/profile"
)

// Entry is one successfully encoded source line.
type Entry struct {
	Line        int
	Source      string
	Instruction *encoder.Instruction
}

// Result is the outcome of a run: the image plus everything worth reporting about it.
type Result struct {
	Image       *memimage.Image
	Diagnostics []*Diagnostic
	Listing     []*Entry
}

// HasCritical reports whether any line failed to encode.
func (r *Result) HasCritical() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Assembler turns source text into a memory image.
type Assembler struct {
	profile *profile.Profile
	parser  asmparser.Parser
	logger  *slog.Logger
}

// New creates an assembler. A nil profile selects profile.Default and a nil logger slog.Default.
func New(prof *profile.Profile, logger *slog.Logger) *Assembler {
	if prof == nil {
		prof = profile.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		profile: prof,
		parser:  mips.NewParser(),
		logger:  logger,
	}
}

// AssembleFile assembles the file at path.
func (a *Assembler) AssembleFile(ctx context.Context, path string) (*Result, error) {
	fpath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving absolute filepath: %w", err)
	}

	codefile, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		_ = codefile.Close()
	}()

	return a.Assemble(ctx, codefile)
}

// Assemble reads one instruction per line from r. Source line n (zero-based)
// lands at image index n. Lines that fail to encode leave their slot zero and
// are reported as diagnostics; running out of image space aborts the run.
func (a *Assembler) Assemble(ctx context.Context, r io.Reader) (*Result, error) {
	result := &Result{
		Image:       memimage.New(a.profile.ImageWords),
		Diagnostics: make([]*Diagnostic, 0),
		Listing:     make([]*Entry, 0),
	}

	scanner := bufio.NewScanner(r)
	index := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Text()
		if index >= result.Image.Len() {
			return nil, fmt.Errorf("line %d: %w: program exceeds %d words",
				index+1, memimage.ErrImageOverflow, result.Image.Len())
		}

		inst, err := a.encodeLine(line)
		if err != nil {
			a.report(result, &Diagnostic{
				Line:     index + 1,
				Source:   line,
				Kind:     kindOf(err),
				Message:  err.Error(),
				Severity: SeverityCritical,
			})
			index++
			continue
		}

		if !a.profile.IsAllowed(inst.Mnemonic) {
			a.report(result, &Diagnostic{
				Line:     index + 1,
				Source:   line,
				Kind:     KindDisallowedMnemonic,
				Message:  fmt.Sprintf("mnemonic %q is not allowed by profile %q", inst.Mnemonic, a.profile.Name),
				Severity: SeverityWarning,
			})
		}

		if err := result.Image.Write(index, inst.Word); err != nil {
			return nil, fmt.Errorf("line %d: %w", index+1, err)
		}
		result.Listing = append(result.Listing, &Entry{Line: index + 1, Source: line, Instruction: inst})
		a.logger.Debug("encoded instruction",
			"line", index+1,
			"form", inst.Form.String(),
			"mnemonic", inst.Mnemonic,
			"word", fmt.Sprintf("%08x", inst.Word))
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading source: %w", err)
	}
	return result, nil
}

func (a *Assembler) encodeLine(line string) (*encoder.Instruction, error) {
	classification, err := a.parser.Classify(line)
	if err != nil {
		return nil, err
	}
	fields, err := a.parser.Extract(classification)
	if err != nil {
		return nil, err
	}
	return encoder.Encode(fields)
}

func (a *Assembler) report(result *Result, d *Diagnostic) {
	result.Diagnostics = append(result.Diagnostics, d)
	a.logger.Warn("diagnostic",
		"line", d.Line,
		"kind", string(d.Kind),
		"severity", string(d.Severity),
		"error", d.Message)
}
