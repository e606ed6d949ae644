package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/rawasm/asmparser"
	"github.com/ChainSafe/rawasm/asmparser/mips"
	"github.com/ChainSafe/rawasm/assembler"
	"github.com/jedib0t/go-pretty/v6/table"
)

// TextRenderer formats diagnostics as a table followed by a summary line.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render writes nothing when there are no diagnostics.
func (r *TextRenderer) Render(diagnostics []*assembler.Diagnostic, output io.Writer) error {
	if len(diagnostics) == 0 {
		return nil
	}

	critical := 0
	tw := table.NewWriter()
	tw.SetTitle("Assembly Diagnostics")
	tw.AppendHeader(table.Row{"Line", "Severity", "Kind", "Source", "Message"})
	for _, d := range diagnostics {
		if d.Severity == assembler.SeverityCritical {
			critical++
		}
		tw.AppendRow(table.Row{d.Line, d.Severity, d.Kind, d.Source, d.Message})
	}

	var report strings.Builder
	report.WriteString(tw.Render())
	report.WriteString("\n")
	report.WriteString(fmt.Sprintf("%d critical, %d warnings\n", critical, len(diagnostics)-critical))

	_, err := output.Write([]byte(report.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}

// WriteListing prints the fields of every encoded instruction, one row per source line.
func WriteListing(entries []*assembler.Entry, output io.Writer) error {
	tw := table.NewWriter()
	tw.SetTitle("Instruction Listing")
	tw.AppendHeader(table.Row{"Line", "Source", "Form", "Opcode", "Rs", "Rt", "Rd", "Shamt", "Funct", "Imm", "Addr", "Word"})
	for _, e := range entries {
		inst := e.Instruction
		row := table.Row{e.Line, e.Source, inst.Form, fmt.Sprintf("0x%02x", inst.Opcode)}
		switch inst.Form {
		case asmparser.FormR:
			row = append(row, reg(inst.Rs), reg(inst.Rt), reg(inst.Rd), inst.Shamt, fmt.Sprintf("0x%02x", inst.Funct), "", "")
		case asmparser.FormJ:
			row = append(row, "", "", "", "", "", "", fmt.Sprintf("0x%07x", inst.Address))
		default:
			row = append(row, reg(inst.Rs), reg(inst.Rt), "", "", "", fmt.Sprintf("0x%04x", inst.Immediate), "")
		}
		row = append(row, fmt.Sprintf("%08x", inst.Word))
		tw.AppendRow(row)
	}
	_, err := io.WriteString(output, tw.Render()+"\n")
	return err
}

func reg(idx uint32) string {
	return fmt.Sprintf("$%s(%d)", mips.RegisterName(idx), idx)
}
