// Package asmparser defines the line-level types shared by the assembler front end.
package asmparser

import "errors"

var (
	// ErrUnclassifiedLine is returned when a line matches none of the instruction forms.
	ErrUnclassifiedLine = errors.New("unclassified line")
	// ErrUnknownRegister is returned when a register token is not in the register table.
	ErrUnknownRegister = errors.New("unknown register")
	// ErrUnknownMnemonic is returned when an operation has no opcode or function code.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
)

// Parser holds interface for classifying and extracting assembly lines
type Parser interface {
	Classify(line string) (*Classification, error)
	Extract(c *Classification) (*Fields, error)
}

// Form represents the grammar form a line was classified as
type Form int

const (
	FormUnclassified Form = iota
	FormR                 // op $reg, $reg, $reg
	FormI                 // op $reg, $reg, 0xHHHH
	FormJ                 // j 0xHHHHHHH
	FormM                 // op $reg, 0xHHHH($reg)
)

func (f Form) String() string {
	switch f {
	case FormR:
		return "R-Form"
	case FormI:
		return "I-Form"
	case FormJ:
		return "J-Form"
	case FormM:
		return "M-Form"
	default:
		return "Unclassified"
	}
}

// Classification is the result of matching a line against the instruction forms.
type Classification struct {
	Form  Form
	Match string // matched text
	Line  string // full source line, kept for diagnostics
}

// Fields holds the operands extracted from a classified line, with registers already resolved.
type Fields struct {
	Form      Form
	Mnemonic  string
	Rs        uint32
	Rt        uint32
	Rd        uint32
	Immediate uint32
	Address   uint32
}
