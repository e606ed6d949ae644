package assembler

import (
	"errors"

	"github.com/ChainSafe/rawasm/asmparser"
)

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
)

// Kind names the class of problem found on a line.
type Kind string

const (
	KindUnclassifiedLine   Kind = "UnclassifiedLine"
	KindUnknownRegister    Kind = "UnknownRegister"
	KindUnknownMnemonic    Kind = "UnknownMnemonic"
	KindDisallowedMnemonic Kind = "DisallowedMnemonic"
)

// Diagnostic represents a single problem found on a source line.
type Diagnostic struct {
	Line     int      `json:"line"`   // 1-based source line number.
	Source   string   `json:"source"` // The full source line.
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// kindOf maps a line-scoped error to its diagnostic kind.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, asmparser.ErrUnknownRegister):
		return KindUnknownRegister
	case errors.Is(err, asmparser.ErrUnknownMnemonic):
		return KindUnknownMnemonic
	default:
		return KindUnclassifiedLine
	}
}
