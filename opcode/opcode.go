// Package opcode holds the mnemonic tables for the supported MIPS subset.
package opcode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ChainSafe/rawasm/asmparser"
)

// Special is the opcode shared by every R-Form instruction; the function code selects the operation.
const Special uint32 = 0x00

var opcodes = map[string]uint32{
	"beq":  0x04,
	"lw":   0x23,
	"sw":   0x2B,
	"addi": 0x08,
	"j":    0x02,
}

var functs = map[string]uint32{
	"add":  0x20,
	"sub":  0x22,
	"slt":  0x2A,
	"or":   0x25,
	"nor":  0x27,
	"nand": 0x26,
	"and":  0x24,
}

var forms = map[string]asmparser.Form{
	"add":  asmparser.FormR,
	"sub":  asmparser.FormR,
	"slt":  asmparser.FormR,
	"or":   asmparser.FormR,
	"nor":  asmparser.FormR,
	"nand": asmparser.FormR,
	"and":  asmparser.FormR,
	"addi": asmparser.FormI,
	"beq":  asmparser.FormI,
	"lw":   asmparser.FormM,
	"sw":   asmparser.FormM,
	"j":    asmparser.FormJ,
}

// branches are I-Form operations that compare rs and rt in source order
// instead of writing rt.
var branches = map[string]bool{"beq": true}

// IsBranch reports whether mnemonic names a branch.
func IsBranch(mnemonic string) bool {
	return branches[strings.ToLower(mnemonic)]
}

// Opcode returns the 6-bit opcode of an I, J or M-Form mnemonic.
func Opcode(mnemonic string) (uint32, error) {
	code, ok := opcodes[strings.ToLower(mnemonic)]
	if !ok {
		return 0, fmt.Errorf("%w: no opcode for %q", asmparser.ErrUnknownMnemonic, mnemonic)
	}
	return code, nil
}

// Funct returns the 6-bit function code of an R-Form mnemonic.
func Funct(mnemonic string) (uint32, error) {
	code, ok := functs[strings.ToLower(mnemonic)]
	if !ok {
		return 0, fmt.Errorf("%w: no function code for %q", asmparser.ErrUnknownMnemonic, mnemonic)
	}
	return code, nil
}

// FormOf returns the form a supported mnemonic is written in.
func FormOf(mnemonic string) (asmparser.Form, bool) {
	form, ok := forms[strings.ToLower(mnemonic)]
	return form, ok
}

// Mnemonics returns every supported mnemonic, sorted.
func Mnemonics() []string {
	names := make([]string, 0, len(forms))
	for name := range forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MnemonicForOpcode returns the mnemonic whose opcode is code.
func MnemonicForOpcode(code uint32) (string, bool) {
	return reverse(opcodes, code)
}

// MnemonicForFunct returns the R-Form mnemonic whose function code is code.
func MnemonicForFunct(code uint32) (string, bool) {
	return reverse(functs, code)
}

func reverse(table map[string]uint32, code uint32) (string, bool) {
	for name, c := range table {
		if c == code {
			return name, true
		}
	}
	return "", false
}
