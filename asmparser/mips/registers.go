package mips

import (
	"fmt"

	"github.com/ChainSafe/rawasm/asmparser"
)

// registerNames is the canonical register list; a name's position is its index.
var registerNames = [32]string{
	"ze", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// registers maps a two-letter register name to its index. Read-only after init.
var registers = func() map[string]uint32 {
	m := make(map[string]uint32, len(registerNames))
	for i, name := range registerNames {
		m[name] = uint32(i) //nolint:gosec
	}
	return m
}()

// LookupRegister resolves a register name such as "t0" or "ra" to its index.
func LookupRegister(name string) (uint32, error) {
	idx, ok := registers[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", asmparser.ErrUnknownRegister, name)
	}
	return idx, nil
}

// RegisterName returns the canonical name of register idx, or "" when idx is out of range.
func RegisterName(idx uint32) string {
	if idx >= uint32(len(registerNames)) {
		return ""
	}
	return registerNames[idx]
}
