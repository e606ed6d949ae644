package opcode

import (
	"testing"

	"github.com/ChainSafe/rawasm/asmparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcode(t *testing.T) {
	cases := map[string]uint32{"beq": 4, "lw": 0x23, "SW": 0x2B, "addi": 8, "j": 2}
	for mnemonic, want := range cases {
		got, err := Opcode(mnemonic)
		require.NoError(t, err, mnemonic)
		assert.Equal(t, want, got, mnemonic)
	}

	_, err := Opcode("add")
	assert.ErrorIs(t, err, asmparser.ErrUnknownMnemonic)
	_, err = Opcode("jal")
	assert.ErrorIs(t, err, asmparser.ErrUnknownMnemonic)
}

func TestFunct(t *testing.T) {
	cases := map[string]uint32{
		"add": 0x20, "sub": 0x22, "slt": 0x2A, "or": 0x25,
		"nor": 0x27, "NAND": 0x26, "and": 0x24,
	}
	for mnemonic, want := range cases {
		got, err := Funct(mnemonic)
		require.NoError(t, err, mnemonic)
		assert.Equal(t, want, got, mnemonic)
	}

	_, err := Funct("addi")
	assert.ErrorIs(t, err, asmparser.ErrUnknownMnemonic)
}

func TestFormOf(t *testing.T) {
	form, ok := FormOf("lw")
	assert.True(t, ok)
	assert.Equal(t, asmparser.FormM, form)

	form, ok = FormOf("Beq")
	assert.True(t, ok)
	assert.Equal(t, asmparser.FormI, form)

	_, ok = FormOf("mul")
	assert.False(t, ok)
}

func TestMnemonics(t *testing.T) {
	assert.Equal(t, []string{
		"add", "addi", "and", "beq", "j", "lw", "nand", "nor", "or", "slt", "sub", "sw",
	}, Mnemonics())
}

func TestReverseLookup(t *testing.T) {
	for _, m := range []string{"beq", "lw", "sw", "addi", "j"} {
		code, err := Opcode(m)
		require.NoError(t, err)
		name, ok := MnemonicForOpcode(code)
		assert.True(t, ok)
		assert.Equal(t, m, name)
	}
	for _, m := range []string{"add", "sub", "slt", "or", "nor", "nand", "and"} {
		code, err := Funct(m)
		require.NoError(t, err)
		name, ok := MnemonicForFunct(code)
		assert.True(t, ok)
		assert.Equal(t, m, name)
	}

	_, ok := MnemonicForOpcode(0x3F)
	assert.False(t, ok)
	_, ok = MnemonicForFunct(0)
	assert.False(t, ok)
}

func TestIsBranch(t *testing.T) {
	assert.True(t, IsBranch("beq"))
	assert.True(t, IsBranch("BEQ"))
	assert.False(t, IsBranch("addi"))
	assert.False(t, IsBranch("j"))
}
