// Package encoder packs extracted instruction fields into 32-bit machine words.
package encoder

import (
	"fmt"

	"github.com/ChainSafe/rawasm/asmparser"
	"github.com/ChainSafe/rawasm/opcode"
)

// Field widths in bits.
const (
	OpcodeBits    = 6
	RegisterBits  = 5
	ShamtBits     = 5
	FunctBits     = 6
	ImmediateBits = 16
	AddressBits   = 26
)

//    6      5     5     5     5      6 bits
// [  op  |  rs |  rt |  rd |shamt| funct]  R-Form
// [  op  |  rs |  rt |     immediate    ]  I-Form, M-Form
// [  op  |        target address        ]  J-Form

// Instruction is the per-line intermediate record. Every field already fits its width.
type Instruction struct {
	Form      asmparser.Form
	Mnemonic  string
	Opcode    uint32
	Funct     uint32
	Rs        uint32
	Rt        uint32
	Rd        uint32
	Shamt     uint32
	Immediate uint32
	Address   uint32
	Word      uint32
}

// Field is a value paired with the number of low-order bits it contributes.
type Field struct {
	Value uint32
	Width uint
}

// Mask keeps the low width bits of v.
func Mask(v uint32, width uint) uint32 {
	if width >= 32 {
		return v
	}
	return v & (1<<width - 1)
}

// Pack concatenates fields most-significant first. High bits beyond a field's width are dropped.
func Pack(fields ...Field) uint32 {
	var word uint32
	for _, f := range fields {
		word = word<<f.Width | Mask(f.Value, f.Width)
	}
	return word
}

// Unpack returns the width-bit field that sits shift bits above the least significant bit.
func Unpack(word uint32, shift, width uint) uint32 {
	return Mask(word>>shift, width)
}

// Encode builds the machine word for the given fields.
func Encode(f *asmparser.Fields) (*Instruction, error) {
	inst := &Instruction{
		Form:     f.Form,
		Mnemonic: f.Mnemonic,
	}

	switch f.Form {
	case asmparser.FormR:
		funct, err := opcode.Funct(f.Mnemonic)
		if err != nil {
			return nil, err
		}
		inst.Opcode = opcode.Special
		inst.Funct = funct
		inst.Rs = Mask(f.Rs, RegisterBits)
		inst.Rt = Mask(f.Rt, RegisterBits)
		inst.Rd = Mask(f.Rd, RegisterBits)
		inst.Word = Pack(
			Field{inst.Opcode, OpcodeBits},
			Field{inst.Rs, RegisterBits},
			Field{inst.Rt, RegisterBits},
			Field{inst.Rd, RegisterBits},
			Field{inst.Shamt, ShamtBits},
			Field{inst.Funct, FunctBits},
		)
	case asmparser.FormI, asmparser.FormM:
		code, err := opcode.Opcode(f.Mnemonic)
		if err != nil {
			return nil, err
		}
		inst.Opcode = Mask(code, OpcodeBits)
		inst.Rs = Mask(f.Rs, RegisterBits)
		inst.Rt = Mask(f.Rt, RegisterBits)
		inst.Immediate = Mask(f.Immediate, ImmediateBits)
		inst.Word = Pack(
			Field{inst.Opcode, OpcodeBits},
			Field{inst.Rs, RegisterBits},
			Field{inst.Rt, RegisterBits},
			Field{inst.Immediate, ImmediateBits},
		)
	case asmparser.FormJ:
		code, err := opcode.Opcode(f.Mnemonic)
		if err != nil {
			return nil, err
		}
		inst.Opcode = Mask(code, OpcodeBits)
		inst.Address = Mask(f.Address, AddressBits)
		inst.Word = Pack(
			Field{inst.Opcode, OpcodeBits},
			Field{inst.Address, AddressBits},
		)
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", asmparser.ErrUnclassifiedLine, f.Form)
	}
	return inst, nil
}
