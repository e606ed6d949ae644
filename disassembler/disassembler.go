// Package disassembler reads "v3.0 raw" memory images and turns their words back
// into source lines the assembler accepts.
package disassembler

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChainSafe/rawasm/asmparser"
	"github.com/ChainSafe/rawasm/asmparser/mips"
	"github.com/ChainSafe/rawasm/encoder"
	"github.com/ChainSafe/rawasm/memimage"
	"github.com/ChainSafe/rawasm/opcode"
)

var rowRegex = regexp.MustCompile(`^([0-9a-fA-F]{4}) : ((?:[0-9a-fA-F]{8} ?)+)$`)

// ReadImage parses a serialized image into an image of the given capacity.
func ReadImage(r io.Reader, capacity int) (*memimage.Image, error) {
	img := memimage.New(capacity)
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading image: %w", err)
		}
		return nil, fmt.Errorf("empty image, expected %q header", memimage.Header)
	}
	if header := strings.TrimSuffix(scanner.Text(), "\r"); header != memimage.Header {
		return nil, fmt.Errorf("invalid image header %q, expected %q", header, memimage.Header)
	}

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		matches := rowRegex.FindStringSubmatch(line)
		if matches == nil {
			return nil, fmt.Errorf("line %d: malformed row: %s", lineNum, line)
		}
		base, err := strconv.ParseUint(matches[1], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid row address: %w", lineNum, err)
		}
		for i, field := range strings.Fields(matches[2]) {
			word, err := strconv.ParseUint(field, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid word: %w", lineNum, err)
			}
			if err := img.Write(int(base)+i, uint32(word)); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}
	return img, nil
}

// Decode renders a machine word as a source line.
func Decode(word uint32) (string, error) {
	op := encoder.Unpack(word, 26, encoder.OpcodeBits)
	rs := encoder.Unpack(word, 21, encoder.RegisterBits)
	rt := encoder.Unpack(word, 16, encoder.RegisterBits)

	if op == opcode.Special {
		funct := encoder.Unpack(word, 0, encoder.FunctBits)
		mnemonic, ok := opcode.MnemonicForFunct(funct)
		if !ok {
			return "", fmt.Errorf("%w: function code 0x%02x in word %08x", asmparser.ErrUnknownMnemonic, funct, word)
		}
		rd := encoder.Unpack(word, 11, encoder.RegisterBits)
		return fmt.Sprintf("%s $%s, $%s, $%s", mnemonic, reg(rd), reg(rs), reg(rt)), nil
	}

	mnemonic, ok := opcode.MnemonicForOpcode(op)
	if !ok {
		return "", fmt.Errorf("%w: opcode 0x%02x in word %08x", asmparser.ErrUnknownMnemonic, op, word)
	}
	form, _ := opcode.FormOf(mnemonic)
	imm := encoder.Unpack(word, 0, encoder.ImmediateBits)
	switch form {
	case asmparser.FormJ:
		return fmt.Sprintf("%s 0x%07x", mnemonic, encoder.Unpack(word, 0, encoder.AddressBits)), nil
	case asmparser.FormM:
		return fmt.Sprintf("%s $%s, 0x%04x($%s)", mnemonic, reg(rt), imm, reg(rs)), nil
	default:
		if opcode.IsBranch(mnemonic) {
			return fmt.Sprintf("%s $%s, $%s, 0x%04x", mnemonic, reg(rs), reg(rt), imm), nil
		}
		return fmt.Sprintf("%s $%s, $%s, 0x%04x", mnemonic, reg(rt), reg(rs), imm), nil
	}
}

// Disassemble decodes every word up to the last non-zero one. Zero words become
// empty lines so each word keeps its line number.
func Disassemble(img *memimage.Image) ([]string, error) {
	words := img.Words()
	last := len(words) - 1
	for last >= 0 && words[last] == 0 {
		last--
	}

	lines := make([]string, 0, last+1)
	for i, word := range words[:last+1] {
		if word == 0 {
			lines = append(lines, "")
			continue
		}
		line, err := Decode(word)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func reg(idx uint32) string {
	return mips.RegisterName(idx)
}
