// Package mips provides the implementation of the asmparser interfaces for the fixed-format MIPS subset.
package mips

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChainSafe/rawasm/asmparser"
	"github.com/ChainSafe/rawasm/opcode"
)

// Each pattern covers the whole line. Order matters: the first match wins.
var forms = []struct {
	form  asmparser.Form
	regex *regexp.Regexp
}{
	{asmparser.FormR, regexp.MustCompile(`(?i)^([a-z]+) \$[a-z0-9]+, \$[a-z0-9]+, \$[a-z0-9]+$`)},
	{asmparser.FormI, regexp.MustCompile(`(?i)^([a-z]+) \$[a-z0-9]+, \$[a-z0-9]+, 0x([0-9a-f]{4})$`)},
	{asmparser.FormJ, regexp.MustCompile(`(?i)^(j) 0x([0-9a-f]{7})$`)},
	{asmparser.FormM, regexp.MustCompile(`(?i)^([a-z]+) \$[a-z0-9]+, 0x([0-9a-f]{4})\(\$[a-z0-9]+\)$`)},
}

// parserImpl implements the asmparser.Parser interface.
type parserImpl struct{}

// NewParser returns a new instance of the MIPS line parser.
func NewParser() asmparser.Parser {
	return &parserImpl{}
}

// Classify matches a line against the R, I, J and M forms in that order.
func (p *parserImpl) Classify(line string) (*asmparser.Classification, error) {
	trimmed := strings.TrimSuffix(line, "\r")
	for _, f := range forms {
		if match := f.regex.FindString(trimmed); match != "" {
			return &asmparser.Classification{Form: f.form, Match: match, Line: line}, nil
		}
	}
	return &asmparser.Classification{Form: asmparser.FormUnclassified, Line: line},
		fmt.Errorf("%w: %q", asmparser.ErrUnclassifiedLine, line)
}

// Extract pulls the mnemonic, registers and literal out of a classified line.
//
// Register tokens fill slots in the order they appear:
//
//	R: rd, rs, rt
//	I: rt, rs (branches: rs, rt)
//	M: rt, rs
func (p *parserImpl) Extract(c *asmparser.Classification) (*asmparser.Fields, error) {
	regex, err := formRegex(c.Form)
	if err != nil {
		return nil, err
	}
	matches := regex.FindStringSubmatch(c.Match)
	if matches == nil {
		return nil, fmt.Errorf("%w: %q does not match %s", asmparser.ErrUnclassifiedLine, c.Match, c.Form)
	}

	fields := &asmparser.Fields{
		Form:     c.Form,
		Mnemonic: strings.ToLower(matches[1]),
	}
	cur := &cursor{text: c.Match}

	switch c.Form {
	case asmparser.FormR:
		err = cur.registers(&fields.Rd, &fields.Rs, &fields.Rt)
	case asmparser.FormI:
		first, second := &fields.Rt, &fields.Rs
		if opcode.IsBranch(fields.Mnemonic) {
			first, second = &fields.Rs, &fields.Rt
		}
		if err = cur.registers(first, second); err == nil {
			fields.Immediate, err = parseHex(matches[2])
		}
	case asmparser.FormJ:
		fields.Address, err = parseHex(matches[2])
	case asmparser.FormM:
		if err = cur.registers(&fields.Rt); err == nil {
			if fields.Immediate, err = parseHex(matches[2]); err == nil {
				err = cur.registers(&fields.Rs)
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func formRegex(form asmparser.Form) (*regexp.Regexp, error) {
	for _, f := range forms {
		if f.form == form {
			return f.regex, nil
		}
	}
	return nil, fmt.Errorf("%w: no grammar for %s", asmparser.ErrUnclassifiedLine, form)
}

func parseHex(digits string) (uint32, error) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex literal %q: %w", digits, err)
	}
	return uint32(v), nil
}

// cursor walks register tokens left to right without modifying the line.
type cursor struct {
	text string
	pos  int
}

// next returns the two characters following the next '$' at or after pos.
func (c *cursor) next() (string, error) {
	i := strings.IndexByte(c.text[c.pos:], '$')
	if i < 0 {
		return "", fmt.Errorf("%w: missing register operand after column %d", asmparser.ErrUnknownRegister, c.pos)
	}
	start := c.pos + i + 1
	end := min(start+2, len(c.text))
	c.pos = start
	return c.text[start:end], nil
}

// registers resolves the next len(dst) register tokens into dst, in order.
func (c *cursor) registers(dst ...*uint32) error {
	for _, d := range dst {
		name, err := c.next()
		if err != nil {
			return err
		}
		idx, err := LookupRegister(name)
		if err != nil {
			return fmt.Errorf("column %d: %w", c.pos, err)
		}
		*d = idx
	}
	return nil
}
