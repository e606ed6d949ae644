// Package profile loads assembler profiles: image size and the mnemonics a target accepts.
package profile

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ChainSafe/rawasm/memimage"
	"github.com/ChainSafe/rawasm/opcode"
	"gopkg.in/yaml.v3"
)

// Profile represents the configuration for a specific assembly target.
type Profile struct {
	Name             string   `yaml:"name"`
	ImageWords       int      `yaml:"image_words"`
	AllowedMnemonics []string `yaml:"allowed_mnemonics"`
}

// Default returns the profile used when none is given: a 256-word image accepting every mnemonic.
func Default() *Profile {
	return &Profile{
		Name:       "default",
		ImageWords: memimage.DefaultCapacity,
	}
}

// LoadProfile loads a profile from a YAML file. Omitted fields keep their defaults.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	prof := Default()
	if err := yaml.NewDecoder(file).Decode(prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	for i, m := range prof.AllowedMnemonics {
		prof.AllowedMnemonics[i] = strings.ToLower(m)
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return prof, nil
}

// Validate checks the image size and that every allowed mnemonic is supported.
func (p *Profile) Validate() error {
	if p.ImageWords <= 0 || p.ImageWords%memimage.WordsPerRow != 0 {
		return fmt.Errorf("image_words must be a positive multiple of %d, got %d", memimage.WordsPerRow, p.ImageWords)
	}
	for _, m := range p.AllowedMnemonics {
		if _, ok := opcode.FormOf(m); !ok {
			return fmt.Errorf("unsupported mnemonic %q in allowed_mnemonics", m)
		}
	}
	return nil
}

// IsAllowed reports whether the profile accepts mnemonic. An empty allow list accepts everything.
func (p *Profile) IsAllowed(mnemonic string) bool {
	if len(p.AllowedMnemonics) == 0 {
		return true
	}
	return slices.ContainsFunc(p.AllowedMnemonics, func(m string) bool {
		return strings.EqualFold(m, mnemonic)
	})
}
