package common

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// sourceExtRegex matches the accepted assembly source file names.
var sourceExtRegex = regexp.MustCompile(`(?i)^[^.].*\.(s|asm|mips|spim)$`)

// ValidateSourcePath checks that path names an assembly source file.
func ValidateSourcePath(path string) error {
	if !sourceExtRegex.MatchString(filepath.Base(path)) {
		return fmt.Errorf("not an assembly source file (.s, .asm, .mips, .spim): %s", path)
	}
	return nil
}
