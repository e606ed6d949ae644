// Package memimage holds the assembled program as a fixed-size word array and
// serializes it in the "v3.0 raw" text format.
package memimage

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultCapacity is the number of words in an image.
	DefaultCapacity = 256
	// Header is the first line of every serialized image.
	Header = "v3.0 raw"
	// WordsPerRow is the number of words printed after each row address.
	WordsPerRow = 8
)

// ErrImageOverflow is returned when a word is written outside the image.
var ErrImageOverflow = errors.New("image overflow")

// Image is a zero-initialized, fixed-capacity sequence of 32-bit words.
type Image struct {
	words []uint32
}

// New allocates an image holding capacity words.
func New(capacity int) *Image {
	return &Image{words: make([]uint32, capacity)}
}

// Write stores word at index.
func (img *Image) Write(index int, word uint32) error {
	if index < 0 || index >= len(img.words) {
		return fmt.Errorf("%w: index %d outside [0, %d)", ErrImageOverflow, index, len(img.words))
	}
	img.words[index] = word
	return nil
}

// Len returns the image capacity in words.
func (img *Image) Len() int {
	return len(img.words)
}

// Words returns a copy of the image contents.
func (img *Image) Words() []uint32 {
	words := make([]uint32, len(img.words))
	copy(words, img.words)
	return words
}

// WriteTo writes the header followed by one row per WordsPerRow words:
//
//	v3.0 raw
//	0000 : 012a4020 2128000a 00000000 ...
//
// Rows are separated by newlines; there is no trailing newline.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, img.String())
	return int64(n), err
}

func (img *Image) String() string {
	var sb strings.Builder
	sb.Grow(len(Header) + len(img.words)*9 + len(img.words)/WordsPerRow*8)
	sb.WriteString(Header)
	for i, word := range img.words {
		if i%WordsPerRow == 0 {
			fmt.Fprintf(&sb, "\n%04x : %08x", i, word)
			continue
		}
		fmt.Fprintf(&sb, " %08x", word)
	}
	return sb.String()
}
