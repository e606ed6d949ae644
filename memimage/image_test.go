package memimage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsZeroed(t *testing.T) {
	img := New(DefaultCapacity)
	assert.Equal(t, 256, img.Len())
	for _, w := range img.Words() {
		assert.Zero(t, w)
	}
}

func TestWriteBounds(t *testing.T) {
	img := New(DefaultCapacity)
	require.NoError(t, img.Write(0, 1))
	require.NoError(t, img.Write(255, 2))

	assert.ErrorIs(t, img.Write(256, 3), ErrImageOverflow)
	assert.ErrorIs(t, img.Write(-1, 3), ErrImageOverflow)

	words := img.Words()
	assert.Equal(t, uint32(1), words[0])
	assert.Equal(t, uint32(2), words[255])
}

func TestWordsIsACopy(t *testing.T) {
	img := New(8)
	words := img.Words()
	words[0] = 42
	assert.Zero(t, img.Words()[0])
}

func TestString(t *testing.T) {
	img := New(DefaultCapacity)
	require.NoError(t, img.Write(0, 0x012A4020))
	require.NoError(t, img.Write(1, 0x2128000A))

	out := img.String()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+256/8)
	assert.Equal(t, "v3.0 raw", lines[0])
	assert.Equal(t, "0000 : 012a4020 2128000a 00000000 00000000 00000000 00000000 00000000 00000000", lines[1])
	assert.Equal(t, "0008 : 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000", lines[2])
	assert.Equal(t, "00f8 : 00000000 00000000 00000000 00000000 00000000 00000000 00000000 00000000", lines[32])
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestStringUppercaseInputRendersLowercase(t *testing.T) {
	img := New(8)
	require.NoError(t, img.Write(7, 0xDEADBEEF))
	assert.Equal(t, "v3.0 raw\n0000 : 00000000 00000000 00000000 00000000 00000000 00000000 00000000 deadbeef", img.String())
}

func TestWriteTo(t *testing.T) {
	img := New(16)
	require.NoError(t, img.Write(9, 0xFFFFFFFF))

	var buf bytes.Buffer
	n, err := img.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, img.String(), buf.String())
	assert.Contains(t, buf.String(), "\n0008 : 00000000 ffffffff 00000000")
}
