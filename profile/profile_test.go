package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	prof := Default()
	require.NoError(t, prof.Validate())
	assert.Equal(t, 256, prof.ImageWords)
	assert.True(t, prof.IsAllowed("nand"))
	assert.True(t, prof.IsAllowed("anything"))
}

func TestLoadProfile(t *testing.T) {
	prof, err := LoadProfile(filepath.Join("testdata", "classroom.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "classroom", prof.Name)
	assert.Equal(t, 64, prof.ImageWords)
	assert.True(t, prof.IsAllowed("sub"))
	assert.True(t, prof.IsAllowed("ADD"))
	assert.False(t, prof.IsAllowed("nand"))
	assert.False(t, prof.IsAllowed("beq"))
}

func TestLoadProfileDefaults(t *testing.T) {
	path := writeProfile(t, "name: tiny\n")
	prof, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", prof.Name)
	assert.Equal(t, 256, prof.ImageWords)
	assert.Empty(t, prof.AllowedMnemonics)
}

func TestLoadProfileInvalid(t *testing.T) {
	cases := map[string]string{
		"bad image size":   "image_words: 12\n",
		"zero image size":  "image_words: 0\n",
		"unknown mnemonic": "allowed_mnemonics: [add, mul]\n",
		"not yaml":         "image_words: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProfile(writeProfile(t, content))
			assert.Error(t, err)
		})
	}

	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
