package release

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicereplay/voice-replay/internal/declfile"
)

func writeDecls(t *testing.T, manifest, buildinfo, banner string) []declfile.Declaration {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"manifest.json": `{"name": "Voice Replay", "version": "` + manifest + `"}`,
		"buildinfo.go":  `package buildinfo` + "\n\n" + `const Version = "` + buildinfo + `"` + "\n",
		"main.go":       `const banner = "voice-replay v` + banner + ` listening"` + "\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	return []declfile.Declaration{
		{Path: filepath.Join(dir, "manifest.json"), Kind: declfile.KindJSON},
		{Path: filepath.Join(dir, "buildinfo.go"), Kind: declfile.KindAssign},
		{Path: filepath.Join(dir, "main.go"), Kind: declfile.KindLogLine},
	}
}

func TestCheckAllEqual(t *testing.T) {
	c := NewChecker(writeDecls(t, "0.4.2", "0.4.2", "0.4.2"))

	v, readings, err := c.Check()
	require.NoError(t, err)
	assert.Equal(t, "0.4.2", v.String())
	assert.Len(t, readings, 3)
}

func TestCheckMismatchNamesFilesAndValues(t *testing.T) {
	decls := writeDecls(t, "0.4.2", "0.4.3", "0.4.2")
	c := NewChecker(decls)

	_, _, err := c.Check()
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), decls[0].Path+"=0.4.2")
	assert.Contains(t, err.Error(), decls[1].Path+"=0.4.3")
}

func TestCheckSkipsMissingFiles(t *testing.T) {
	decls := writeDecls(t, "1.2.3", "1.2.3", "1.2.3")
	require.NoError(t, os.Remove(decls[2].Path))

	v, readings, err := NewChecker(decls).Check()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())
	assert.True(t, readings[2].Missing)
}

func TestCheckAllMissing(t *testing.T) {
	dir := t.TempDir()
	decls := []declfile.Declaration{
		{Path: filepath.Join(dir, "a.json"), Kind: declfile.KindJSON},
		{Path: filepath.Join(dir, "b.go"), Kind: declfile.KindAssign},
	}
	_, _, err := NewChecker(decls).Check()
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	decls := writeDecls(t, "0.4.2", "0.4.2", "0.4.2")
	_, readings, err := NewChecker(decls).Check()
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, readings)
	assert.Contains(t, buf.String(), "0.4.2")
	assert.Contains(t, buf.String(), "manifest.json")
}
