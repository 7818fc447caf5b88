package release

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicereplay/voice-replay/internal/declfile"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, "origin", cfg.Remote)
	assert.Len(t, cfg.Files, 3)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".release.ini")
	content := `[release]
remote = upstream
branch = release

[files]
manifest.json = json
version.go = assign
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, "release", cfg.Branch)
	require.Len(t, cfg.Files, 2)
	assert.Equal(t, declfile.Declaration{Path: "manifest.json", Kind: declfile.KindJSON}, cfg.Files[0])
	assert.Equal(t, declfile.Declaration{Path: "version.go", Kind: declfile.KindAssign}, cfg.Files[1])
}

func TestLoadConfigRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".release.ini")
	require.NoError(t, os.WriteFile(path, []byte("[files]\nmanifest.yaml = yaml\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
