package release

import (
	"fmt"
	"os"

	"github.com/go-ini/ini"

	"github.com/voicereplay/voice-replay/internal/declfile"
)

// DefaultConfigPath is looked up relative to the repo root.
const DefaultConfigPath = ".release.ini"

type Config struct {
	Remote string
	Branch string
	Files  []declfile.Declaration
}

// DefaultConfig lists the three version declaration files this repo
// carries.
func DefaultConfig() Config {
	return Config{
		Remote: "origin",
		Files: []declfile.Declaration{
			{Path: "manifest.json", Kind: declfile.KindJSON},
			{Path: "internal/buildinfo/buildinfo.go", Kind: declfile.KindAssign},
			{Path: "cmd/server/main.go", Kind: declfile.KindLogLine},
		},
	}
}

// LoadConfig reads the ini file if present, falling back to the
// defaults. Branch left empty means "the currently checked out one".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	sec := f.Section("release")
	cfg.Remote = sec.Key("remote").MustString(cfg.Remote)
	cfg.Branch = sec.Key("branch").String()

	if keys := f.Section("files").Keys(); len(keys) > 0 {
		var decls []declfile.Declaration
		for _, key := range keys {
			kind, err := declfile.ParseKind(key.String())
			if err != nil {
				return Config{}, fmt.Errorf("%s: file %q: %w", path, key.Name(), err)
			}
			decls = append(decls, declfile.Declaration{Path: key.Name(), Kind: kind})
		}
		cfg.Files = decls
	}

	return cfg, nil
}
