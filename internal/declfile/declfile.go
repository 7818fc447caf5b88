// Package declfile reads and rewrites the redundant version
// declarations: the manifest field, the buildinfo assignment and the
// server startup banner. Each file kind has one fixed extraction
// pattern; changing a file's format means changing it here too.
package declfile

import (
	"fmt"
	"os"
	"regexp"

	"github.com/voicereplay/voice-replay/internal/semver"
)

type Kind string

const (
	// KindJSON matches a structured object field: "version": "X.Y.Z".
	KindJSON Kind = "json"
	// KindAssign matches a key assignment: Version = "X.Y.Z".
	KindAssign Kind = "assign"
	// KindLogLine matches the version token inside the startup log
	// string: voice-replay vX.Y.Z.
	KindLogLine Kind = "logline"
)

var patterns = map[Kind]*regexp.Regexp{
	KindJSON:    regexp.MustCompile(`("version"\s*:\s*")(\d+\.\d+\.\d+)(")`),
	KindAssign:  regexp.MustCompile(`(Version\s*=\s*")(\d+\.\d+\.\d+)(")`),
	KindLogLine: regexp.MustCompile(`(voice-replay v)(\d+\.\d+\.\d+)()`),
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := patterns[k]; !ok {
		return "", fmt.Errorf("unknown declaration kind %q", s)
	}
	return k, nil
}

// Declaration is one (file, extraction rule) pair.
type Declaration struct {
	Path string
	Kind Kind
}

// Reading is the result of extracting a version from one file. A
// missing file is recorded, not treated as a failure; the checker
// decides what absence means.
type Reading struct {
	Decl    Declaration
	Missing bool
	Version semver.Version
}

// Read extracts the version fresh from disk. Never cached.
func (d Declaration) Read() (Reading, error) {
	content, err := os.ReadFile(d.Path)
	if os.IsNotExist(err) {
		return Reading{Decl: d, Missing: true}, nil
	}
	if err != nil {
		return Reading{}, fmt.Errorf("read %s: %w", d.Path, err)
	}

	m := patterns[d.Kind].FindSubmatch(content)
	if m == nil {
		return Reading{}, fmt.Errorf("%s: no version token matching kind %q", d.Path, d.Kind)
	}

	v, err := semver.Parse(string(m[2]))
	if err != nil {
		return Reading{}, fmt.Errorf("%s: %w", d.Path, err)
	}

	return Reading{Decl: d, Version: v}, nil
}

// Rewrite replaces only the version token in place, keeping the rest
// of the file byte for byte, then re-reads to confirm the new value
// round-trips.
func (d Declaration) Rewrite(target semver.Version) error {
	content, err := os.ReadFile(d.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Path, err)
	}

	info, err := os.Stat(d.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", d.Path, err)
	}

	re := patterns[d.Kind]
	if !re.Match(content) {
		return fmt.Errorf("%s: no version token matching kind %q", d.Path, d.Kind)
	}

	updated := re.ReplaceAll(content, []byte("${1}"+target.String()+"${3}"))
	if err := os.WriteFile(d.Path, updated, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", d.Path, err)
	}

	check, err := d.Read()
	if err != nil {
		return fmt.Errorf("verify %s: %w", d.Path, err)
	}
	if check.Missing || check.Version != target {
		return fmt.Errorf("verify %s: wrote %s but read back %s", d.Path, target, check.Version)
	}
	return nil
}
