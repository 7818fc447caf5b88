package release

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/voicereplay/voice-replay/internal/declfile"
	"github.com/voicereplay/voice-replay/internal/semver"
)

// Checker confirms that every present declaration file carries the
// same version. It has no side effects beyond reporting.
type Checker struct {
	decls []declfile.Declaration
}

func NewChecker(decls []declfile.Declaration) *Checker {
	return &Checker{decls: decls}
}

// MismatchError names each file and its extracted value.
type MismatchError struct {
	Readings []declfile.Reading
}

func (e *MismatchError) Error() string {
	var parts []string
	for _, r := range e.Readings {
		if r.Missing {
			parts = append(parts, r.Decl.Path+"=missing")
			continue
		}
		parts = append(parts, r.Decl.Path+"="+r.Version.String())
	}
	return "version mismatch across declaration files: " + strings.Join(parts, ", ")
}

// Check reads every declaration fresh. Missing files are skipped; a
// single confirmed version comes back only when all present files
// agree.
func (c *Checker) Check() (semver.Version, []declfile.Reading, error) {
	var readings []declfile.Reading
	for _, d := range c.decls {
		r, err := d.Read()
		if err != nil {
			return semver.Version{}, readings, err
		}
		readings = append(readings, r)
	}

	var (
		confirmed semver.Version
		present   int
	)
	for _, r := range readings {
		if r.Missing {
			continue
		}
		present++
		if present == 1 {
			confirmed = r.Version
			continue
		}
		if r.Version != confirmed {
			return semver.Version{}, readings, &MismatchError{Readings: readings}
		}
	}

	if present == 0 {
		return semver.Version{}, readings, fmt.Errorf("no declaration files found")
	}

	return confirmed, readings, nil
}

// WriteReport renders the per-file readings as a table.
func WriteReport(w io.Writer, readings []declfile.Reading) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"File", "Kind", "Version"})
	for _, r := range readings {
		v := r.Version.String()
		if r.Missing {
			v = "missing"
		}
		t.AppendRow(table.Row{r.Decl.Path, string(r.Decl.Kind), v})
	}
	t.Render()
}
