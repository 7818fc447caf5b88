package release

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/voicereplay/voice-replay/internal/semver"
)

// Action is one choice from the release menu. Modeling the menu as
// an enumerated type keeps the increment, manual-entry and abort
// paths independently testable.
type Action int

const (
	ActionBumpPatch Action = iota + 1
	ActionBumpMinor
	ActionBumpMajor
	ActionManual
	ActionAbort
)

// Prompter is the operator-facing port of the orchestrator.
type Prompter interface {
	// ChooseAction presents the five-way menu for an already
	// released version.
	ChooseAction(current semver.Version) (Action, error)
	// ManualVersion reads a free-text version string.
	ManualVersion() (string, error)
	// Confirm asks for an explicit yes before anything is mutated.
	Confirm(target semver.Version) (bool, error)
}

type stdioPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads operator input line by line from in.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &stdioPrompter{in: bufio.NewScanner(in), out: out}
}

func (p *stdioPrompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *stdioPrompter) ChooseAction(current semver.Version) (Action, error) {
	fmt.Fprintf(p.out, "\nTag %s already exists on the remote.\n", current.Tag())
	fmt.Fprintf(p.out, "  1) bump patch  (%s)\n", current.Bump(semver.PartPatch))
	fmt.Fprintf(p.out, "  2) bump minor  (%s)\n", current.Bump(semver.PartMinor))
	fmt.Fprintf(p.out, "  3) bump major  (%s)\n", current.Bump(semver.PartMajor))
	fmt.Fprintln(p.out, "  4) enter version manually")
	fmt.Fprintln(p.out, "  5) abort")

	for {
		fmt.Fprint(p.out, "choice [1-5]: ")
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		switch line {
		case "1":
			return ActionBumpPatch, nil
		case "2":
			return ActionBumpMinor, nil
		case "3":
			return ActionBumpMajor, nil
		case "4":
			return ActionManual, nil
		case "5":
			return ActionAbort, nil
		}
		fmt.Fprintf(p.out, "invalid choice %q\n", line)
	}
}

func (p *stdioPrompter) ManualVersion() (string, error) {
	fmt.Fprint(p.out, "version (MAJOR.MINOR.PATCH): ")
	return p.readLine()
}

func (p *stdioPrompter) Confirm(target semver.Version) (bool, error) {
	fmt.Fprintf(p.out, "Release %s? [y/N]: ", target.Tag())
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes", nil
}
