package spin

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner is the minimal progress surface the release pipeline
// needs; tests plug in a no-op.
type Spinner interface {
	Start(suffix string)
	Stop()
}

type cliSpinner struct {
	loader *spinner.Spinner
}

// New returns a terminal spinner for long git operations.
func New() Spinner {
	return &cliSpinner{}
}

func (s *cliSpinner) Start(suffix string) {
	s.loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.loader.Color("yellow") //nolint:errcheck
	s.loader.Suffix = " " + suffix
	s.loader.Start()
}

func (s *cliSpinner) Stop() {
	if s.loader != nil {
		s.loader.Stop()
	}
}

type nopSpinner struct{}

// Nop returns a Spinner that does nothing, for tests and quiet mode.
func Nop() Spinner { return nopSpinner{} }

func (nopSpinner) Start(string) {}
func (nopSpinner) Stop()        {}
