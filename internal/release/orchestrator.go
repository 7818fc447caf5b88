// Package release drives the version-consistency check and the
// interactive release pipeline. The pipeline is linear and fails
// fast: every step aborts the remainder, nothing is retried, and
// completed steps are never rolled back.
//
// Known limitation: the remote tag-existence check and the tag push
// are not atomic, so two overlapping release runs can both pass the
// check. This is accepted, not mitigated.
package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/voicereplay/voice-replay/internal/gitrepo"
	"github.com/voicereplay/voice-replay/internal/semver"
	"github.com/voicereplay/voice-replay/internal/spin"
)

// ErrCancelled marks an operator abort or declined confirmation. It
// is not an error condition; the CLI exits zero with a distinct
// message.
var ErrCancelled = errors.New("release cancelled")

type Orchestrator struct {
	git    *gitrepo.Client
	cfg    Config
	prompt Prompter
	spin   spin.Spinner
	out    io.Writer
}

func NewOrchestrator(git *gitrepo.Client, cfg Config, prompt Prompter, sp spin.Spinner, out io.Writer) *Orchestrator {
	return &Orchestrator{git: git, cfg: cfg, prompt: prompt, spin: sp, out: out}
}

// Run walks the pipeline end to end: preflight, consistency, tag
// check, target selection, confirmation, file rewrite, commit, push,
// tag, push tag.
func (o *Orchestrator) Run(ctx context.Context) error {
	if !o.git.IsWorkTree(ctx) {
		return errors.New("not inside a git working tree")
	}

	dirty, err := o.git.DirtyPaths(ctx)
	if err != nil {
		return err
	}
	if len(dirty) > 0 {
		return fmt.Errorf("working tree not clean, commit or stash first:\n  %s", strings.Join(dirty, "\n  "))
	}

	current, readings, err := NewChecker(o.cfg.Files).Check()
	if err != nil {
		WriteReport(o.out, readings)
		return err
	}
	fmt.Fprintf(o.out, "current version: %s\n", current)

	o.spin.Start("fetching tags from " + o.cfg.Remote)
	err = o.git.FetchTags(ctx, o.cfg.Remote)
	o.spin.Stop()
	if err != nil {
		return err
	}

	target, err := o.resolveTarget(ctx, current)
	if err != nil {
		return err
	}

	ok, err := o.prompt.Confirm(target)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	if target != current {
		if err := o.updateAndPush(ctx, target); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(o.out, "version unchanged; skipping file update and commit")
	}

	if err := o.git.CreateTag(ctx, target.Tag(), "Release "+target.Tag()); err != nil {
		return err
	}

	o.spin.Start("pushing tag " + target.Tag())
	err = o.git.PushTag(ctx, o.cfg.Remote, target.Tag())
	o.spin.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(o.out, "released %s\n", target.Tag())
	return nil
}

// resolveTarget picks the version to release. An unreleased current
// version is adopted as is; otherwise the operator chooses through
// the menu until a version with no remote tag comes out.
func (o *Orchestrator) resolveTarget(ctx context.Context, current semver.Version) (semver.Version, error) {
	exists, err := o.git.RemoteTagExists(ctx, o.cfg.Remote, current.Tag())
	if err != nil {
		return semver.Version{}, err
	}
	if !exists {
		fmt.Fprintf(o.out, "%s is not tagged yet, releasing it as is\n", current.Tag())
		return current, nil
	}

	for {
		action, err := o.prompt.ChooseAction(current)
		if err != nil {
			return semver.Version{}, err
		}

		var target semver.Version
		switch action {
		case ActionAbort:
			return semver.Version{}, ErrCancelled
		case ActionBumpPatch:
			target = current.Bump(semver.PartPatch)
		case ActionBumpMinor:
			target = current.Bump(semver.PartMinor)
		case ActionBumpMajor:
			target = current.Bump(semver.PartMajor)
		case ActionManual:
			raw, err := o.prompt.ManualVersion()
			if err != nil {
				return semver.Version{}, err
			}
			target, err = semver.Parse(raw)
			if err != nil {
				return semver.Version{}, err
			}
			if target.Less(current) {
				fmt.Fprintf(o.out, "warning: %s is lower than the current version %s\n", target, current)
			}
		default:
			return semver.Version{}, fmt.Errorf("unknown menu action %d", action)
		}

		taken, err := o.git.RemoteTagExists(ctx, o.cfg.Remote, target.Tag())
		if err != nil {
			return semver.Version{}, err
		}
		if taken {
			fmt.Fprintf(o.out, "tag %s already exists on %s\n", target.Tag(), o.cfg.Remote)
			continue
		}
		return target, nil
	}
}

// updateAndPush rewrites the declaration files, commits exactly
// those paths and pushes the branch. A push failure aborts before
// any tag is created.
func (o *Orchestrator) updateAndPush(ctx context.Context, target semver.Version) error {
	var paths []string
	for _, d := range o.cfg.Files {
		if err := d.Rewrite(target); err != nil {
			return err
		}
		paths = append(paths, d.Path)
		fmt.Fprintf(o.out, "updated %s\n", d.Path)
	}

	if err := o.git.Add(ctx, paths...); err != nil {
		return err
	}
	if err := o.git.Commit(ctx, "chore(release): bump version to "+target.String()); err != nil {
		return err
	}

	branch := o.cfg.Branch
	if branch == "" {
		var err error
		if branch, err = o.git.CurrentBranch(ctx); err != nil {
			return err
		}
	}

	o.spin.Start("pushing " + branch)
	err := o.git.Push(ctx, o.cfg.Remote, branch)
	o.spin.Stop()
	return err
}
