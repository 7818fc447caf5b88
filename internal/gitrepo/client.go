package gitrepo

import (
	"context"
	"strings"
)

// Client wraps the git operations the release pipeline needs. Every
// command failure propagates to the caller; nothing is retried.
type Client struct {
	run Runner
}

func NewClient(r Runner) *Client {
	return &Client{run: r}
}

// IsWorkTree reports whether the working directory is inside a git
// working tree.
func (c *Client) IsWorkTree(ctx context.Context) bool {
	out, err := c.run.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// DirtyPaths returns the porcelain status lines for uncommitted
// changes. Empty means the tree is clean.
func (c *Client) DirtyPaths(ctx context.Context) ([]string, error) {
	out, err := c.run.Run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	return c.run.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// FetchTags refreshes the local tag view so the existence check does
// not run against a stale cache.
func (c *Client) FetchTags(ctx context.Context, remote string) error {
	_, err := c.run.Run(ctx, "fetch", remote, "--tags", "--quiet")
	return err
}

// RemoteTagExists asks the remote directly whether the tag is
// already published.
func (c *Client) RemoteTagExists(ctx context.Context, remote, tag string) (bool, error) {
	out, err := c.run.Run(ctx, "ls-remote", "--tags", remote, "refs/tags/"+tag)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// Add stages exactly the given paths.
func (c *Client) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := c.run.Run(ctx, args...)
	return err
}

func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.run.Run(ctx, "commit", "-m", message)
	return err
}

func (c *Client) Push(ctx context.Context, remote, branch string) error {
	_, err := c.run.Run(ctx, "push", remote, branch)
	return err
}

func (c *Client) CreateTag(ctx context.Context, tag, message string) error {
	_, err := c.run.Run(ctx, "tag", "-a", tag, "-m", message)
	return err
}

func (c *Client) PushTag(ctx context.Context, remote, tag string) error {
	_, err := c.run.Run(ctx, "push", remote, tag)
	return err
}
