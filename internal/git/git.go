// Package git provides the version-control queries autolog needs: staged
// name-status summaries and staged patch text. It uses the go-git library for
// repository detection and root discovery, and falls back to the git CLI for
// the staged diff queries, which go-git does not render as porcelain text.
package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	gogit "github.com/go-git/go-git/v5"
)

// openRepo opens a git repository at the specified path or current working
// directory, traversing up the directory tree to find the repository root.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// IsRepository checks if dir (or the current directory when empty) is within
// a git repository.
func IsRepository(dir string) bool {
	_, err := openRepo(dir)
	return err == nil
}

// RepositoryRoot returns the absolute path to the repository root containing
// dir (or the current directory when empty).
func RepositoryRoot(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// StagedNameStatus returns the name-status summary of staged changes as raw
// text lines of the form "<status>\t<path>[\t<new-path>]". A failure (not a
// repository, nothing staged) yields an empty string rather than an error:
// callers treat empty output as "nothing to do".
func StagedNameStatus(dir string) string {
	return runDiff(dir, "diff", "--cached", "--name-status")
}

// StagedPatch returns the full unified patch of staged changes. Returns an
// empty string on failure, same as StagedNameStatus.
func StagedPatch(dir string) string {
	return runDiff(dir, "diff", "--cached")
}

// runDiff runs a read-only git query and returns its stdout, or an empty
// string if the command fails for any reason.
func runDiff(dir string, args ...string) string {
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return ""
	}

	return out.String()
}
