// Package gitinfo reads the commit a build is made from.
package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Unknown is reported when the project is not inside a git repository.
const Unknown = "unknown"

// Info describes the checked out revision
type Info struct {
	Commit string
	Short  string
	Branch string // empty for a detached HEAD
	Dirty  bool
}

// Describe inspects the repository containing dir. A directory outside any
// repository, or a repository without commits, yields Commit == Unknown and
// no error.
func Describe(dir string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Info{Commit: Unknown, Short: Unknown}, nil
		}
		return Info{}, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Info{Commit: Unknown, Short: Unknown}, nil
		}
		return Info{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	info := Info{
		Commit: head.Hash().String(),
		Short:  head.Hash().String()[:7],
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return info, nil
		}
		return Info{}, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return Info{}, fmt.Errorf("failed to read worktree status: %w", err)
	}
	info.Dirty = !status.IsClean()

	return info, nil
}

// String renders the info in the KEY=VALUE form used by BUILD_INFO
func (i Info) String() string {
	return fmt.Sprintf("commit=%s\nbranch=%s\ndirty=%t\n", i.Commit, i.Branch, i.Dirty)
}
