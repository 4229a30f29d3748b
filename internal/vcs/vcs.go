// Package vcs reads version-control metadata used to stamp binaries.
package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Revision of the working tree a build was made from.
type Revision struct {
	Commit string // Full commit hash of HEAD.
	Branch string // Short branch name, empty on a detached HEAD.
}

// Reads the HEAD revision of the repository containing dir.
//
// Parent directories are searched for the repository. Returns a nil
// revision and no error when dir is not inside a repository, or when the
// repository has no commits yet.
func Head(dir string) (*Revision, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	rev := &Revision{Commit: ref.Hash().String()}
	if ref.Name().IsBranch() {
		rev.Branch = ref.Name().Short()
	}
	return rev, nil
}

// Returns the "-X" link flags that stamp version information into pkg.
//
// The variables set are <pkg>.version, <pkg>.gitCommit, and <pkg>.stage,
// mirroring how xpack itself is stamped. Empty values are skipped. Returns
// nil when pkg is empty.
func StampFlags(pkg, version string, rev *Revision) []string {
	if pkg == "" {
		return nil
	}

	vars := [][2]string{{"version", version}}
	if rev != nil {
		vars = append(vars, [2]string{"gitCommit", rev.Commit}, [2]string{"stage", rev.Branch})
	}

	var flags []string
	for _, v := range vars {
		if v[1] == "" {
			continue
		}
		flags = append(flags, fmt.Sprintf("-X %s.%s=%s", pkg, v[0], v[1]))
	}
	return flags
}
