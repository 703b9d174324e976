// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/anirbansanu/TaskReportsByGitCommit/model"
)

type NotARepoError struct {
	Path   string
	Reason string
}

func (e NotARepoError) Error() string {
	return fmt.Sprintf("vcs: %q is not a repository: %s", e.Path, e.Reason)
}

// LogQuery narrows a commit log read. Zero-valued fields are unset. Since
// and Until are inclusive day-granularity bounds.
type LogQuery struct {
	Author string
	Since  time.Time
	Until  time.Time
}

type Interface interface {
	// ValidateRepo reports whether path exists and carries version control
	// metadata. A non-nil error is typically NotARepoError.
	ValidateRepo(path string) error
	// ReadCommits returns every matching non-merge commit from the
	// repository at path, exactly once, in the log's native most-recent-first
	// order. Callers must not rely on any other ordering.
	ReadCommits(ctx context.Context, path string, q LogQuery) ([]*model.Commit, error)
}

// RepoLabel derives the short label used to tag commits with their origin
// repository: the final path segment, except the current-directory aliases
// "./" and "." map to "current".
func RepoLabel(path string) string {
	if path == "./" || path == "." {
		return "current"
	}
	return filepath.Base(filepath.Clean(path))
}
