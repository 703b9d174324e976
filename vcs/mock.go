package vcs

import (
	"context"
	"strings"

	"github.com/anirbansanu/TaskReportsByGitCommit/model"
)

// Mock implements Interface from in-memory fixtures.
type Mock struct {
	commits  map[string][]*model.Commit
	invalid  map[string]error
	readErrs map[string]error
}

func NewMock() *Mock {
	return &Mock{
		commits:  make(map[string][]*model.Commit),
		invalid:  make(map[string]error),
		readErrs: make(map[string]error),
	}
}

// SetCommits registers fixture commits for a repository path. Commits with
// an empty Repo are stamped with the path's derived label, matching what
// the git implementation does while parsing.
func (m *Mock) SetCommits(path string, commits ...*model.Commit) *Mock {
	label := RepoLabel(path)
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.Repo == "" {
			c.Repo = label
		}
		finalCommits[i] = &c
	}
	m.commits[path] = finalCommits
	return m
}

// SetInvalid marks a path as failing repository validation.
func (m *Mock) SetInvalid(path string, err error) *Mock {
	if err == nil {
		err = NotARepoError{Path: path, Reason: "no version control metadata found"}
	}
	m.invalid[path] = err
	return m
}

// SetReadError makes ReadCommits fail for a path that validates fine.
func (m *Mock) SetReadError(path string, err error) *Mock {
	m.readErrs[path] = err
	return m
}

func (m *Mock) ValidateRepo(path string) error {
	if err, ok := m.invalid[path]; ok {
		return err
	}
	return nil
}

func (m *Mock) ReadCommits(ctx context.Context, path string, q LogQuery) ([]*model.Commit, error) {
	if err, ok := m.readErrs[path]; ok {
		return nil, err
	}
	var out []*model.Commit
	for _, c := range m.commits[path] {
		if q.Author != "" && !strings.Contains(c.Author, q.Author) {
			continue
		}
		if !q.Since.IsZero() && c.Date.Before(q.Since) {
			continue
		}
		if !q.Until.IsZero() && c.Date.After(q.Until) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
