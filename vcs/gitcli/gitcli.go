// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anirbansanu/TaskReportsByGitCommit/config"
	"github.com/anirbansanu/TaskReportsByGitCommit/model"
	"github.com/anirbansanu/TaskReportsByGitCommit/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
}

func New(cfg config.Config) *Git {
	return &Git{
		cfg: cfg,
	}
}

func (g *Git) ValidateRepo(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return vcs.NotARepoError{Path: path, Reason: "path does not exist"}
	}
	if !info.IsDir() {
		return vcs.NotARepoError{Path: path, Reason: "not a directory"}
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return vcs.NotARepoError{Path: path, Reason: "no .git metadata"}
	}
	return nil
}

const EXPECTED_LOG_FIELDS = 4

func (g *Git) ReadCommits(ctx context.Context, path string, q vcs.LogQuery) ([]*model.Commit, error) {
	args := []string{
		"log", "--pretty=format:%H|%an|%ad|%s", "--date=short",
	}
	if q.Author != "" {
		args = append(args, "--author", q.Author)
	}
	if !q.Since.IsZero() {
		args = append(args, "--since", q.Since.Format(GIT_DATE_SHORT))
	}
	if !q.Until.IsZero() {
		args = append(args, "--until", q.Until.Format(GIT_DATE_SHORT))
	}
	g.cfg.Debugf("+ git %s", ArgsString(args))

	b, err := g.call(ctx, path, args)
	if err != nil {
		return nil, err
	}
	return parseLog(b, vcs.RepoLabel(path))
}

// parseLog turns hash|author|date|subject lines into commits. Subjects may
// themselves contain pipes, so only the first three separators split.
// Commits whose subject starts with "Merge" are dropped; that prefix check
// is a compatibility heuristic, not true merge detection, and it also drops
// non-merge commits like "Merged feature".
func parseLog(b []byte, label string) ([]*model.Commit, error) {
	var commits []*model.Commit
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		s := scanner.Text()
		if s == "" {
			continue
		}
		parts := strings.SplitN(s, "|", EXPECTED_LOG_FIELDS)
		if len(parts) < EXPECTED_LOG_FIELDS {
			continue
		}

		subject := strings.TrimSpace(parts[3])
		if strings.HasPrefix(subject, "Merge") {
			continue
		}

		date, err := ParseGitShortDate(parts[2])
		if err != nil {
			return nil, fmt.Errorf("gitcli: unexpected git log line: %q: %w", s, err)
		}

		commits = append(commits, &model.Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    date,
			Subject: subject,
			Repo:    label,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commits, nil
}
