// Package runner manages command-line execution
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/anirbansanu/TaskReportsByGitCommit/commit"
	"github.com/anirbansanu/TaskReportsByGitCommit/config"
	"github.com/anirbansanu/TaskReportsByGitCommit/model"
	"github.com/anirbansanu/TaskReportsByGitCommit/report"
	"github.com/anirbansanu/TaskReportsByGitCommit/vcs"
)

type Runner struct {
	cfg config.Config
	vcs vcs.Interface
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}
}

// Result summarizes a completed run. Filename is empty when nothing was
// written (no commits matched, or dry run).
type Result struct {
	Filename string
	Commits  int
	Tasks    int
}

// Run executes the whole pipeline: validate and read every repository,
// merge commits by date, build task rows, and write the workbook.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	since, err := r.cfg.SinceDate()
	if err != nil {
		return nil, err
	}
	until, err := r.cfg.UntilDate()
	if err != nil {
		return nil, err
	}

	commits, err := r.collect(ctx, since, until)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		r.cfg.Printf("No commits found matching the criteria.")
		return &Result{}, nil
	}
	r.cfg.Printf("\nTotal commits found: %d", len(commits))

	stats := commit.ComputeStats(commits)

	var merged []*model.MergedDay
	if r.cfg.SeparateSheets {
		merged = commit.MergeByDatePerRepo(commits)
	} else {
		merged = commit.MergeByDate(commits)
	}
	tasks := commit.BuildTaskRows(merged, r.cfg.Assignee)

	// An interrupt during extraction must not leave a partial file behind,
	// so check once more before the only write.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename := report.Filename(r.cfg.Filename, since, until, time.Now())
	if r.cfg.Dryrun {
		r.cfg.Printf("+ write %s (dryrun)", filename)
		return &Result{Commits: len(commits), Tasks: len(tasks)}, nil
	}
	if err := report.WriteFile(filename, tasks, stats, r.cfg.SeparateSheets); err != nil {
		return nil, err
	}
	r.cfg.Printf("Excel report saved: %s", filename)
	return &Result{Filename: filename, Commits: len(commits), Tasks: len(tasks)}, nil
}

// collect validates the configured repositories and reads their commits.
// A repository that fails validation or whose log read errors is reported
// and skipped; only zero valid repositories is fatal.
func (r *Runner) collect(ctx context.Context, since, until time.Time) ([]*model.Commit, error) {
	repos, err := r.validRepos()
	if err != nil {
		return nil, err
	}

	q := vcs.LogQuery{Author: r.cfg.Author, Since: since, Until: until}
	r.cfg.Printf("Processing %d repositories...", len(repos))

	var all []*model.Commit
	for i, path := range repos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.cfg.Printf("[%d/%d] Processing repository: %s", i+1, len(repos), path)
		commits, err := r.vcs.ReadCommits(ctx, path, q)
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return nil, cerr
			}
			r.cfg.Errorf("Error reading commits in %s: %v", path, err)
			continue
		}
		r.cfg.Printf("  Found %d commits", len(commits))
		all = append(all, commits...)
	}
	return all, nil
}

func (r *Runner) validRepos() ([]string, error) {
	var valid []string
	var merr *multierror.Error
	for _, path := range r.cfg.Repos {
		if err := r.vcs.ValidateRepo(path); err != nil {
			r.cfg.Errorf("Skipping repository %s: %v", path, err)
			merr = multierror.Append(merr, err)
			continue
		}
		valid = append(valid, path)
	}
	if len(valid) == 0 {
		if err := merr.ErrorOrNil(); err != nil {
			return nil, fmt.Errorf("runner: no valid repositories: %w", err)
		}
		return nil, errors.New("runner: no repositories configured")
	}
	return valid, nil
}
