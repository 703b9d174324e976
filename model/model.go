// Package model contains abstract data models.
package model

import "time"

// Commit is one non-merge commit read from a repository log. Date is
// truncated to day granularity (UTC midnight).
type Commit struct {
	Hash    string
	Author  string
	Date    time.Time
	Subject string
	Repo    string
}

func (c *Commit) ShortHash() string {
	if len(c.Hash) < 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// MergedDay collapses every commit sharing a calendar date (and, in
// per-repository mode, a repository) into a single record. Message holds
// one "subject (repo)" line per contributing commit, sorted by
// (repo, subject). Repo is the single contributing repository label, or
// "combined" when more than one contributed.
type MergedDay struct {
	Date        time.Time
	Message     string
	Repo        string
	CommitCount int
}

// TaskRow is one row of a task table. Repo and CommitCount are carried for
// sheet partitioning but are never rendered as columns.
type TaskRow struct {
	Name        string
	Priority    string
	AssignDate  time.Time
	DueDate     string
	PlannedEnd  time.Time
	ActualEnd   time.Time
	Assignee    string
	Repo        string
	CommitCount int
}

// RepoStats summarizes a single repository's commit history.
type RepoStats struct {
	TotalCommits    int
	Earliest        time.Time
	Latest          time.Time
	DaysWithCommits int
	AvgPerDay       float64
	MaxPerDay       int
	Authors         int
}

// DaySpan is the inclusive number of calendar days between the earliest
// and latest commit dates.
func (s *RepoStats) DaySpan() int {
	if s.Earliest.IsZero() || s.Latest.IsZero() {
		return 0
	}
	return int(s.Latest.Sub(s.Earliest).Hours()/24) + 1
}
