// Package commit contains code for grouping and summarizing commits.
package commit

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anirbansanu/TaskReportsByGitCommit/model"
)

// CombinedRepoLabel tags merge groups whose commits span more than one
// repository.
const CombinedRepoLabel = "combined"

// MergeByDate collapses commits that share a calendar date into one record
// per date. Within a group, commits sort by (repo label, subject) and their
// subjects render as "subject (label)" lines joined by line breaks. The
// group keeps its single repository label, or "combined" when commits from
// more than one repository contributed. Output is ordered by date.
func MergeByDate(commits []*model.Commit) []*model.MergedDay {
	groups := make(map[time.Time][]*model.Commit)
	for _, c := range commits {
		groups[c.Date] = append(groups[c.Date], c)
	}

	merged := make([]*model.MergedDay, 0, len(groups))
	for date, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Repo != group[j].Repo {
				return group[i].Repo < group[j].Repo
			}
			return group[i].Subject < group[j].Subject
		})

		lines := make([]string, len(group))
		repos := make(map[string]struct{}, 1)
		for i, c := range group {
			lines[i] = fmt.Sprintf("%s (%s)", c.Subject, c.Repo)
			repos[c.Repo] = struct{}{}
		}

		label := group[0].Repo
		if len(repos) > 1 {
			label = CombinedRepoLabel
		}
		merged = append(merged, &model.MergedDay{
			Date:        date,
			Message:     strings.Join(lines, "\n"),
			Repo:        label,
			CommitCount: len(group),
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

// MergeByDatePerRepo runs the date merge once per repository label, so
// same-date commits from different repositories stay apart. Used for
// separate-sheets output.
func MergeByDatePerRepo(commits []*model.Commit) []*model.MergedDay {
	byRepo := make(map[string][]*model.Commit)
	for _, c := range commits {
		byRepo[c.Repo] = append(byRepo[c.Repo], c)
	}

	labels := make([]string, 0, len(byRepo))
	for label := range byRepo {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var merged []*model.MergedDay
	for _, label := range labels {
		merged = append(merged, MergeByDate(byRepo[label])...)
	}
	return merged
}
