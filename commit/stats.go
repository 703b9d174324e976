package commit

import (
	"math"
	"time"

	"github.com/anirbansanu/TaskReportsByGitCommit/model"
)

// ComputeStats derives per-repository statistics over all extracted
// commits. It is independent of the date merge: counts reflect individual
// commits, not merge groups.
func ComputeStats(commits []*model.Commit) map[string]*model.RepoStats {
	stats := make(map[string]*model.RepoStats)
	perDay := make(map[string]map[time.Time]int)
	authors := make(map[string]map[string]struct{})

	for _, c := range commits {
		st, ok := stats[c.Repo]
		if !ok {
			st = &model.RepoStats{Earliest: c.Date, Latest: c.Date}
			stats[c.Repo] = st
			perDay[c.Repo] = make(map[time.Time]int)
			authors[c.Repo] = make(map[string]struct{})
		}

		st.TotalCommits++
		if c.Date.Before(st.Earliest) {
			st.Earliest = c.Date
		}
		if c.Date.After(st.Latest) {
			st.Latest = c.Date
		}
		perDay[c.Repo][c.Date]++
		authors[c.Repo][c.Author] = struct{}{}
	}

	for label, st := range stats {
		days := perDay[label]
		st.DaysWithCommits = len(days)
		for _, n := range days {
			if n > st.MaxPerDay {
				st.MaxPerDay = n
			}
		}
		st.Authors = len(authors[label])

		// The span can't be zero once a commit exists, but the documented
		// formula falls back to the raw total when it is.
		avg := float64(st.TotalCommits)
		if span := st.DaySpan(); span > 0 {
			avg = float64(st.TotalCommits) / float64(span)
		}
		st.AvgPerDay = math.Round(avg*100) / 100
	}
	return stats
}
