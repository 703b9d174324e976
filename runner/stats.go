package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anirbansanu/TaskReportsByGitCommit/commit"
	"github.com/anirbansanu/TaskReportsByGitCommit/model"
	"github.com/anirbansanu/TaskReportsByGitCommit/report"
)

// Stats holds per-repository statistics for terminal output.
type Stats struct {
	Commits int
	Repos   map[string]*model.RepoStats
}

func (s *Stats) sortedLabels() []string {
	labels := make([]string, 0, len(s.Repos))
	for label := range s.Repos {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

var titleCaser = cases.Title(language.English)

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d commits\n\n", s.Commits)

	for _, label := range s.sortedLabels() {
		st := s.Repos[label]
		fmt.Fprintf(bw, "%s:\n", label)
		rows := []struct {
			name  string
			value interface{}
		}{
			{"total commits", st.TotalCommits},
			{"date range", fmt.Sprintf("%s to %s",
				st.Earliest.Format(report.DisplayDate), st.Latest.Format(report.DisplayDate))},
			{"days with commits", st.DaysWithCommits},
			{"average commits per day", st.AvgPerDay},
			{"max commits in a day", st.MaxPerDay},
			{"authors", st.Authors},
		}
		for _, row := range rows {
			fmt.Fprintf(bw, "  %-26s\t%v\n", titleCaser.String(row.name), row.value)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats reads every configured repository and derives its statistics,
// without building task rows or writing a workbook.
func (r *Runner) Stats(ctx context.Context) (*Stats, error) {
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
	return &Stats{
		Commits: len(commits),
		Repos:   commit.ComputeStats(commits),
	}, nil
}
