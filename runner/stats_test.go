package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/anirbansanu/TaskReportsByGitCommit/config"
	"github.com/anirbansanu/TaskReportsByGitCommit/model"
	"github.com/anirbansanu/TaskReportsByGitCommit/vcs"
)

func TestStats(t *testing.T) {
	io := &testIO{}
	cfg := testConfig(&config.Config{Repos: []string{"repos/A", "repos/B"}}, io)

	mock := vcs.NewMock().
		SetCommits("repos/A",
			&model.Commit{Hash: "a1", Author: "alice", Date: day(2025, 7, 1), Subject: "one"},
			&model.Commit{Hash: "a2", Author: "bob", Date: day(2025, 7, 1), Subject: "two"},
			&model.Commit{Hash: "a3", Author: "alice", Date: day(2025, 7, 5), Subject: "three"}).
		SetCommits("repos/B",
			&model.Commit{Hash: "b1", Author: "carol", Date: day(2025, 7, 2), Subject: "four"})

	stats, err := New(cfg, mock).Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Commits != 4 {
		t.Errorf("expected 4 commits, got %d", stats.Commits)
	}
	if len(stats.Repos) != 2 {
		t.Errorf("expected stats for 2 repos, got %d", len(stats.Repos))
	}

	b := &bytes.Buffer{}
	if err := stats.TextSummary(b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("stats output:\n%s", out)

	if !strings.HasPrefix(out, "4 commits\n") {
		t.Errorf("expected commit total first, got:\n%s", out)
	}
	for _, expect := range []string{
		"A:", "B:", "Total Commits", "Date Range",
		"01-07-2025 to 05-07-2025", "Average Commits Per Day", "0.6",
	} {
		if !strings.Contains(out, expect) {
			t.Errorf("expected summary to contain %q, got:\n%s", expect, out)
		}
	}

	// repositories print in sorted label order
	if strings.Index(out, "A:") > strings.Index(out, "B:") {
		t.Error("expected repo A before repo B")
	}
}
