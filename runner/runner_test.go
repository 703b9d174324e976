package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anirbansanu/TaskReportsByGitCommit/config"
	"github.com/anirbansanu/TaskReportsByGitCommit/model"
	"github.com/anirbansanu/TaskReportsByGitCommit/vcs"
)

type testIO struct {
	out bytes.Buffer
	err bytes.Buffer
}

func testConfig(overrides *config.Config, io *testIO) config.Config {
	return config.NewWithTerminalIO(overrides, &config.TerminalIO{
		Stdout: &io.out,
		Stderr: &io.err,
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRunWritesReport(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.xlsx")
	io := &testIO{}
	cfg := testConfig(&config.Config{
		Repos:    []string{"repos/A", "repos/B"},
		Filename: filename,
	}, io)

	mock := vcs.NewMock().
		SetCommits("repos/A", &model.Commit{Hash: "a1", Author: "alice", Date: day(2025, 7, 10), Subject: "Fix bug"}).
		SetCommits("repos/B", &model.Commit{Hash: "b1", Author: "bob", Date: day(2025, 7, 10), Subject: "Add feature"})

	res, err := New(cfg, mock).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Filename != filename {
		t.Errorf("expected filename %q, got %q", filename, res.Filename)
	}
	if res.Commits != 2 {
		t.Errorf("expected 2 commits, got %d", res.Commits)
	}
	if res.Tasks != 1 {
		t.Errorf("expected 1 merged task, got %d", res.Tasks)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("expected report file to exist: %v", err)
	}
	if !strings.Contains(io.out.String(), "Total commits found: 2") {
		t.Errorf("expected total in output, got:\n%s", io.out.String())
	}
}

func TestRunNoValidRepos(t *testing.T) {
	dir := t.TempDir()
	io := &testIO{}
	cfg := testConfig(&config.Config{
		Repos:    []string{"repos/A", "repos/B"},
		Filename: filepath.Join(dir, "out.xlsx"),
	}, io)

	mock := vcs.NewMock().
		SetInvalid("repos/A", nil).
		SetInvalid("repos/B", nil)

	if _, err := New(cfg, mock).Run(context.Background()); err == nil {
		t.Fatal("expected an error when no repositories validate")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no output file, found %d entries", len(entries))
	}
	if !strings.Contains(io.err.String(), "Skipping repository") {
		t.Errorf("expected skip diagnostics, got:\n%s", io.err.String())
	}
}

func TestRunNoCommits(t *testing.T) {
	io := &testIO{}
	cfg := testConfig(&config.Config{Repos: []string{"repos/A"}}, io)
	mock := vcs.NewMock().SetCommits("repos/A")

	res, err := New(cfg, mock).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Filename != "" {
		t.Errorf("expected no file, got %q", res.Filename)
	}
	if !strings.Contains(io.out.String(), "No commits found matching the criteria.") {
		t.Errorf("expected no-commits notice, got:\n%s", io.out.String())
	}
}

func TestRunSkipsFailingRepo(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.xlsx")
	io := &testIO{}
	cfg := testConfig(&config.Config{
		Repos:    []string{"repos/A", "repos/B"},
		Filename: filename,
	}, io)

	mock := vcs.NewMock().
		SetCommits("repos/A", &model.Commit{Hash: "a1", Author: "alice", Date: day(2025, 7, 10), Subject: "Fix bug"}).
		SetReadError("repos/B", errors.New("exec: git failed"))

	res, err := New(cfg, mock).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Commits != 1 {
		t.Errorf("expected 1 commit from the surviving repo, got %d", res.Commits)
	}
	if !strings.Contains(io.err.String(), "Error reading commits in repos/B") {
		t.Errorf("expected read-error diagnostic, got:\n%s", io.err.String())
	}
}

func TestRunAuthorAndDateFilters(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.xlsx")
	io := &testIO{}
	cfg := testConfig(&config.Config{
		Repos:    []string{"repos/A"},
		Author:   "alice",
		Since:    "2025-07-01",
		Until:    "2025-07-31",
		Filename: filename,
	}, io)

	mock := vcs.NewMock().SetCommits("repos/A",
		&model.Commit{Hash: "a1", Author: "alice", Date: day(2025, 7, 10), Subject: "in range"},
		&model.Commit{Hash: "a2", Author: "bob", Date: day(2025, 7, 11), Subject: "wrong author"},
		&model.Commit{Hash: "a3", Author: "alice", Date: day(2025, 8, 2), Subject: "out of range"},
	)

	res, err := New(cfg, mock).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Commits != 1 {
		t.Errorf("expected 1 matching commit, got %d", res.Commits)
	}
}

func TestRunDryrun(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.xlsx")
	io := &testIO{}
	cfg := testConfig(&config.Config{
		Repos:    []string{"repos/A"},
		Filename: filename,
		Dryrun:   true,
	}, io)

	mock := vcs.NewMock().SetCommits("repos/A",
		&model.Commit{Hash: "a1", Author: "alice", Date: day(2025, 7, 10), Subject: "Fix bug"})

	res, err := New(cfg, mock).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Filename != "" {
		t.Errorf("expected no file on dryrun, got %q", res.Filename)
	}
	if _, err := os.Stat(filename); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected report file to be absent, got %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	io := &testIO{}
	cfg := testConfig(&config.Config{Repos: []string{"repos/A"}}, io)
	mock := vcs.NewMock().SetCommits("repos/A",
		&model.Commit{Hash: "a1", Author: "alice", Date: day(2025, 7, 10), Subject: "Fix bug"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(cfg, mock).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunBadDate(t *testing.T) {
	io := &testIO{}
	cfg := testConfig(&config.Config{Repos: []string{"repos/A"}, Since: "07/01/2025"}, io)
	mock := vcs.NewMock().SetCommits("repos/A")

	if _, err := New(cfg, mock).Run(context.Background()); err == nil {
		t.Fatal("expected an error for a malformed since date")
	}
}
