package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/anirbansanu/TaskReportsByGitCommit/config"
	"github.com/anirbansanu/TaskReportsByGitCommit/runner"
	"github.com/anirbansanu/TaskReportsByGitCommit/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version string
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pipelineFlags are the flags that select what to report on. When none of
// them (and no positional repo paths) are given, configuration comes from
// the JSON config file instead.
var pipelineFlags = []string{
	"repo", "author", "since", "until", "filename", "separate-sheets",
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var readStats bool
	var cfgFile string
	flags := pflag.NewFlagSet("taskreport", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringArrayVarP(&cfg.Repos, "repo", "r", nil, "repository `path` (repeatable)")
	flags.StringVar(&cfg.Author, "author", "", "only include commits whose author matches `pattern`")
	flags.StringVar(&cfg.Since, "since", "", "inclusive start `date` (YYYY-MM-DD)")
	flags.StringVar(&cfg.Until, "until", "", "inclusive end `date` (YYYY-MM-DD)")
	flags.StringVarP(&cfg.Filename, "filename", "o", "", "write the report to `file`")
	flags.BoolVar(&cfg.SeparateSheets, "separate-sheets", false, "create one task sheet per repository")
	flags.StringVar(&cfg.Assignee, "assignee", cfg.Assignee, "assignee `label` for every task row")
	flags.BoolVarP(&readStats, "stats", "S", false, "print repository stats instead of writing a report")
	flags.BoolVarP(&cfg.Dryrun, "dry-run", "n", false, "run the pipeline without writing the report file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]
	// positional args are repository paths too
	cfg.Repos = append(cfg.Repos, args...)

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	flagged := len(args) > 0
	for _, name := range pipelineFlags {
		if flags.Lookup(name).Changed {
			flagged = true
			break
		}
	}
	if !flagged {
		path := cfgFile
		if path == "" {
			path = config.DefaultFileName
		}
		fileCfg, err := config.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				if werr := config.WriteDefaultFile(path); werr != nil {
					return werr
				}
				cfg.Printf("Created default config file: %s", path)
				cfg.Printf("Please edit the config file and run again.")
				return nil
			}
			return err
		}
		if err := mergo.Merge(&cfg, *fileCfg, mergo.WithOverride); err != nil {
			return err
		}
		cfg.Printf("Loaded configuration from %s", path)
	}
	if cfg.Verbose {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Debugf("config: %s", string(b))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	git := gitcli.New(cfg)
	rnr := runner.New(cfg, git)

	if readStats {
		stats, err := rnr.Stats(ctx)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout)
	}

	res, err := rnr.Run(ctx)
	if err != nil {
		return err
	}
	if res.Filename != "" {
		cfg.Printf("\nTask report generated successfully!")
		cfg.Printf("Tasks created: %d", res.Tasks)
		if cfg.Quiet {
			if isatty.IsTerminal(os.Stdout.Fd()) {
				fmt.Fprintln(cfg.Term.Stdout, res.Filename)
			} else {
				fmt.Fprint(cfg.Term.Stdout, res.Filename)
			}
		} else {
			cfg.Printf("Output file: %s", res.Filename)
		}
	}
	return nil
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [repo...]

Aggregates git commit history into a task-tracking spreadsheet: one task
row per day of commits, plus a per-repository summary sheet.

FLAGS
%s

With no flags, configuration is read from %s in the working directory; a
starter file is created on first run.

EXAMPLES

# report on two repositories for July
$ taskreport -r ~/src/api -r ~/src/web --since 2025-07-01 --until 2025-07-31

# one sheet per repository, custom output file
$ taskreport -r . --separate-sheets -o july.xlsx

# just print per-repository stats
$ taskreport -r . -S
`, os.Args[0], flags.FlagUsages(), config.DefaultFileName)
}
