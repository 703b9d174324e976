// Package taskreport aggregates git commit history from one or more
// repositories into a task-tracking xlsx spreadsheet.
//
// Related packages: config, commit, report, runner, model, vcs, vcs/gitcli
package taskreport

import "github.com/anirbansanu/TaskReportsByGitCommit/config"

// Config holds the configuration variables for taskreport. This struct is
// intended for command-line use, so not all of its attributes are
// applicable to every operation.
//
// See "go doc github.com/anirbansanu/TaskReportsByGitCommit/config Config"
// for more information.
type Config = config.Config
