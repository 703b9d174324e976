package gitcli

import (
	"time"
)

// GIT_DATE_SHORT is the date format of git log --date=short
// 2020-08-17
const GIT_DATE_SHORT = "2006-01-02"

func ParseGitShortDate(s string) (time.Time, error) {
	return time.Parse(GIT_DATE_SHORT, s)
}
