package report

import (
	"fmt"
	"time"
)

const filenameDate = "20060102"

// Filename picks the output path: the explicit override when set, a
// range-derived name when both date filters are in effect, and a
// today-stamped name otherwise.
func Filename(override string, since, until, now time.Time) string {
	if override != "" {
		return override
	}
	if !since.IsZero() && !until.IsZero() {
		return fmt.Sprintf("task_report_%s_to_%s.xlsx",
			since.Format(filenameDate), until.Format(filenameDate))
	}
	return fmt.Sprintf("task_report_%s.xlsx", now.Format(filenameDate))
}
