package commit

import (
	"sort"

	"github.com/anirbansanu/TaskReportsByGitCommit/model"
)

// BuildTaskRows maps each merged day to one task row. The assign and
// planned-end dates are both exactly one day before the group's date; the
// actual end is the date itself. Priority and due date stay blank, and the
// assignee is a fixed configured label rather than anything derived from
// commit data. Rows come back sorted ascending by actual end date; the
// sort is stable so same-date rows keep input order.
func BuildTaskRows(merged []*model.MergedDay, assignee string) []*model.TaskRow {
	rows := make([]*model.TaskRow, 0, len(merged))
	for _, m := range merged {
		assignDate := m.Date.AddDate(0, 0, -1)
		rows = append(rows, &model.TaskRow{
			Name:        m.Message,
			Priority:    "",
			AssignDate:  assignDate,
			DueDate:     "",
			PlannedEnd:  assignDate,
			ActualEnd:   m.Date,
			Assignee:    assignee,
			Repo:        m.Repo,
			CommitCount: m.CommitCount,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ActualEnd.Before(rows[j].ActualEnd)
	})
	return rows
}
