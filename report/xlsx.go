// Package report renders task rows and repository statistics into a
// formatted xlsx workbook.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/anirbansanu/TaskReportsByGitCommit/model"
)

// DisplayDate is the rendered format for every date cell.
const DisplayDate = "02-01-2006"

const (
	allTasksSheet   = "All_Tasks"
	summarySheet    = "Summary"
	taskSheetPrefix = "Tasks_"

	headerFillColor = "4472C4"
)

var taskColumns = []string{
	"Task Name", "Task Priority", "Assign Date", "Due Date",
	"Planned End Date", "Actual End Date", "Assignee",
}

type styleSet struct {
	header int
	wrap   int
	title  int
	bold   int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var st styleSet
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("report: header style: %w", err)
	}
	st.wrap, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return st, fmt.Errorf("report: wrap style: %w", err)
	}
	st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return st, fmt.Errorf("report: title style: %w", err)
	}
	st.bold, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return st, fmt.Errorf("report: bold style: %w", err)
	}
	return st, nil
}

// BuildWorkbook assembles the workbook in memory: one task sheet (or one
// per repository label in separate mode) followed by the summary sheet.
// Callers own closing the returned file.
func BuildWorkbook(tasks []*model.TaskRow, stats map[string]*model.RepoStats, separate bool) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	styles, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if separate {
		for _, label := range taskLabels(tasks) {
			var repoTasks []*model.TaskRow
			for _, t := range tasks {
				if t.Repo == label {
					repoTasks = append(repoTasks, t)
				}
			}
			if err := addTaskSheet(f, styles, taskSheetPrefix+label, repoTasks); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	} else {
		if err := addTaskSheet(f, styles, allTasksSheet, tasks); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if err := addSummarySheet(f, styles, stats); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("report: drop default sheet: %w", err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteFile builds the workbook and saves it to path in one shot. Nothing
// is written when any stage fails.
func WriteFile(path string, tasks []*model.TaskRow, stats map[string]*model.RepoStats, separate bool) error {
	f, err := BuildWorkbook(tasks, stats, separate)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

func taskLabels(tasks []*model.TaskRow) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, t := range tasks {
		if _, ok := seen[t.Repo]; !ok {
			seen[t.Repo] = struct{}{}
			labels = append(labels, t.Repo)
		}
	}
	sort.Strings(labels)
	return labels
}

func addTaskSheet(f *excelize.File, st styleSet, name string, tasks []*model.TaskRow) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("report: new sheet %s: %w", name, err)
	}

	widths := make([]int, len(taskColumns))
	for i, header := range taskColumns {
		widths[i] = len(header)
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, st.header); err != nil {
			return err
		}
	}

	for r, task := range tasks {
		row := r + 2
		values := []string{
			task.Name,
			task.Priority,
			task.AssignDate.Format(DisplayDate),
			task.DueDate,
			task.PlannedEnd.Format(DisplayDate),
			task.ActualEnd.Format(DisplayDate),
			task.Assignee,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("report: write %s!%s: %w", name, cell, err)
			}
			if n := longestLine(v); n > widths[i] {
				widths[i] = n
			}
		}

		// Task names keep their line breaks visible: wrap the cell and
		// size the row to fit every line.
		nameCell := fmt.Sprintf("A%d", row)
		if err := f.SetCellStyle(name, nameCell, nameCell, st.wrap); err != nil {
			return err
		}
		if strings.Contains(task.Name, "\n") {
			lines := strings.Count(task.Name, "\n") + 1
			height := float64(lines * 15)
			if height < 30 {
				height = 30
			}
			if err := f.SetRowHeight(name, row, height); err != nil {
				return err
			}
		}
	}

	for i, w := range widths {
		width := float64(w + 2)
		if width > 50 {
			width = 50
		}
		if i == 0 {
			width = float64(w + 5)
			if width > 80 {
				width = 80
			}
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return fmt.Errorf("report: set width for %s: %w", col, err)
		}
	}
	return nil
}

func addSummarySheet(f *excelize.File, st styleSet, stats map[string]*model.RepoStats) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("report: new sheet %s: %w", summarySheet, err)
	}

	title := "Repository Analysis Summary"
	if err := f.SetCellValue(summarySheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", st.title); err != nil {
		return err
	}

	labels := make([]string, 0, len(stats))
	for label := range stats {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	widths := []int{len(title), 0, 0}
	row := 3
	for _, label := range labels {
		repoCell := fmt.Sprintf("A%d", row)
		repoLine := fmt.Sprintf("Repository: %s", label)
		if err := f.SetCellValue(summarySheet, repoCell, repoLine); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, repoCell, repoCell, st.bold); err != nil {
			return err
		}
		if len(repoLine) > widths[0] {
			widths[0] = len(repoLine)
		}
		row++

		for _, pair := range statPairs(stats[label]) {
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), pair.name); err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), pair.value); err != nil {
				return err
			}
			if len(pair.name) > widths[1] {
				widths[1] = len(pair.name)
			}
			if n := len(fmt.Sprint(pair.value)); n > widths[2] {
				widths[2] = n
			}
			row++
		}
		row++ // blank separator between repositories
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(summarySheet, col, col, float64(w+2)); err != nil {
			return err
		}
	}
	return nil
}

type statPair struct {
	name  string
	value interface{}
}

func statPairs(st *model.RepoStats) []statPair {
	dateRange := fmt.Sprintf("%s to %s",
		st.Earliest.Format(DisplayDate), st.Latest.Format(DisplayDate))
	return []statPair{
		{"Total Commits", st.TotalCommits},
		{"Date Range", dateRange},
		{"Days with Commits", st.DaysWithCommits},
		{"Average Commits per Day", st.AvgPerDay},
		{"Max Commits in a Day", st.MaxPerDay},
		{"Authors", st.Authors},
	}
}

func longestLine(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if len(line) > max {
			max = len(line)
		}
	}
	return max
}
