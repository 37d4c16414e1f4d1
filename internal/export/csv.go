// Package export projects task collections into downloadable text.
package export

import (
	"strings"
	"time"

	"tasktrack/internal/model"
)

// TaskColumns is the default column order for task exports.
var TaskColumns = []string{"Title", "Description", "Due Date", "Status", "Categories", "Created At"}

const shortDate = "1/2/2006"

// TasksCSV renders tasks as CSV: a header row with the columns exactly
// as given, then one double-quote-wrapped field per column per task.
// Field values are not escaped, so embedded quotes or commas pass
// through verbatim.
func TasksCSV(tasks []model.Task, columns []string) string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, strings.Join(columns, ","))

	for _, task := range tasks {
		fields := make([]string, 0, len(columns))
		for _, column := range columns {
			fields = append(fields, `"`+fieldFor(task, column)+`"`)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// Filename is the download name convention: tasks-YYYY-MM-DD.csv.
func Filename(now time.Time) string {
	return "tasks-" + now.Format("2006-01-02") + ".csv"
}

func fieldFor(task model.Task, column string) string {
	switch column {
	case "Title":
		return task.Title
	case "Description":
		if task.Description == "" {
			return "No description"
		}
		return task.Description
	case "Due Date":
		if task.DueDate == nil {
			return "No due date"
		}
		return task.DueDate.Format(shortDate)
	case "Status":
		return string(task.Status)
	case "Categories":
		if len(task.Categories) == 0 {
			return "None"
		}
		names := make([]string, 0, len(task.Categories))
		for _, c := range task.Categories {
			names = append(names, c.Name)
		}
		return strings.Join(names, "; ")
	case "Created At":
		return task.CreatedAt.Format(shortDate)
	default:
		return ""
	}
}
