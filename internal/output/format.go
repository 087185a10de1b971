// Package output provides plain-text formatters for task sections.
package output

import (
	"fmt"
	"io"
	"strings"

	"todoapp/internal/service"
)

const (
	// ActiveHeader titles the section of incomplete tasks.
	ActiveHeader = "Active Tasks"

	// CompletedHeader titles the section of completed tasks.
	CompletedHeader = "Completed Tasks"

	// NoActiveTasks is shown when no task is incomplete.
	NoActiveTasks = "No active tasks"

	// NoCompletedTasks is shown when no task is completed.
	NoCompletedTasks = "No tasks completed"
)

// FormatTask formats a task row.
// Format: "{ID:>4}  [ ] {DESCRIPTION}\n", with "[x]" for completed tasks.
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", task.ID, Checkbox(task.IsCompleted), NormalizeDescription(task.Description))
}

// FormatSection writes a header followed by the tasks, or the placeholder
// when tasks is empty.
func FormatSection(w io.Writer, header, placeholder string, tasks []service.Task) {
	fmt.Fprintln(w, header)
	if len(tasks) == 0 {
		fmt.Fprintf(w, "      %s\n", placeholder)
		return
	}
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatTaskList writes the active section, a blank line, then the completed section.
func FormatTaskList(w io.Writer, svc service.Service) {
	FormatSection(w, ActiveHeader, NoActiveTasks, svc.ActiveTasks())
	fmt.Fprintln(w)
	FormatSection(w, CompletedHeader, NoCompletedTasks, svc.CompletedTasks())
}

// Checkbox returns the row marker for the completion flag.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// NormalizeDescription folds newlines into spaces for single-line display.
func NormalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r\n", " ")
	description = strings.ReplaceAll(description, "\r", " ")
	return strings.ReplaceAll(description, "\n", " ")
}
