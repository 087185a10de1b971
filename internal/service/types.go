// Package service defines the front-end-agnostic contract for task operations.
package service

// Task represents a single task item.
type Task struct {
	ID          int
	Description string
	IsCompleted bool
}

// Status values reported by Task.Status.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Status returns "active" or "completed".
func (t Task) Status() string {
	if t.IsCompleted {
		return StatusCompleted
	}
	return StatusActive
}
