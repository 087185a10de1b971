// Package service defines the front-end-agnostic contract for task operations.
package service

// Service defines the interface front ends use to read and mutate tasks.
// Commands and views never reach into the store implementation directly.
//
// Every operation is total: lookups of unknown ids and blank descriptions
// are reported through the boolean result, never as errors.
type Service interface {
	// Add appends a new incomplete task with the trimmed description.
	// Returns false and changes nothing if the description is blank.
	Add(description string) (Task, bool)

	// Toggle flips the completion flag of the task with the given id.
	// Returns false if no such task exists.
	Toggle(id int) bool

	// Delete removes the task with the given id.
	// Returns false if no such task exists.
	Delete(id int) bool

	// Tasks returns every task in store order.
	Tasks() []Task

	// ActiveTasks returns the incomplete tasks in store order.
	ActiveTasks() []Task

	// CompletedTasks returns the completed tasks in store order.
	CompletedTasks() []Task
}
