// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"todoapp/internal/service"
)

// FakeService is a minimal in-memory implementation of service.Service that
// records every call, for testing front ends without the real store.
type FakeService struct {
	mu     sync.Mutex
	tasks  []service.Task
	nextID int

	// Calls lists invocations in order, e.g. "Add(buy milk)", "Toggle(3)".
	Calls []string
}

// NewFakeService creates a FakeService holding the given tasks.
func NewFakeService(tasks ...service.Task) *FakeService {
	f := &FakeService{}
	for _, t := range tasks {
		f.tasks = append(f.tasks, t)
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
	}
	return f
}

// AddTask adds a task directly, bypassing call recording.
func (f *FakeService) AddTask(id int, description string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Description: description, IsCompleted: completed})
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

func (f *FakeService) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// Add implements service.Service.
func (f *FakeService) Add(description string) (service.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Add(%s)", description)

	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, false
	}
	t := service.Task{ID: f.nextID, Description: description}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t, true
}

// Toggle implements service.Service.
func (f *FakeService) Toggle(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Toggle(%d)", id)

	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].IsCompleted = !f.tasks[i].IsCompleted
			return true
		}
	}
	return false
}

// Delete implements service.Service.
func (f *FakeService) Delete(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Delete(%d)", id)

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Tasks implements service.Service.
func (f *FakeService) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// ActiveTasks implements service.Service.
func (f *FakeService) ActiveTasks() []service.Task {
	return f.filter(false)
}

// CompletedTasks implements service.Service.
func (f *FakeService) CompletedTasks() []service.Task {
	return f.filter(true)
}

func (f *FakeService) filter(completed bool) []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []service.Task
	for _, t := range f.tasks {
		if t.IsCompleted == completed {
			result = append(result, t)
		}
	}
	return result
}
