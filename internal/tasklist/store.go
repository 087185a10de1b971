// Package tasklist implements the in-memory task list: an ordered sequence
// of tasks, a store-owned id counter, and change notifications.
package tasklist

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"todoapp/internal/service"
)

// FirstID is the id issued first by a store created without seed tasks.
const FirstID = 0

// Store holds the tasks for one session.
// It implements service.Service.
type Store struct {
	mu        sync.RWMutex
	tasks     []service.Task
	nextID    int
	observers []*observer
	logger    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

var _ service.Service = (*Store)(nil)

// New creates a store holding a copy of seed.
// Seed ids must be unique; the counter starts one past the highest of them,
// or at FirstID when seed is empty.
func New(seed []service.Task, opts ...Option) *Store {
	s := &Store{
		tasks:  make([]service.Task, len(seed)),
		nextID: FirstID,
		logger: zap.NewNop(),
	}
	copy(s.tasks, seed)
	for _, t := range seed {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new incomplete task and returns it.
// Blank descriptions are ignored: nothing is appended, no id is consumed,
// and ok is false.
func (s *Store) Add(description string) (task service.Task, ok bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		s.logger.Debug("ignored blank task description")
		return service.Task{}, false
	}

	s.mu.Lock()
	task = service.Task{ID: s.nextID, Description: description}
	s.nextID++
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.logger.Debug("task added", zap.Int("id", task.ID))
	s.notify(Event{Kind: EventAdded, Task: task})
	return task, true
}

// Toggle flips the completion flag of the task with the given id.
// The task keeps its position. Unknown ids are a no-op.
func (s *Store) Toggle(id int) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("toggle of unknown task", zap.Int("id", id))
		return false
	}
	s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
	task := s.tasks[i]
	s.mu.Unlock()

	s.logger.Debug("task toggled", zap.Int("id", id), zap.Bool("completed", task.IsCompleted))
	s.notify(Event{Kind: EventToggled, Task: task})
	return true
}

// Delete removes every task with the given id, keeping the order of the
// rest. Reports whether anything was removed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	var removed []service.Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID == id {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	// Zero the tail so the backing array holds no stale records.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = service.Task{}
	}
	s.tasks = kept
	s.mu.Unlock()

	if len(removed) == 0 {
		s.logger.Debug("delete of unknown task", zap.Int("id", id))
		return false
	}
	s.logger.Debug("task deleted", zap.Int("id", id))
	for _, t := range removed {
		s.notify(Event{Kind: EventDeleted, Task: t})
	}
	return true
}

// Tasks returns a copy of every task in store order.
func (s *Store) Tasks() []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// ActiveTasks returns the incomplete tasks in store order.
func (s *Store) ActiveTasks() []service.Task {
	return s.filter(false)
}

// CompletedTasks returns the completed tasks in store order.
func (s *Store) CompletedTasks() []service.Task {
	return s.filter(true)
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (service.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return service.Task{}, false
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// NextID returns the id the next successful Add will assign.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

func (s *Store) filter(completed bool) []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]service.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.IsCompleted == completed {
			result = append(result, t)
		}
	}
	return result
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
