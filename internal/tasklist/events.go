package tasklist

import "todoapp/internal/service"

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventToggled EventKind = "toggled"
	EventDeleted EventKind = "deleted"
)

// Event describes one successful mutation.
// Task is the record after the change; for deletes it is the removed record.
type Event struct {
	Kind EventKind
	Task service.Task
}

type observer struct {
	fn func(Event)
}

// Subscribe registers fn to be called after every successful mutation.
// Observers run synchronously on the mutating goroutine, in subscription
// order, after the store lock has been released, so they may read the store.
// The returned function removes the subscription; calling it more than once
// is harmless.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	o := &observer{fn: fn}

	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, cur := range s.observers {
			if cur == o {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(e Event) {
	s.mu.RLock()
	observers := make([]*observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o.fn(e)
	}
}
