package tasklist

import "todoapp/internal/service"

// SampleTasks returns the tasks a fresh session starts with.
func SampleTasks() []service.Task {
	return []service.Task{
		{ID: 0, Description: "Finish 411A Assignment"},
		{ID: 1, Description: "take out the trash"},
		{ID: 2, Description: "dig for gold", IsCompleted: true},
		{ID: 3, Description: "retire at an early age"},
	}
}
