package tracker

import "github.com/colonyops/tracker/internal/core/task"

// Intent is a discrete user action crossing from presentation into the
// controller. Intents are applied strictly one at a time, each completing
// (including its persistence write) before the next is handled.
type Intent interface {
	intent()
}

// AddTask appends a new task with the given text.
type AddTask struct {
	Text string
}

// ToggleTask flips the completion flag of the referenced task.
type ToggleTask struct {
	Ref task.Ref
}

// RemoveTasks removes every referenced task. Duplicates are tolerated.
type RemoveTasks struct {
	Refs []task.Ref
}

// Shutdown persists the final state before the application exits.
type Shutdown struct{}

func (AddTask) intent()     {}
func (ToggleTask) intent()  {}
func (RemoveTasks) intent() {}
func (Shutdown) intent()    {}
