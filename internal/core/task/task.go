// Package task defines the task domain model and the in-memory task list.
package task

// Ref is a stable handle to a task within a List.
//
// Refs are assigned monotonically and never reused, so a Ref held by a
// renderer stays meaningful across redraws: it either still denotes the
// same task or denotes nothing at all once the task is removed.
type Ref uint64

// Task is a single to-do item.
type Task struct {
	Ref  Ref    `json:"ref"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
