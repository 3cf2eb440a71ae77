package task

import "strings"

// List is the authoritative ordered collection of tasks.
//
// It holds state only; it never touches storage or presentation. List is
// not safe for concurrent use — callers serialize access, which in practice
// means the single event loop driving the application.
type List struct {
	tasks   []Task
	nextRef Ref
}

// NewList returns an empty task list.
func NewList() *List {
	return &List{nextRef: 1}
}

// Append adds a new, not-completed task at the end of the list.
//
// Text is trimmed of surrounding whitespace first. Whitespace-only input is
// rejected: the list is left unchanged and ok is false.
func (l *List) Append(text string) (ref Ref, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	return l.push(text, false), true
}

// Restore appends a task verbatim, preserving text and completion state.
// It is used when rehydrating a list from a task file, where even oddball
// lines must survive a round-trip. New tasks go through Append instead.
func (l *List) Restore(text string, done bool) Ref {
	return l.push(text, done)
}

func (l *List) push(text string, done bool) Ref {
	ref := l.nextRef
	l.nextRef++
	l.tasks = append(l.tasks, Task{Ref: ref, Text: text, Done: done})
	return ref
}

// Toggle flips the completion flag of the referenced task.
// A stale ref is a no-op and returns false.
func (l *List) Toggle(ref Ref) bool {
	for i := range l.tasks {
		if l.tasks[i].Ref == ref {
			l.tasks[i].Done = !l.tasks[i].Done
			return true
		}
	}
	return false
}

// Remove deletes every task denoted by refs and returns how many were
// removed. The removal set is computed up front, so duplicate refs remove a
// task exactly once and no ref's meaning shifts mid-call. Stale refs are
// ignored. Remaining tasks keep their original relative order.
func (l *List) Remove(refs ...Ref) int {
	if len(refs) == 0 {
		return 0
	}

	doomed := make(map[Ref]struct{}, len(refs))
	for _, r := range refs {
		doomed[r] = struct{}{}
	}

	kept := l.tasks[:0]
	removed := 0
	for _, t := range l.tasks {
		if _, ok := doomed[t.Ref]; ok {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	return removed
}

// Tasks returns an ordered snapshot of the list. The returned slice is
// independent of the list; later mutations do not affect it.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	return len(l.tasks)
}
