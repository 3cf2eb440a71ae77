// Package tracker wires the task list to its persistence, applying user
// intents one at a time with write-through saves.
package tracker

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/internal/core/taskfile"
)

// Service owns the in-memory task list and the task file path.
//
// Persistence is best-effort: a failed save is logged and remembered, but
// the triggering mutation stands in memory and the user action never fails.
// Service is single-threaded by contract; both the TUI and the CLI drive it
// from one goroutine.
type Service struct {
	list *task.List
	path string
	log  zerolog.Logger

	lastSaveErr error
}

// NewService loads the task file at path into a fresh list. A missing file
// starts an empty list.
func NewService(path string, logger zerolog.Logger) (*Service, error) {
	records, err := taskfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load task file: %w", err)
	}

	list := task.NewList()
	for _, rec := range records {
		list.Restore(rec.Text, rec.Done)
	}

	logger = logger.With().Str("component", "tracker").Logger()
	logger.Debug().Str("path", path).Int("tasks", list.Len()).Msg("task file loaded")

	return &Service{list: list, path: path, log: logger}, nil
}

// Apply handles a single intent: mutate the list, then write the whole list
// through to disk. Empty input and stale refs are silent no-ops and skip
// the save, since nothing changed.
func (s *Service) Apply(in Intent) {
	switch in := in.(type) {
	case AddTask:
		if _, ok := s.list.Append(in.Text); !ok {
			s.log.Debug().Msg("ignoring empty task text")
			return
		}
	case ToggleTask:
		if !s.list.Toggle(in.Ref) {
			s.log.Debug().Uint64("ref", uint64(in.Ref)).Msg("ignoring toggle of removed task")
			return
		}
	case RemoveTasks:
		if s.list.Remove(in.Refs...) == 0 {
			return
		}
	case Shutdown:
		// Nothing to mutate; fall through to the final save.
	}

	s.save()
}

// Tasks returns an ordered snapshot of the current list.
func (s *Service) Tasks() []task.Task {
	return s.list.Tasks()
}

// Len returns the number of tasks.
func (s *Service) Len() int {
	return s.list.Len()
}

// Path returns the task file path.
func (s *Service) Path() string {
	return s.path
}

// LastSaveErr reports the error from the most recent save attempt, or nil.
// The UI may surface it passively; it never fails an action.
func (s *Service) LastSaveErr() error {
	return s.lastSaveErr
}

func (s *Service) save() {
	s.lastSaveErr = taskfile.Save(s.path, s.list.Tasks())
	if s.lastSaveErr != nil {
		s.log.Warn().Err(s.lastSaveErr).Str("path", s.path).Msg("could not save task file")
	}
}
