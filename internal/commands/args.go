package commands

import (
	"fmt"
	"strconv"

	"github.com/colonyops/tracker/internal/core/task"
)

// resolveIndexes maps 1-based task numbers (as printed by ls) to refs
// against a single snapshot, so later removals in the same command cannot
// shift what earlier arguments meant.
func resolveIndexes(tasks []task.Task, args []string) ([]task.Ref, error) {
	refs := make([]task.Ref, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid task number %q", arg)
		}
		if n < 1 || n > len(tasks) {
			return nil, fmt.Errorf("no task numbered %d", n)
		}
		refs = append(refs, tasks[n-1].Ref)
	}
	return refs, nil
}
