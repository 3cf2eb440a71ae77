package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/internal/tracker"
)

// ClearCmd implements the tracker clear command.
type ClearCmd struct {
	flags *Flags

	// flags
	doneOnly bool
	yes      bool
}

// NewClearCmd creates a new clear command.
func NewClearCmd(flags *Flags) *ClearCmd {
	return &ClearCmd{flags: flags}
}

// Register adds the clear command to the application.
func (cmd *ClearCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clear",
		Usage:     "Remove all tasks, or all completed tasks",
		UsageText: "tracker clear [--done] [--yes]",
		Description: `Removes tasks in bulk after a confirmation prompt.

Examples:
  tracker clear          # remove everything
  tracker clear --done   # remove only completed tasks
  tracker clear --yes    # skip the prompt (for scripts)`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "done",
				Usage:       "remove only completed tasks",
				Destination: &cmd.doneOnly,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ClearCmd) run(ctx context.Context, c *cli.Command) error {
	var refs []task.Ref
	for _, t := range cmd.flags.Service.Tasks() {
		if cmd.doneOnly && !t.Done {
			continue
		}
		refs = append(refs, t.Ref)
	}

	if len(refs) == 0 {
		_, _ = fmt.Fprintln(c.Root().Writer, "nothing to remove")
		return nil
	}

	if !cmd.yes {
		var confirm bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Remove %d task(s)?", len(refs))).
			Description("This cannot be undone.").
			Value(&confirm).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !confirm {
			return nil
		}
	}

	cmd.flags.Service.Apply(tracker.RemoveTasks{Refs: refs})

	_, _ = fmt.Fprintf(c.Root().Writer, "removed %d task(s)\n", len(refs))
	return nil
}
