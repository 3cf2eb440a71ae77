package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/tracker"
)

// DoneCmd implements the tracker done command.
type DoneCmd struct {
	flags *Flags
}

// NewDoneCmd creates a new done command.
func NewDoneCmd(flags *Flags) *DoneCmd {
	return &DoneCmd{flags: flags}
}

// Register adds the done command to the application.
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Aliases:   []string{"toggle"},
		Usage:     "Toggle completion of one or more tasks",
		UsageText: "tracker done <number>...",
		Description: `Flips the completion flag of the numbered tasks.

Numbers are the ones printed by tracker ls. Toggling a completed task marks
it open again.

Examples:
  tracker done 2
  tracker done 1 3`,
		Action: cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tracker done <number>...")
	}

	// Resolve all numbers against one snapshot before dispatching anything.
	refs, err := resolveIndexes(cmd.flags.Service.Tasks(), c.Args().Slice())
	if err != nil {
		return err
	}

	for _, ref := range refs {
		cmd.flags.Service.Apply(tracker.ToggleTask{Ref: ref})
	}

	return nil
}
