package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/tracker"
)

// RmCmd implements the tracker rm command.
type RmCmd struct {
	flags *Flags
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{flags: flags}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Remove one or more tasks",
		UsageText: "tracker rm <number>...",
		Description: `Removes the numbered tasks from the list and saves it.

All numbers refer to the list as printed by tracker ls; removal is applied
in one step, so "tracker rm 1 2" removes the first two listed tasks.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tracker rm <number>...")
	}

	refs, err := resolveIndexes(cmd.flags.Service.Tasks(), c.Args().Slice())
	if err != nil {
		return err
	}

	before := cmd.flags.Service.Len()
	cmd.flags.Service.Apply(tracker.RemoveTasks{Refs: refs})

	_, _ = fmt.Fprintf(c.Root().Writer, "removed %d task(s)\n", before-cmd.flags.Service.Len())
	return nil
}
