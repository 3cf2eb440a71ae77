package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/tracker"
)

// AddCmd implements the tracker add command.
type AddCmd struct {
	flags *Flags
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "tracker add <text>...",
		Description: `Appends a task to the list and saves it.

Arguments are joined with spaces, so quoting is optional:

  tracker add Buy milk
  tracker add "Write the quarterly report"`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: tracker add <text>")
	}

	text := strings.Join(c.Args().Slice(), " ")

	before := cmd.flags.Service.Len()
	cmd.flags.Service.Apply(tracker.AddTask{Text: text})

	// Whitespace-only input is silently ignored, matching the UI behavior.
	if cmd.flags.Service.Len() > before {
		_, _ = fmt.Fprintf(c.Root().Writer, "added %d: %s\n", cmd.flags.Service.Len(), strings.TrimSpace(text))
	}
	return nil
}
