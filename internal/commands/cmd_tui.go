package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/tui"
)

// TuiCmd implements the interactive task list. It is also the default
// action when tracker runs with no subcommand.
type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive task list",
		UsageText: "tracker tui",
		Action:    cmd.Run,
	})

	return app
}

// Run starts the TUI. Exposed so main can use it as the default action.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return tui.Run(ctx, cmd.flags.Service, cmd.flags.Config.Accent)
}
