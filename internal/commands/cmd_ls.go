package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/pkg/iojson"
)

// LsCmd implements the tracker ls command.
type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	onlyDone   bool
	onlyOpen   bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "tracker ls [--done|--open] [--json]",
		Description: `Displays the task list with the numbers used by done and rm.

Use --json for machine-readable output as JSON lines.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "done",
				Usage:       "show only completed tasks",
				Destination: &cmd.onlyDone,
			},
			&cli.BoolFlag{
				Name:        "open",
				Usage:       "show only tasks not yet completed",
				Destination: &cmd.onlyOpen,
			},
		},
		Action: cmd.run,
	})

	return app
}

// lsRow is the JSON-lines shape of a single task.
type lsRow struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Done  bool   `json:"done"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.onlyDone && cmd.onlyOpen {
		return fmt.Errorf("--done and --open are mutually exclusive")
	}

	tasks := cmd.flags.Service.Tasks()
	rows := make([]lsRow, 0, len(tasks))
	for i, t := range tasks {
		if cmd.onlyDone && !t.Done || cmd.onlyOpen && t.Done {
			continue
		}
		rows = append(rows, lsRow{Index: i + 1, Text: t.Text, Done: t.Done})
	}

	if cmd.jsonOutput {
		for _, row := range rows {
			if err := iojson.WriteLine(c.Root().Writer, row); err != nil {
				return err
			}
		}
		return nil
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(c.Root().Writer, "no tasks")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", row.Index, checkbox(row.Done), row.Text)
	}
	return w.Flush()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
