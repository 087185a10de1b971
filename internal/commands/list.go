package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoapp/internal/config"
	"todoapp/internal/exitcode"
	"todoapp/internal/output"
	"todoapp/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	activeOnly    bool
	completedOnly bool
}

// SetFilter selects which sections are printed (for testing).
func (c *ListCmd) SetFilter(activeOnly, completedOnly bool) {
	c.activeOnly = activeOnly
	c.completedOnly = completedOnly
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "list [--active | --completed]" }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.activeOnly, "active", false, "")
	fs.BoolVar(&c.completedOnly, "completed", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.activeOnly && c.completedOnly {
		fmt.Fprintln(errOut, "error: cannot use both --active and --completed")
		return exitcode.UserError
	}

	switch {
	case c.activeOnly:
		output.FormatSection(out, output.ActiveHeader, output.NoActiveTasks, svc.ActiveTasks())
	case c.completedOnly:
		output.FormatSection(out, output.CompletedHeader, output.NoCompletedTasks, svc.CompletedTasks())
	default:
		output.FormatTaskList(out, svc)
	}
	return exitcode.Success
}
