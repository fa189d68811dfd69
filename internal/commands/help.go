package commands

import (
	"context"
	"fmt"

	"alpacacli/internal/cli"
)

// helpHandler closes over the registry so help can enumerate every
// registered command. Help is also the fallback for unrecognized command
// names, in which case it prints the full list.
func (a *App) helpHandler(reg *cli.Registry) cli.HandlerFunc {
	return func(_ context.Context, inv *cli.Invocation) error {
		if len(inv.Positional) == 0 {
			fmt.Fprintf(a.Out, "usage: alpaca <command> [options]\n\nCommands:\n")
			for _, spec := range reg.Specs() {
				fmt.Fprintf(a.Out, "  %-10s %s\n", spec.Name, spec.Description)
			}
			return nil
		}

		topic := inv.Positional[0]
		spec := reg.Get(topic)
		if spec == nil {
			return fmt.Errorf("%q is not a recognized command; run \"alpaca help\" for the command list", topic)
		}
		fmt.Fprintf(a.Out, "usage: %s\n\n%s\n", spec.Usage, spec.Description)
		return nil
	}
}
