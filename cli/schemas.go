package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func (a *app) schemasCmd() *cli.Command {
	return &cli.Command{
		Name:  "schemas",
		Usage: "List registered schemas",
		Action: func(_ context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
			for _, n := range a.reg.Names() {
				fmt.Fprintf(tw, "%s\t%s\n", n, a.reg.Description(n))
			}
			return tw.Flush()
		},
	}
}
