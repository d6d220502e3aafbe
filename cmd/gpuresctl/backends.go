package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gogpu/gpures/backend"
)

func (c *cli) newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := backend.Available()
			if len(names) == 0 {
				return backend.ErrBackendNotAvailable
			}
			slices.Sort(names)

			def := backend.DefaultName()
			t := newTable("BACKEND", "DEFAULT")
			for _, name := range names {
				mark := ""
				if name == def {
					mark = "*"
				}
				t.Row(name, mark)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}
