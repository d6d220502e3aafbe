package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/gpures"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gpuresctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gpuresctl", gpures.Version)
		},
	}
}
