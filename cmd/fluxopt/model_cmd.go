package main

import (
	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/gofba/fba"
)

// newModelCmd builds a "fluxopt model" command.
func newModelCmd(root *rootCmd) *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Print the linear program in CPLEX LP format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := fba.Default()
			return p.Model().WriteLP(root.out, p.Names())
		},
	}
}
