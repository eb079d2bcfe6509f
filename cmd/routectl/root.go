package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "routectl",
		Short:         "Inspect the bicycle cost model and run routes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCostCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newPublishCmd())
	return root
}
