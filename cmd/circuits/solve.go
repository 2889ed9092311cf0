package main

import (
	"fmt"

	"github.com/mjedwabn/circuits/query"
	"github.com/spf13/cobra"
)

func newSolveCmd(root *rootOptions) *cobra.Command {
	var edges int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Answer both circuit queries from a single distance build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := root.loadPoints(cmd)
			if err != nil {
				return err
			}

			rep, err := query.Solve(points, edges, root.queryOptions()...)
			if err != nil {
				return err
			}
			root.log.Debug("solved", "points", rep.Points, "edges", rep.Edges, "sizes", rep.TopSizes)

			text := fmt.Sprintf("top circuits product: %d\nthreshold product: %d", rep.TopCircuits, rep.Threshold)
			return root.emit(cmd.OutOrStdout(), rep, text)
		},
	}

	cmd.Flags().IntVarP(&edges, "edges", "n", 1000, "Number of shortest connections for the top-circuits query")

	return cmd
}
