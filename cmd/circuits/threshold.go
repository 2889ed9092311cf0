package main

import (
	"fmt"

	"github.com/mjedwabn/circuits/query"
	"github.com/spf13/cobra"
)

func newThresholdCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "threshold",
		Short: "X-coordinate product of the connection that joins everything into one circuit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := root.loadPoints(cmd)
			if err != nil {
				return err
			}

			e, ok, err := query.ThresholdEdge(points, root.queryOptions()...)
			if err != nil {
				return err
			}
			product := 1
			if ok {
				product = e.A.X * e.B.X
				root.log.Debug("threshold edge", "a", e.A, "b", e.B, "weight", e.Weight)
			}

			out := struct {
				Product int `json:"threshold_product"`
				Edge    any `json:"threshold_edge,omitempty"`
			}{Product: product}
			if ok {
				out.Edge = e
			}

			return root.emit(cmd.OutOrStdout(), out, fmt.Sprint(product))
		},
	}
}
