package main

import (
	"fmt"

	"github.com/mjedwabn/circuits/query"
	"github.com/spf13/cobra"
)

func newTopCmd(root *rootOptions) *cobra.Command {
	var (
		edges int
		topK  int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Product of the largest circuit sizes after the shortest --edges connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if topK < 1 {
				return fmt.Errorf("--k must be ≥ 1, got %d", topK)
			}
			points, err := root.loadPoints(cmd)
			if err != nil {
				return err
			}

			opts := append(root.queryOptions(), query.WithTopK(topK))
			product, err := query.TopCircuitsProduct(points, edges, opts...)
			if err != nil {
				return err
			}
			root.log.Debug("top circuits", "edges", edges, "k", topK, "product", product)

			return root.emit(cmd.OutOrStdout(), map[string]int{"top_circuits_product": product}, fmt.Sprint(product))
		},
	}

	cmd.Flags().IntVarP(&edges, "edges", "n", 1000, "Number of shortest connections to process")
	cmd.Flags().IntVar(&topK, "k", query.DefaultTopK, "Number of largest circuits to multiply")

	return cmd
}
