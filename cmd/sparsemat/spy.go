package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/codec"
	"github.com/katalvlaran/sparsemat/spy"
)

// newSpyCmd builds the spy subcommand: load a matrix and render its
// sparsity pattern as a PNG. The image is always written to the local
// filesystem, even when the matrix itself comes from S3.
func newSpyCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "spy",
		Short: "Render the sparsity pattern of a matrix file as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			st, err := newStore()
			if err != nil {
				return err
			}
			m, err := codec.Load(cmd.Context(), st, inPath)
			if err != nil {
				return err
			}
			if err = spy.SavePNG(m, outPath); err != nil {
				return err
			}
			logger.Info("sparsity pattern rendered",
				zap.String("input", inPath),
				zap.String("output", outPath),
				zap.Int("nnz", m.NNZ()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Pattern saved to %s\n", outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path of the matrix file")
	cmd.Flags().StringVar(&outPath, "out", "spy.png", "output PNG path")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
