package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitcut/dataset"
)

func newSubjectsCmd() *cobra.Command {
	var dataDir string
	var minLOCs int

	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List candidate god files across every database in a data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			subjects, err := dataset.FindSubjects(ctx, dataDir, minLOCs)
			if err != nil {
				return fmt.Errorf("splitcut: finding subjects: %w", err)
			}
			for _, s := range subjects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", s.SubjectName, s.Project, s.Filename, s.NChildren)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of subject *.db files (required)")
	cmd.Flags().IntVar(&minLOCs, "min-locs", 0, "minimum child count for a file to be a candidate")
	cmd.MarkFlagRequired("data-dir")

	return cmd
}
