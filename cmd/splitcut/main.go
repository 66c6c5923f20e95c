// Command splitcut decomposes a single source file into a hierarchical
// block structure by clustering its internal code entities.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "splitcut",
		Short: "Cluster a god file into a hierarchical block structure",
	}

	root.AddCommand(newClusterCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSubjectsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "splitcut: %v\n", err)
		os.Exit(1)
	}
}
