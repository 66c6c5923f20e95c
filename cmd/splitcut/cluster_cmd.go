package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitcut/cluster"
	"github.com/katalvlaran/splitcut/config"
	"github.com/katalvlaran/splitcut/dataset"
	"github.com/katalvlaran/splitcut/report"
)

func newClusterCmd() *cobra.Command {
	var dbPath, fileName, configPath string

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Run one god-file decomposition and write DSM/DRH JSON next to the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runCluster(ctx, dbPath, fileName, configPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the subject's SQLite database (required)")
	cmd.Flags().StringVar(&fileName, "file", "", "name of the god file to decompose (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config overlay (optional)")
	cmd.MarkFlagRequired("db")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runCluster(ctx context.Context, dbPath, fileName, configPath string) error {
	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("splitcut: loading config: %w", err)
		}
		opts = loaded
	}

	loader, err := dataset.Open(dbPath)
	if err != nil {
		return fmt.Errorf("splitcut: opening dataset: %w", err)
	}
	defer loader.Close()

	ds, err := loader.Load(ctx, fileName)
	if err != nil {
		return fmt.Errorf("splitcut: loading %q: %w", fileName, err)
	}

	table := cluster.TableFromDataset(ds)
	driver := cluster.NewDriver(opts, slog.Default())
	if err := driver.Cluster(ctx, table); err != nil {
		return fmt.Errorf("splitcut: clustering %q: %w", fileName, err)
	}

	subjectName := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	outDir := filepath.Dir(dbPath)

	dsm := report.BuildDSM(subjectName, ds.Targets, ds.TargetDeps)
	if err := report.WriteDSM(filepath.Join(outDir, subjectName+".dsm.json"), dsm); err != nil {
		return fmt.Errorf("splitcut: writing DSM: %w", err)
	}

	drh := report.BuildDRH(subjectName+"-drh", ds.Targets, table.BlockName)
	if err := report.WriteDRH(filepath.Join(outDir, subjectName+".drh.json"), drh); err != nil {
		return fmt.Errorf("splitcut: writing DRH: %w", err)
	}

	blocks := make(map[int]struct{}, len(table.BlockID))
	for _, b := range table.BlockID {
		blocks[b] = struct{}{}
	}
	slog.Info("clustering complete",
		"file", fileName,
		"entities", len(table.Entities),
		"blocks", len(blocks))
	return nil
}
