package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitcut/cluster"
	"github.com/katalvlaran/splitcut/config"
	"github.com/katalvlaran/splitcut/dataset"
	"github.com/katalvlaran/splitcut/report"
	"github.com/katalvlaran/splitcut/validate"
)

func newValidateCmd() *cobra.Command {
	var dataDir, resultsDir, configPath string
	var minLOCs int

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Batch-decompose every candidate god file under a data directory and score the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runValidate(ctx, dataDir, resultsDir, configPath, minLOCs)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of subject *.db files (required)")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "output directory; must not already exist (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config overlay (optional)")
	cmd.Flags().IntVar(&minLOCs, "min-locs", 0, "minimum child count for a file to be a candidate")
	cmd.MarkFlagRequired("data-dir")
	cmd.MarkFlagRequired("results-dir")

	return cmd
}

func runValidate(ctx context.Context, dataDir, resultsDir, configPath string, minLOCs int) error {
	if _, err := os.Stat(resultsDir); err == nil {
		return fmt.Errorf("splitcut: results dir %q already exists", resultsDir)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("splitcut: checking results dir: %w", err)
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return fmt.Errorf("splitcut: creating results dir: %w", err)
	}

	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("splitcut: loading config: %w", err)
		}
		opts = loaded
	}

	subjects, err := dataset.FindSubjects(ctx, dataDir, minLOCs)
	if err != nil {
		return fmt.Errorf("splitcut: finding subjects: %w", err)
	}

	summaryPath := filepath.Join(resultsDir, "_summary.csv")
	summaryFile, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("splitcut: creating summary: %w", err)
	}
	defer summaryFile.Close()

	w := csv.NewWriter(summaryFile)
	defer w.Flush()
	if err := w.Write([]string{
		"subject_name", "n_blocks",
		"real_abpa", "null_abpa", "real_abpa_ratio", "null_abpa_ratio",
		"real_abpc", "null_abpc", "real_abpc_ratio", "null_abpc_ratio",
	}); err != nil {
		return fmt.Errorf("splitcut: writing summary header: %w", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i, subj := range subjects {
		slog.Info("validating subject", "index", i, "name", subj.SubjectName)

		dbPath := filepath.Join(dataDir, subj.Project+".db")
		loader, err := dataset.Open(dbPath)
		if err != nil {
			return fmt.Errorf("splitcut: opening %q: %w", dbPath, err)
		}

		ds, err := loader.Load(ctx, subj.Filename)
		if err != nil {
			loader.Close()
			return fmt.Errorf("splitcut: loading %q: %w", subj.Filename, err)
		}

		table := cluster.TableFromDataset(ds)
		driver := cluster.NewDriver(opts, slog.Default())
		if err := driver.Cluster(ctx, table); err != nil {
			loader.Close()
			return fmt.Errorf("splitcut: clustering %q: %w", subj.SubjectName, err)
		}
		loader.Close()

		dsm := report.BuildDSM(subj.SubjectName, ds.Targets, ds.TargetDeps)
		if err := report.WriteDSM(filepath.Join(resultsDir, subj.SubjectName+".dsm.json"), dsm); err != nil {
			return fmt.Errorf("splitcut: writing DSM: %w", err)
		}
		drh := report.BuildDRH(subj.SubjectName+"-drh", ds.Targets, table.BlockName)
		if err := report.WriteDRH(filepath.Join(resultsDir, subj.SubjectName+".drh.json"), drh); err != nil {
			return fmt.Errorf("splitcut: writing DRH: %w", err)
		}

		summary := validate.RunOne(rng, subj.SubjectName, table, ds.Touches)
		if err := w.Write(summaryRow(summary)); err != nil {
			return fmt.Errorf("splitcut: writing summary row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func summaryRow(s validate.Summary) []string {
	ratio := func(r validate.Result) (string, string) {
		if s.NBlocks == 0 {
			return "0", "0"
		}
		return strconv.FormatFloat(r.Real/float64(s.NBlocks), 'f', -1, 64),
			strconv.FormatFloat(r.Null/float64(s.NBlocks), 'f', -1, 64)
	}
	abpaRatio, nullAbpaRatio := ratio(s.ABPA)
	abpcRatio, nullAbpcRatio := ratio(s.ABPC)

	return []string{
		s.SubjectName,
		strconv.Itoa(s.NBlocks),
		strconv.FormatFloat(s.ABPA.Real, 'f', -1, 64),
		strconv.FormatFloat(s.ABPA.Null, 'f', -1, 64),
		abpaRatio, nullAbpaRatio,
		strconv.FormatFloat(s.ABPC.Real, 'f', -1, 64),
		strconv.FormatFloat(s.ABPC.Null, 'f', -1, 64),
		abpcRatio, nullAbpcRatio,
	}
}
