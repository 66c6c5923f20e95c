package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	o := Default()
	if o.UseInitTextClustering != false {
		t.Errorf("UseInitTextClustering default = %v, want false", o.UseInitTextClustering)
	}
	if o.MaxWeight != 24 {
		t.Errorf("MaxWeight default = %d, want 24 (UseTextEdges defaults true)", o.MaxWeight)
	}
	if o.SolverTimeLimit != 30*time.Second {
		t.Errorf("SolverTimeLimit default = %v, want 30s", o.SolverTimeLimit)
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "cut_eps: 0.25\nmax_weight: 40\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.CutEPS != 0.25 {
		t.Errorf("CutEPS = %v, want 0.25", o.CutEPS)
	}
	if o.MaxWeight != 40 {
		t.Errorf("MaxWeight = %d, want 40", o.MaxWeight)
	}
	if o.AllowDupNames != true {
		t.Errorf("AllowDupNames = %v, want true (unchanged default)", o.AllowDupNames)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
