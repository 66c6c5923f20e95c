// Package config defines the tunable options for one clustering run and
// loads them from YAML, in the teacher repository's functional-options
// style: a zero-cost Default() plus an explicit Load(path) that
// overlays a YAML document on top of the defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds every tunable named in this module's external
// interface table. Field names mirror the source project's constants
// (USE_INIT_TEXT_CLX, CUT_EPS, ...); yaml tags use the same names
// lowercased so a config file can be copy-edited directly from that
// table.
type Options struct {
	// UseInitTextClustering seeds name_id via DBSCAN over 1-similarity
	// instead of grouping by exact normalized name.
	UseInitTextClustering bool `yaml:"use_init_text_clx"`
	TextEPS               float64 `yaml:"text_eps"`
	TextMinPts            int     `yaml:"text_min_pts"`

	// UseTextEdges includes similarity edges in the partition objective.
	UseTextEdges       bool    `yaml:"use_text_edges"`
	TextEdgeMinSim     float64 `yaml:"text_edge_min_sim"`
	TextEdgeMultiplier int     `yaml:"text_edge_multiplier"`

	AllowDupNames bool `yaml:"allow_dup_names"`
	UnitEdgeWeight int `yaml:"unit_edge_weight"`

	// UseAll passes the full edge set to each bisection call, zeroing
	// the weight of inactive nodes, instead of restricting to the
	// active subset's induced edges.
	UseAll bool    `yaml:"use_all"`
	CutEPS float64 `yaml:"cut_eps"`

	// MaxWeight is the recursion termination threshold. The source
	// project used 24 when similarity edges were in play and 16
	// otherwise; Default() resolves this from UseTextEdges, and Load
	// does the same when the document leaves max_weight unset or zero.
	MaxWeight int `yaml:"max_weight"`

	SolverTimeLimit time.Duration `yaml:"solver_time_limit"`
}

// Default returns the source pipeline's defaults, as documented in
// this module's external interface table.
func Default() Options {
	o := Options{
		UseInitTextClustering: false,
		TextEPS:               0.30,
		TextMinPts:            3,
		UseTextEdges:          true,
		TextEdgeMinSim:        0.35,
		TextEdgeMultiplier:    8,
		AllowDupNames:         true,
		UnitEdgeWeight:        512,
		UseAll:                true,
		CutEPS:                0.5,
		SolverTimeLimit:       30 * time.Second,
	}
	o.MaxWeight = o.defaultMaxWeight()
	return o
}

func (o Options) defaultMaxWeight() int {
	if o.UseTextEdges {
		return 24
	}
	return 16
}

// Load reads a YAML document at path and overlays it on Default(),
// returning the merged Options. If the document does not set
// max_weight, it is resolved from the merged UseTextEdges.
func Load(path string) (Options, error) {
	o := Default()
	o.MaxWeight = 0
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if o.MaxWeight == 0 {
		o.MaxWeight = o.defaultMaxWeight()
	}
	return o, nil
}
