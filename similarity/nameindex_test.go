package similarity

import (
	"math"
	"testing"

	"github.com/katalvlaran/splitcut/ident"
)

func TestSimMatrixIsSymmetric(t *testing.T) {
	tok := ident.NewTokenizer(nil)
	names := []string{"getUserName", "setUserName", "parseHTTPResponse", "getUserAge"}
	idx := BuildNameIndex(tok, names, BuildOptions{AllowDupNames: true})

	for _, a := range names {
		for _, b := range names {
			sab := idx.Sim(tok, a, b)
			sba := idx.Sim(tok, b, a)
			if math.Abs(sab-sba) > 1e-12 {
				t.Fatalf("Sim(%q,%q)=%v != Sim(%q,%q)=%v", a, b, sab, b, a, sba)
			}
		}
	}
}

func TestSimSelfMatchesPosCorFormula(t *testing.T) {
	tok := ident.NewTokenizer(nil)
	names := []string{"getUserName", "setUserName", "getUserAge"}
	idx := BuildNameIndex(tok, names, BuildOptions{AllowDupNames: true})

	if !idx.HasDoc(tok, "getUserName") {
		t.Fatalf("expected getUserName's doc to survive vocabulary pruning")
	}
	s := idx.Sim(tok, "getUserName", "getUserName")

	// The diagonal is the pos_cor formula applied to a column with
	// itself: the centered sum of squares over the raw sum of squares,
	// which is below 1 whenever the column's mean is nonzero.
	col := idx.mi.Column(idx.docIx[tok.Normalize("getUserName")])
	avg := 0.0
	for _, v := range col {
		avg += v
	}
	avg /= float64(len(col))
	var centered, raw float64
	for _, v := range col {
		centered += (v - avg) * (v - avg)
		raw += v * v
	}
	want := centered / raw
	if math.Abs(s-want) > 1e-9 {
		t.Fatalf("Sim(x,x) = %v, want %v", s, want)
	}
}

func TestDistIsOneMinusSim(t *testing.T) {
	tok := ident.NewTokenizer(nil)
	names := []string{"getUserName", "setUserName", "getUserAge"}
	idx := BuildNameIndex(tok, names, BuildOptions{AllowDupNames: true})

	s := idx.Sim(tok, "getUserName", "setUserName")
	d := idx.Dist(tok, "getUserName", "setUserName")
	if math.Abs((1-s)-d) > 1e-12 {
		t.Fatalf("Dist = %v, want 1-Sim = %v", d, 1-s)
	}
}

func TestSimUnknownNameReturnsZero(t *testing.T) {
	tok := ident.NewTokenizer(nil)
	idx := BuildNameIndex(tok, []string{"getUserName", "setUserName", "getUserAge"}, BuildOptions{AllowDupNames: true})
	if idx.HasDoc(tok, "totallyDifferentUnrelatedThing") {
		t.Fatalf("did not expect an unrelated name's doc to be present")
	}
	if s := idx.Sim(tok, "getUserName", "totallyDifferentUnrelatedThing"); s != 0 {
		t.Fatalf("Sim with an unknown doc = %v, want 0", s)
	}
}

func TestVocabularyPruningDropsSingletonTerms(t *testing.T) {
	tok := ident.NewTokenizer(nil)
	names := []string{"getUserName", "setUserName", "getUserAge", "parseHTTPResponse"}
	idx := BuildNameIndex(tok, names, BuildOptions{AllowDupNames: true})

	if idx.HasDoc(tok, "parseHTTPResponse") {
		t.Fatalf("expected parseHTTPResponse's doc to be pruned: every one of its terms occurs only once")
	}
}

func TestDBSCANFindsDenseCluster(t *testing.T) {
	dist, _ := NewDense(5, 5)
	close := map[[2]int]bool{
		{0, 1}: true, {1, 0}: true,
		{0, 2}: true, {2, 0}: true,
		{1, 2}: true, {2, 1}: true,
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			if close[[2]int{i, j}] {
				dist.Set(i, j, 0.1)
			} else {
				dist.Set(i, j, 0.9)
			}
		}
	}

	labels := DBSCAN(dist, 0.3, 3)
	if labels[0] == NoiseLabel || labels[0] != labels[1] || labels[1] != labels[2] {
		t.Fatalf("expected points 0,1,2 in the same dense cluster, got labels %v", labels)
	}
	if labels[3] != NoiseLabel || labels[4] != NoiseLabel {
		t.Fatalf("expected points 3,4 to be noise, got labels %v", labels)
	}
}
