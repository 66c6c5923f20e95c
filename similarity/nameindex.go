package similarity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/splitcut/ident"
)

// pairKey identifies one (term, doc) occurrence. term may itself be a
// skip-bigram token ("prev-curr").
type pairKey struct {
	term string
	doc  string
}

// NameIndex is a mutual-information term/document index plus the
// derived doc-doc similarity (and distance) matrix over a fixed set of
// identifier names.
type NameIndex struct {
	terms []string
	docs  []string
	docIx map[string]int

	mi      *Dense // terms x docs
	simMat  *Dense // docs x docs
	distMat *Dense // docs x docs
}

// BuildOptions configures NameIndex construction.
type BuildOptions struct {
	// AllowDupNames, when true, lets a doc's repeated occurrences of the
	// same (term, doc) pair accumulate count; when false, a single
	// name's occurrence list is deduplicated before counting (so
	// repeated skip-bigrams of the same form collapse to one).
	AllowDupNames bool

	// Lookback is the skip-bigram window: for each term position i,
	// every one of the preceding Lookback terms is paired with term i
	// into a "prev-curr" bigram token. Zero or negative disables
	// bigrams (unigrams only). The source project's default is 1.
	Lookback int
}

// occurrencesForName returns one name's (term, doc) occurrence list:
// every unigram plus every skip-bigram within opts.Lookback, paired
// with the name's normalized doc key.
func occurrencesForName(tok *ident.Tokenizer, name string, lookback int) []pairKey {
	terms := tok.Termize(name)
	doc := tok.Normalize(name)

	occs := make([]pairKey, 0, len(terms)*2)
	for i, t := range terms {
		occs = append(occs, pairKey{t, doc})
		for k := 1; k <= lookback && i-k >= 0; k++ {
			bigram := terms[i-k] + "-" + t
			occs = append(occs, pairKey{bigram, doc})
		}
	}
	return occs
}

func dedupe(occs []pairKey) []pairKey {
	seen := make(map[pairKey]bool, len(occs))
	out := make([]pairKey, 0, len(occs))
	for _, o := range occs {
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}

// BuildNameIndex tokenizes names with tok and constructs a NameIndex
// over them, following this package's occurrence-extraction,
// vocabulary-pruning, mutual-information, and doc-doc similarity
// stages in order.
func BuildNameIndex(tok *ident.Tokenizer, names []string, opts BuildOptions) *NameIndex {
	rawCounts := make(map[pairKey]int)
	var rawOrder []pairKey

	for _, name := range names {
		occs := occurrencesForName(tok, name, opts.Lookback)
		if !opts.AllowDupNames {
			occs = dedupe(occs)
		}
		for _, o := range occs {
			if _, ok := rawCounts[o]; !ok {
				rawOrder = append(rawOrder, o)
			}
			rawCounts[o]++
		}
	}

	rawTermCounts := make(map[string]int)
	for _, k := range rawOrder {
		rawTermCounts[k.term] += rawCounts[k]
	}

	// Vocabulary pruning: drop any term whose total occurrence count is
	// at most 1.
	pairCounts := make(map[string]map[string]int) // term -> doc -> count
	var pairOrder []pairKey
	for _, k := range rawOrder {
		if rawTermCounts[k.term] <= 1 {
			continue
		}
		if pairCounts[k.term] == nil {
			pairCounts[k.term] = make(map[string]int)
		}
		if _, ok := pairCounts[k.term][k.doc]; !ok {
			pairOrder = append(pairOrder, k)
		}
		pairCounts[k.term][k.doc] += rawCounts[k]
	}

	termOrder, termIx := []string{}, map[string]int{}
	docOrder, docIx := []string{}, map[string]int{}
	termCounts := make(map[string]int)
	docCounts := make(map[string]int)
	total := 0

	for _, k := range pairOrder {
		n := pairCounts[k.term][k.doc]
		total += n
		termCounts[k.term] += n
		docCounts[k.doc] += n
		if _, ok := termIx[k.term]; !ok {
			termIx[k.term] = len(termOrder)
			termOrder = append(termOrder, k.term)
		}
		if _, ok := docIx[k.doc]; !ok {
			docIx[k.doc] = len(docOrder)
			docOrder = append(docOrder, k.doc)
		}
	}

	idx := &NameIndex{terms: termOrder, docs: docOrder, docIx: docIx}
	if total == 0 || len(termOrder) == 0 || len(docOrder) == 0 {
		idx.mi, _ = NewDense(max1(len(termOrder)), max1(len(docOrder)))
		idx.simMat, _ = NewDense(max1(len(docOrder)), max1(len(docOrder)))
		idx.distMat, _ = NewDense(max1(len(docOrder)), max1(len(docOrder)))
		return idx
	}

	mi, _ := NewDense(len(termOrder), len(docOrder))
	ft := float64(total)
	for _, term := range termOrder {
		tc := float64(termCounts[term])
		pI1 := tc / ft
		pI0 := (ft - tc) / ft
		for _, doc := range docOrder {
			dc := float64(docCounts[doc])
			pj1 := dc / ft
			pj0 := (ft - dc) / ft
			n := float64(pairCounts[term][doc])

			p11 := n / ft
			p10 := (tc - n) / ft
			p01 := (dc - n) / ft
			p00 := 1 - p10 - p01 - p11

			v := p11*safeLog(p11/(pI1*pj1)) +
				p10*safeLog(p10/(pI1*pj0)) +
				p01*safeLog(p01/(pI0*pj1)) +
				p00*safeLog(p00/(pI0*pj0))
			mi.Set(termIx[term], docIx[doc], v)
		}
	}
	idx.mi = mi

	nd := len(docOrder)
	simMat, _ := NewDense(nd, nd)
	for i := 0; i < nd; i++ {
		vi := mi.Column(i)
		for j := i; j < nd; j++ {
			vj := mi.Column(j)
			c := posCor(vi, vj)
			simMat.Set(i, j, c)
			simMat.Set(j, i, c)
		}
	}
	idx.simMat = simMat

	distMat, _ := NewDense(nd, nd)
	for i := 0; i < nd; i++ {
		for j := 0; j < nd; j++ {
			distMat.Set(i, j, 1-simMat.At(i, j))
		}
	}
	idx.distMat = distMat

	return idx
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func safeLog(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Log(x)
}

// posCor computes cosine similarity of the mean-centered vectors a, b,
// normalized by their *uncentered* L2 norms, clamped at zero. This is
// deliberately not Pearson correlation: the denominator norms are taken
// over the raw vectors, not the centered ones.
func posCor(a, b []float64) float64 {
	meanA, meanB := mean(a), mean(b)
	var dot, normA, normB float64
	for i := range a {
		ca := a[i] - meanA
		cb := b[i] - meanB
		dot += ca * cb
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0
	}
	c := dot / (normA * normB)
	if c < 0 {
		return 0
	}
	return c
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// HasDoc reports whether name's normalized doc key is present in the
// index.
func (n *NameIndex) HasDoc(tok *ident.Tokenizer, name string) bool {
	_, ok := n.docIx[tok.Normalize(name)]
	return ok
}

// Sim returns the similarity between two names' docs, or 0 if either
// name's doc is absent from the index (the engine never fails on an
// unknown name).
func (n *NameIndex) Sim(tok *ident.Tokenizer, a, b string) float64 {
	ai, aok := n.docIx[tok.Normalize(a)]
	bi, bok := n.docIx[tok.Normalize(b)]
	if !aok || !bok {
		return 0
	}
	return n.simMat.At(ai, bi)
}

// Dist returns 1 - Sim(a, b).
func (n *NameIndex) Dist(tok *ident.Tokenizer, a, b string) float64 {
	return 1 - n.Sim(tok, a, b)
}

// MostSim returns the top-n docs most similar to name, in descending
// similarity order, excluding name itself. Returns an error only if
// name's doc is absent from the index.
func (n *NameIndex) MostSim(tok *ident.Tokenizer, name string, topN int) ([]struct {
	Doc string
	Sim float64
}, error) {
	di, err := n.docIndex(tok, name)
	if err != nil {
		return nil, err
	}
	type scored = struct {
		ix  int
		sim float64
	}
	scores := make([]scored, 0, len(n.docs))
	for j := range n.docs {
		if j == di {
			continue
		}
		scores = append(scores, scored{j, n.simMat.At(di, j)})
	}
	sortScoredDesc(scores)
	if topN < len(scores) {
		scores = scores[:topN]
	}
	out := make([]struct {
		Doc string
		Sim float64
	}, len(scores))
	for i, s := range scores {
		out[i].Doc = n.docs[s.ix]
		out[i].Sim = s.sim
	}
	return out, nil
}

func sortScoredDesc(s []struct {
	ix  int
	sim float64
}) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].sim > s[j-1].sim; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func (n *NameIndex) docIndex(tok *ident.Tokenizer, name string) (int, error) {
	doc := tok.Normalize(name)
	ix, ok := n.docIx[doc]
	if !ok {
		return 0, fmt.Errorf("similarity: name %q (doc %q) not present in index", name, doc)
	}
	return ix, nil
}

// NumDocs returns the number of distinct docs indexed.
func (n *NameIndex) NumDocs() int { return len(n.docs) }

// Docs returns the doc keys in index order.
func (n *NameIndex) Docs() []string { return n.docs }

// DistMatrix returns the docs x docs distance matrix (1 - similarity),
// for callers that need to feed it to a general-purpose density-based
// clustering pass such as DBSCAN.
func (n *NameIndex) DistMatrix() *Dense { return n.distMat }
