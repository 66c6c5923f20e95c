package ident

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// DefaultStopWords mirrors the original pipeline's stop-word set: short,
// high-frequency verb/preposition terms that carry little discriminative
// signal once stemmed.
func DefaultStopWords() map[string]struct{} {
	words := []string{"m", "get", "set", "on", "by", "for", "as", "is", "and", "in", "has"}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// Tokenizer splits and stems identifiers, memoizing per-input results for
// the duration of one clustering run. The zero value is usable; StopWords
// defaults to no filtering.
type Tokenizer struct {
	StopWords map[string]struct{}

	cache map[string][]string
}

// NewTokenizer returns a Tokenizer configured with the given stop-word set
// (nil means "no stop words").
func NewTokenizer(stopWords map[string]struct{}) *Tokenizer {
	return &Tokenizer{StopWords: stopWords, cache: make(map[string][]string)}
}

// Termize splits name and stems each resulting fragment with Porter2,
// dropping any stemmed term present in t.StopWords. Results are memoized.
func (t *Tokenizer) Termize(name string) []string {
	if t.cache == nil {
		t.cache = make(map[string][]string)
	}
	if cached, ok := t.cache[name]; ok {
		return cached
	}

	fragments := splitIdentifier(name)
	terms := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		stemmed := matchr.Porter2(frag)
		if stemmed == "" {
			continue
		}
		if _, stop := t.StopWords[stemmed]; stop {
			continue
		}
		terms = append(terms, stemmed)
	}

	t.cache[name] = terms
	return terms
}

// Normalize returns the normalized name of doc: its terms joined by "_".
// Two identifiers with the same Normalize value are considered the same
// doc by package similarity.
func (t *Tokenizer) Normalize(name string) string {
	return strings.Join(t.Termize(name), "_")
}

// splitIdentifier splits name on spaces, then underscores, then camelCase
// / digit boundaries within each resulting fragment.
func splitIdentifier(name string) []string {
	var out []string
	for _, bySpace := range strings.Split(name, " ") {
		for _, byUnderscore := range strings.Split(bySpace, "_") {
			out = append(out, splitCamel(byUnderscore)...)
		}
	}
	return out
}

// splitCamel splits a single fragment at every position whose rune is
// uppercase or a digit, treating an all-uppercase fragment as a single
// acronym term. Runs of single-character subfragments are coalesced back
// into one term via joinSingles, recovering acronyms embedded in
// camelCase names.
func splitCamel(name string) []string {
	if name == "" {
		return nil
	}
	if isAllUpper(name) {
		return []string{strings.ToLower(name)}
	}

	var indices []int
	for i, r := range name {
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			indices = append(indices, i)
		}
	}
	bounds := make([]int, 0, len(indices)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, indices...)
	bounds = append(bounds, len(name))

	subfragments := make([]string, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		a, b := bounds[i], bounds[i+1]
		if a == b {
			continue
		}
		subfragments = append(subfragments, strings.ToLower(name[a:b]))
	}
	return joinSingles(subfragments)
}

// isAllUpper reports whether name contains no lowercase letters and at
// least one uppercase letter (matching Python's str.isupper semantics
// closely enough for identifier text: digits/punctuation don't disqualify
// it, but an absence of any cased letter does).
func isAllUpper(name string) bool {
	hasUpper := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// joinSingles concatenates consecutive single-character subfragments into
// one term; any longer subfragment flushes a pending buffer of singles.
func joinSingles(terms []string) []string {
	var out []string
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			out = append(out, pending.String())
			pending.Reset()
		}
	}
	for _, t := range terms {
		if len([]rune(t)) == 1 {
			pending.WriteString(t)
			continue
		}
		flush()
		if t != "" {
			out = append(out, t)
		}
	}
	flush()
	return out
}
