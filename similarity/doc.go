// Package similarity builds a mutual-information term/document index over a
// set of identifier names and derives a document-document similarity
// matrix from it, plus an optional density-based clustering pass
// (DBSCAN) seeded from that matrix's distances.
//
// The pipeline mirrors the source project's NameSimilarity class:
//
//  1. Every name is tokenized by package ident into a term sequence and a
//     normalized "doc" key (its terms joined by "_"). Occurrence pairs
//     (term, doc) are extracted for every term plus every skip-bigram
//     within a configurable lookback window ("prev-curr" tokens pairing
//     term i with each of the preceding Lookback terms), optionally
//     deduplicated per name before counting.
//  2. Vocabulary pruning drops any term whose total occurrence count is
//     at most 1, then recomputes doc counts from the surviving pairs;
//     docs left with zero occurrences drop out of the index entirely.
//  3. For every surviving term and every surviving doc the Bernoulli
//     mutual information I(X_i; Y_j) is computed from the pair/term/doc
//     occurrence counts (a pair that never co-occurs has count 0),
//     filling a terms-by-docs Dense matrix.
//  4. Each doc's column in that matrix is treated as a vector over terms;
//     doc-doc similarity is the cosine of the *centered* vectors, but
//     normalized by the *uncentered* vector norms. This is the source
//     project's pos_cor function verbatim, not a textbook Pearson
//     correlation — the denominator intentionally does not re-center.
//
// Distance is defined as 1 - similarity. NameIndex never panics on a
// name it wasn't built from: HasDoc reports whether a name's doc is
// present, and Sim returns 0 when either doc is absent.
package similarity
