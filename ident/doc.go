// Package ident splits source-code identifiers into normalized, stemmed
// term sequences for use by package similarity's mutual-information name
// index.
//
// Splitting runs in three stages:
//
//  1. Split on spaces, then underscores.
//  2. Split each fragment at camelCase/digit boundaries, with an
//     all-uppercase fragment treated as a single acronym term.
//  3. Coalesce runs of single-character subfragments back into one term,
//     recovering acronyms embedded in camelCase names (parseHTTPResponse
//     -> "parse", "http", "response").
//
// Stemming uses github.com/antzucaro/matchr's Porter2 implementation; a
// configurable stop-word set (empty by default) is applied after
// stemming. Termize and Normalize are pure, memoizable functions of their
// input string — MalformedIdentifier never occurs, the tokenizer is
// total over all Go strings.
package ident
