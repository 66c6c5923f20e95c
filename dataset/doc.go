// Package dataset loads one god-file decomposition's input tables from
// a SQLite database: the target entities (children of the file being
// split), the dependency edges among them, the external client
// entities that reference those targets, the client-side dependency
// edges, the outgoing type names, and the historical touch rows the
// validate package consumes.
//
// Queries live as plain SQL text under queries/, embedded at build
// time with embed.FS rather than read from disk at runtime — the
// idiomatic Go replacement for the source project's
// Path(__file__).joinpath(...).read_text() pattern. The driver uses
// modernc.org/sqlite, a pure-Go SQLite implementation, so no cgo
// toolchain is required to build or run this package.
package dataset
