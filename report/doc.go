// Package report renders a clustered entity.Table into the two JSON
// output formats consumed by DV8-style architectural visualization
// tools: the design structure matrix (DSM) and the design rule
// hierarchy (DRH), matching filesplitter/dv8.py's schema bit-for-bit
// (schemaVersion "1.0", the same field names and nesting).
package report
