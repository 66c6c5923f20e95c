// Package validate recovers the ABPA/ABPC historical-commit validation
// harness from filesplitter/validate.py: it measures, for a clustered
// entity table, the average number of distinct blocks touched per
// author (ABPA) and per commit (ABPC) against a null model built from
// 5,000 random re-partitions sharing the same block-size distribution.
// A lower real-vs-null ratio indicates the clustering groups
// co-edited entities together better than chance would.
package validate
