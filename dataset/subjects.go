package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// Subject names one candidate god-file: a file entity with at least
// some minimum number of children, found by scanning one project
// database. Project is the database's base filename without its
// extension; SubjectName is a unique, filesystem-safe identifier
// derived from Project and Filename for use in result file names.
type Subject struct {
	Project     string
	Filename    string
	NChildren   int
	SubjectName string
}

// FindSubjects scans every *.db file directly under dataDir and
// returns every candidate file with at least minLOCs children,
// recovering the source project's load_subjects_df / fetch_candidate_files
// combination. Databases are visited in sorted filename order for
// determinism.
func FindSubjects(ctx context.Context, dataDir string, minLOCs int) ([]Subject, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", dataDir, err)
	}

	var dbNames []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".db") {
			dbNames = append(dbNames, e.Name())
		}
	}
	sort.Strings(dbNames)

	var subjects []Subject
	for _, dbName := range dbNames {
		project := strings.TrimSuffix(dbName, ".db")
		found, err := candidateFilesIn(ctx, filepath.Join(dataDir, dbName), minLOCs)
		if err != nil {
			return nil, fmt.Errorf("dataset: scanning %s: %w", dbName, err)
		}
		for _, f := range found {
			f.Project = project
			f.SubjectName = subjectName(project, f.Filename)
			subjects = append(subjects, f)
		}
	}
	return subjects, nil
}

// subjectName mirrors load_subjects_df's naming scheme: the project
// name joined with the last two path segments of the filename.
func subjectName(project, filename string) string {
	parts := strings.Split(filename, "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return project + "__" + strings.Join(parts, "_")
}

func candidateFilesIn(ctx context.Context, dbPath string, minLOCs int) ([]Subject, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query, err := queriesFS.ReadFile("queries/candidate_files.sql")
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, string(query), minLOCs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subject
	for rows.Next() {
		var id, nChildren int
		var filename string
		if err := rows.Scan(&id, &filename, &nChildren); err != nil {
			return nil, err
		}
		out = append(out, Subject{Filename: filename, NChildren: nChildren})
	}
	return out, rows.Err()
}
