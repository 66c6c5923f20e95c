package dataset

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/splitcut/entity"
)

//go:embed queries/*.sql
var queriesFS embed.FS

// Touch is one historical author/commit edit of an entity, feeding the
// ABPA/ABPC validation harness. Unrelated to the core clustering
// pipeline.
type Touch struct {
	AuthorEmail string
	SHA1        string
	EntityID    int
}

// Dataset is one god-file run's full input: the target entities and
// their internal dependency edges, the external client entities and
// their edges onto the targets, the outgoing type names, and the
// touch history.
type Dataset struct {
	Targets           []entity.Entity
	TargetDeps        []entity.Dep
	Clients           []entity.Entity
	ClientDeps        []entity.Dep
	OutgoingTypeNames []string
	Touches           []Touch
}

// Entities returns every target and client entity, targets first.
func (d *Dataset) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(d.Targets)+len(d.Clients))
	out = append(out, d.Targets...)
	out = append(out, d.Clients...)
	return out
}

// Deps returns every target and client dependency edge, target edges
// first.
func (d *Dataset) Deps() []entity.Dep {
	out := make([]entity.Dep, 0, len(d.TargetDeps)+len(d.ClientDeps))
	out = append(out, d.TargetDeps...)
	out = append(out, d.ClientDeps...)
	return out
}

// Loader holds one open database connection and the SQL text loaded
// from queries/.
type Loader struct {
	db      *sql.DB
	queries map[string]string
}

// Open connects to the SQLite database at path and loads query text.
func Open(path string) (*Loader, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: connecting to %s: %w", path, err)
	}

	queries := make(map[string]string)
	entries, err := queriesFS.ReadDir("queries")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: reading embedded queries: %w", err)
	}
	for _, e := range entries {
		content, err := queriesFS.ReadFile("queries/" + e.Name())
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("dataset: reading query %s: %w", e.Name(), err)
		}
		name := e.Name()
		queries[name[:len(name)-len(".sql")]] = string(content)
	}

	return &Loader{db: db, queries: queries}, nil
}

// Close releases the underlying database connection.
func (l *Loader) Close() error {
	return l.db.Close()
}

// Load resolves filename to a single file entity and builds the
// Dataset for one clustering run against it. Returns ErrNoFileFound or
// ErrAmbiguousFile if filename does not resolve to exactly one
// file-kind entity.
func (l *Loader) Load(ctx context.Context, filename string) (*Dataset, error) {
	fileID, err := l.resolveFileID(ctx, filename)
	if err != nil {
		return nil, err
	}

	targets, err := l.queryEntities(ctx, "children", fileID)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading targets: %w", err)
	}
	// If the god file has exactly one top-level child (a single class
	// wrapping everything), recurse into its children instead.
	if len(targets) == 1 {
		targets, err = l.queryEntities(ctx, "children", targets[0].ID)
		if err != nil {
			return nil, fmt.Errorf("dataset: loading nested targets: %w", err)
		}
	}

	targetDeps, err := l.queryDeps(ctx, "internal_deps", fileID, fileID)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading target deps: %w", err)
	}

	clients, err := l.queryEntities(ctx, "clients", filename)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading clients: %w", err)
	}

	clientDeps, err := l.queryDeps(ctx, "client_deps", fileID, filename)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading client deps: %w", err)
	}

	outgoing, err := l.queryStrings(ctx, "outgoing_type_names", fileID)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading outgoing type names: %w", err)
	}

	touches, err := l.queryTouches(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading touches: %w", err)
	}

	ds := &Dataset{
		Targets:           targets,
		TargetDeps:        targetDeps,
		Clients:           clients,
		ClientDeps:        clientDeps,
		OutgoingTypeNames: outgoing,
		Touches:           touches,
	}
	densify(ds)
	return ds, nil
}

// densify renumbers every id in ds to a dense 0..N-1 range, targets
// first in query order then clients, so entity.Table's dense-id
// contract holds regardless of the underlying database's primary keys.
func densify(ds *Dataset) {
	idMap := make(map[int]int, len(ds.Targets)+len(ds.Clients))
	next := 0
	for i := range ds.Targets {
		idMap[ds.Targets[i].ID] = next
		ds.Targets[i].ID = next
		next++
	}
	for i := range ds.Clients {
		idMap[ds.Clients[i].ID] = next
		ds.Clients[i].ID = next
		next++
	}
	for i := range ds.TargetDeps {
		ds.TargetDeps[i].Src = idMap[ds.TargetDeps[i].Src]
		ds.TargetDeps[i].Tgt = idMap[ds.TargetDeps[i].Tgt]
	}
	for i := range ds.ClientDeps {
		ds.ClientDeps[i].Src = idMap[ds.ClientDeps[i].Src]
		ds.ClientDeps[i].Tgt = idMap[ds.ClientDeps[i].Tgt]
	}
	for i := range ds.Touches {
		ds.Touches[i].EntityID = idMap[ds.Touches[i].EntityID]
	}
}

func (l *Loader) resolveFileID(ctx context.Context, filename string) (int, error) {
	rows, err := l.db.QueryContext(ctx, l.queries["entities_by_name"], filename)
	if err != nil {
		return 0, fmt.Errorf("dataset: resolving file %q: %w", filename, err)
	}
	defer rows.Close()

	var fileIDs []int
	for rows.Next() {
		var id int
		var name, kind string
		if err := rows.Scan(&id, &name, &kind); err != nil {
			return 0, fmt.Errorf("dataset: scanning entity row: %w", err)
		}
		if kind == entity.FileKind {
			fileIDs = append(fileIDs, id)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	switch len(fileIDs) {
	case 0:
		return 0, ErrNoFileFound
	case 1:
		return fileIDs[0], nil
	default:
		return 0, ErrAmbiguousFile
	}
}

func (l *Loader) queryEntities(ctx context.Context, query string, args ...any) ([]entity.Entity, error) {
	rows, err := l.db.QueryContext(ctx, l.queries[query], args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Entity
	for rows.Next() {
		var e entity.Entity
		if err := rows.Scan(&e.ID, &e.Name, &e.Kind); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (l *Loader) queryDeps(ctx context.Context, query string, args ...any) ([]entity.Dep, error) {
	rows, err := l.db.QueryContext(ctx, l.queries[query], args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Dep
	for rows.Next() {
		var d entity.Dep
		if err := rows.Scan(&d.Src, &d.Tgt, &d.Kind); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (l *Loader) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, l.queries[query], args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (l *Loader) queryTouches(ctx context.Context, fileID int) ([]Touch, error) {
	rows, err := l.db.QueryContext(ctx, l.queries["touches"], fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Touch
	for rows.Next() {
		var t Touch
		if err := rows.Scan(&t.AuthorEmail, &t.SHA1, &t.EntityID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
