// Package unitcache records per-translation-unit parse results (a UUID, the
// file path, and the diagnostics produced) into a small SQLite database, so
// a caller driving the parser over a tree of files can report which
// diagnostics are new since the last run. Top-level item names are not
// stored; Summarize computes them from a TopLevel on demand. The parser itself
// never imports this package: it is caller-side bookkeeping built on top of
// Parse's ordinary (*ast.TopLevel, []*diagnostics.Diagnostic) return value.
package unitcache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
)

const schema = `
CREATE TABLE IF NOT EXISTS translation_units (
	id TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	parsed_at INTEGER NOT NULL,
	diagnostic_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS diagnostics (
	unit_id TEXT NOT NULL,
	code INTEGER NOT NULL,
	location TEXT NOT NULL,
	message TEXT NOT NULL
);
`

// Recorder owns the SQLite connection backing one cache directory's
// translation-unit database.
type Recorder struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at dbPath and
// ensures its schema exists.
func Open(dbPath string) (*Recorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("unitcache: open %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unitcache: create schema: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Close releases the underlying database connection.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Unit is one parsed translation unit, identified by a fresh UUID minted
// at parse time.
type Unit struct {
	ID   uuid.UUID
	Path string
}

// NewUnit tags a just-parsed file with a fresh translation-unit UUID.
func NewUnit(path string) Unit {
	return Unit{ID: uuid.New(), Path: path}
}

// Record stores diags against unit, overwriting any prior record for the
// same unit ID.
func (r *Recorder) Record(unit Unit, diags []*diagnostics.Diagnostic) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("unitcache: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM diagnostics WHERE unit_id = ?`, unit.ID.String()); err != nil {
		return fmt.Errorf("unitcache: clear diagnostics: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO translation_units (id, path, parsed_at, diagnostic_count) VALUES (?, ?, ?, ?)`,
		unit.ID.String(), unit.Path, time.Now().Unix(), len(diags),
	); err != nil {
		return fmt.Errorf("unitcache: insert unit: %w", err)
	}
	for _, d := range diags {
		if _, err := tx.Exec(
			`INSERT INTO diagnostics (unit_id, code, location, message) VALUES (?, ?, ?, ?)`,
			unit.ID.String(), int(d.Code), d.Loc.String(), d.Error(),
		); err != nil {
			return fmt.Errorf("unitcache: insert diagnostic: %w", err)
		}
	}
	return tx.Commit()
}

// PriorDiagnosticCodes returns the set of diagnostic codes last recorded
// for path, keyed by the most recent translation unit with that path. It
// returns nil (not an error) if path has never been recorded.
func (r *Recorder) PriorDiagnosticCodes(path string) (map[uint16]int, error) {
	var unitID string
	err := r.db.QueryRow(
		`SELECT id FROM translation_units WHERE path = ? ORDER BY parsed_at DESC LIMIT 1`, path,
	).Scan(&unitID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unitcache: lookup unit: %w", err)
	}

	rows, err := r.db.Query(`SELECT code FROM diagnostics WHERE unit_id = ?`, unitID)
	if err != nil {
		return nil, fmt.Errorf("unitcache: query diagnostics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[uint16]int)
	for rows.Next() {
		var code int
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("unitcache: scan diagnostic: %w", err)
		}
		counts[uint16(code)]++
	}
	return counts, rows.Err()
}

// Summarize collects the names of a TopLevel's definitions, a summary of
// top-level item names a caller can diff across runs. Recorder does not
// persist it.
func Summarize(top *ast.TopLevel) []string {
	if top == nil {
		return nil
	}
	names := make([]string, 0, len(top.Items))
	for _, item := range top.Items {
		if name, ok := itemName(item); ok {
			names = append(names, name)
		}
	}
	return names
}

func itemName(item ast.Statement) (string, bool) {
	switch it := item.(type) {
	case *ast.FnDef:
		return "fn " + it.Name, true
	case *ast.VarDef:
		return "let " + it.Name, true
	case *ast.MutDef:
		return "mut " + it.Name, true
	case *ast.ConstDef:
		return "const " + it.Name, true
	case *ast.ModuleDecl:
		if len(it.Name.IDs) > 0 {
			return "module " + it.Name.IDs[len(it.Name.IDs)-1], true
		}
		return "module", true
	case *ast.ImportStmt:
		return "import", true
	default:
		return "", false
	}
}
