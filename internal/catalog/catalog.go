// Package catalog provides the project directory backed by an in-memory
// SQLite database. The directory is loaded once from seed data at session
// start and queried read-only afterwards; nothing is ever written to disk,
// so the database lives and dies with the process.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/nebulahq/chainpulse/internal/domain"
)

var (
	// ErrProjectNotFound indicates that a project id is not in the directory.
	ErrProjectNotFound = errors.New("project not found")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	symbol      TEXT NOT NULL,
	category    TEXT NOT NULL,
	description TEXT NOT NULL,
	website     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category);
`

// Catalog is the queryable project directory.
type Catalog struct {
	db *sql.DB
}

// New opens an empty in-memory catalog.
func New() (*Catalog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}
	// Every pooled connection would otherwise get its own private :memory:
	// database; the directory must live on exactly one.
	db.SetMaxOpenConns(1)

	c := &Catalog{db: db}
	if err := c.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database, discarding the directory.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Catalog) init() error {
	if _, err := c.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("catalog: set busy timeout: %w", err)
	}
	if _, err := c.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("catalog: create schema: %w", err)
	}
	return nil
}

// Load inserts the seed projects into the directory. Existing rows with the
// same id are replaced, so loading is idempotent.
func (c *Catalog) Load(ctx context.Context, projects []domain.Project) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO projects (id, name, symbol, category, description, website) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("catalog: prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("catalog: invalid project %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Symbol, p.Category.String(), p.Description, p.Website); err != nil {
			return fmt.Errorf("catalog: insert project %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit load: %w", err)
	}
	return nil
}

// List returns projects ordered by name, optionally restricted to a category
// and/or a case-insensitive search over name, symbol and description.
func (c *Catalog) List(ctx context.Context, category domain.ProjectCategory, search string) ([]domain.Project, error) {
	query := "SELECT id, name, symbol, category, description, website FROM projects"
	var conds []string
	var args []any

	if category != "" {
		conds = append(conds, "category = ?")
		args = append(args, category.String())
	}
	if s := strings.TrimSpace(search); s != "" {
		conds = append(conds, "(name LIKE ? OR symbol LIKE ? OR description LIKE ?)")
		pattern := "%" + s + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name COLLATE NOCASE"

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a single project by id.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Project, error) {
	row := c.db.QueryRowContext(ctx,
		"SELECT id, name, symbol, category, description, website FROM projects WHERE id = ?", id)

	var p domain.Project
	var category string
	err := row.Scan(&p.ID, &p.Name, &p.Symbol, &category, &p.Description, &p.Website)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get project %s: %w", id, err)
	}
	p.Category = domain.ProjectCategory(category)
	return &p, nil
}

// Count returns the number of projects in the directory.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return 0, fmt.Errorf("catalog: count projects: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var p domain.Project
	var category string
	if err := row.Scan(&p.ID, &p.Name, &p.Symbol, &category, &p.Description, &p.Website); err != nil {
		return domain.Project{}, fmt.Errorf("catalog: scan project: %w", err)
	}
	p.Category = domain.ProjectCategory(category)
	return p, nil
}
