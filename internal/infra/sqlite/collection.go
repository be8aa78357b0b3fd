package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/aliskhannn/wordbook/internal/domain"
	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

// WordCollection stores documents as JSON text in a table named after the collection.
type WordCollection struct {
	db    *sql.DB
	table string
}

// NewWordCollection creates a WordCollection over the table called name.
func NewWordCollection(db *sql.DB, name string) *WordCollection {
	return &WordCollection{
		db:    db,
		table: `"` + strings.ReplaceAll(name, `"`, `""`) + `"`,
	}
}

// EnsureTable creates the collection table if it does not exist yet.
func (c *WordCollection) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id  INTEGER PRIMARY KEY AUTOINCREMENT,
			doc TEXT NOT NULL
		)
	`, c.table)

	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create collection table: %w", wrapError(err))
	}

	return nil
}

// InsertOne appends doc to the collection.
func (c *WordCollection) InsertOne(ctx context.Context, doc entities.Document) (int64, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return 0, fmt.Errorf("encode document: %w", err)
	}

	query := fmt.Sprintf("INSERT INTO %s (doc) VALUES (?)", c.table)

	res, err := c.db.ExecContext(ctx, query, string(raw))
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", wrapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return n, nil
}

// FindAll returns every document with its row id exposed as entities.IDField.
func (c *WordCollection) FindAll(ctx context.Context) ([]entities.Document, error) {
	query := fmt.Sprintf("SELECT id, doc FROM %s", c.table)

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", wrapError(err))
	}
	defer rows.Close()

	var docs []entities.Document
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}

		doc, err := entities.DecodeDocument([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", id, err)
		}
		docs = append(docs, append(entities.Document{{Key: entities.IDField, Value: id}}, doc...))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}

// wrapError marks permission failures with domain.ErrUnauthorized.
func wrapError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code {
	case sqlite3.ErrAuth, sqlite3.ErrPerm, sqlite3.ErrReadonly:
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	default:
		return err
	}
}
