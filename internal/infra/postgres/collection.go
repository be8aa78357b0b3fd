package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

// WordCollection stores documents as rows of a table named after the collection.
// The json column type keeps the key order documents were written with.
type WordCollection struct {
	db    DBTX
	table string
}

// NewWordCollection creates a WordCollection over the table called name.
func NewWordCollection(db DBTX, name string) *WordCollection {
	return &WordCollection{
		db:    db,
		table: pgx.Identifier{name}.Sanitize(),
	}
}

// EnsureTable creates the collection table if it does not exist yet.
func (c *WordCollection) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id  BIGSERIAL PRIMARY KEY,
			doc JSON NOT NULL
		)
	`, c.table)

	if _, err := c.db.Exec(ctx, query); err != nil {
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

	query := fmt.Sprintf("INSERT INTO %s (doc) VALUES ($1::json)", c.table)

	tag, err := c.db.Exec(ctx, query, string(raw))
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", wrapError(err))
	}

	return tag.RowsAffected(), nil
}

// FindAll returns every document with its row id exposed as entities.IDField.
func (c *WordCollection) FindAll(ctx context.Context) ([]entities.Document, error) {
	query := fmt.Sprintf("SELECT id, doc::text FROM %s", c.table)

	rows, err := c.db.Query(ctx, query)
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
		return nil, fmt.Errorf("iterate documents: %w", wrapError(err))
	}

	return docs, nil
}
