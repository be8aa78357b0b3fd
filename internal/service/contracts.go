package service

import (
	"context"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

// WordCollection is the document collection word entries are persisted to.
type WordCollection interface {
	// InsertOne appends doc to the collection and returns the number of documents written.
	InsertOne(ctx context.Context, doc entities.Document) (int64, error)
	// FindAll returns every document in the order the store yields them.
	FindAll(ctx context.Context) ([]entities.Document, error)
}
