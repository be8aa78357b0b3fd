package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/domain"
	"github.com/aliskhannn/wordbook/internal/domain/entities"
	"github.com/aliskhannn/wordbook/internal/metrics"
)

// FatalFunc terminates the process after an unrecoverable store failure.
type FatalFunc func(err error)

// WordService stores submitted word entries and builds the dictionary listing.
type WordService struct {
	collection WordCollection
	logger     *zap.Logger
	fatal      FatalFunc
}

// Option configures a WordService.
type Option func(*WordService)

// WithFatal replaces the handler invoked when the store rejects a write as unauthorized.
func WithFatal(fn FatalFunc) Option {
	return func(s *WordService) {
		s.fatal = fn
	}
}

// NewWordService creates a WordService backed by collection.
// By default an authorization failure on insert logs at fatal level and exits the process.
func NewWordService(collection WordCollection, logger *zap.Logger, opts ...Option) *WordService {
	s := &WordService{
		collection: collection,
		logger:     logger,
	}
	s.fatal = func(err error) {
		s.logger.Fatal("document store rejected write, check database credentials", zap.Error(err))
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddWord persists entry and returns the number of inserted documents.
func (s *WordService) AddWord(ctx context.Context, entry entities.WordEntry) (int64, error) {
	n, err := s.collection.InsertOne(ctx, entry.Document())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.fatal(err)
		}
		return 0, fmt.Errorf("add word: %w", err)
	}

	metrics.AddWordsInserted(n)
	s.logger.Info("word entry added",
		zap.String("language", entry.Language.String()),
		zap.String("word_english", entry.WordEnglish),
		zap.Int64("inserted", n),
	)

	return n, nil
}

// Dictionary reads the whole collection and returns it as a table.
func (s *WordService) Dictionary(ctx context.Context) (entities.Table, error) {
	docs, err := s.collection.FindAll(ctx)
	if err != nil {
		return entities.Table{}, fmt.Errorf("list words: %w", err)
	}

	return BuildTable(docs), nil
}
