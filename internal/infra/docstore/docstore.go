// Package docstore opens the document collection selected by the database URL.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/config"
	"github.com/aliskhannn/wordbook/internal/domain/entities"
	"github.com/aliskhannn/wordbook/internal/infra/mongodb"
	"github.com/aliskhannn/wordbook/internal/infra/postgres"
	"github.com/aliskhannn/wordbook/internal/infra/sqlite"
)

var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Backend names.
const (
	BackendMongo    = "mongodb"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Collection is implemented by every backend collection.
type Collection interface {
	InsertOne(ctx context.Context, doc entities.Document) (int64, error)
	FindAll(ctx context.Context) ([]entities.Document, error)
}

// Store is an open collection together with the connection that backs it.
type Store struct {
	Collection
	Backend string

	close func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// BackendFor returns the backend name for a database URL.
func BackendFor(rawURL string) (string, error) {
	scheme, _, ok := strings.Cut(rawURL, ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, rawURL)
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "sqlite", "sqlite3":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// SQLitePath extracts the database file path from a sqlite URL.
// "sqlite::memory:" gives an in-memory database, "sqlite://words.db" a relative
// file and "sqlite:///var/lib/words.db" an absolute one.
func SQLitePath(rawURL string) (string, error) {
	_, rest, _ := strings.Cut(rawURL, ":")
	if rest == sqlite.MemoryPath || rest == "//"+sqlite.MemoryPath {
		return sqlite.MemoryPath, nil
	}

	path := strings.TrimPrefix(rest, "//")
	if path == "" {
		return "", fmt.Errorf("sqlite url %q: missing path", rawURL)
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path, nil
}

// Open connects to the store named by cfg.URL and prepares the word collection.
func Open(ctx context.Context, cfg config.DB, logger *zap.Logger) (*Store, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	backend, err := BackendFor(dsn)
	if err != nil {
		return nil, err
	}

	var store *Store
	switch backend {
	case BackendMongo:
		store, err = openMongo(ctx, dsn, cfg)
	case BackendPostgres:
		store, err = openPostgres(ctx, dsn, cfg)
	case BackendSQLite:
		store, err = openSQLite(ctx, dsn, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}

	logger.Info("document store opened",
		zap.String("backend", backend),
		zap.String("collection", cfg.Collection),
	)

	return store, nil
}

func openMongo(ctx context.Context, dsn string, cfg config.DB) (*Store, error) {
	client, err := mongodb.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &Store{
		Collection: mongodb.NewWordCollection(client.Database(cfg.Name), cfg.Collection),
		Backend:    BackendMongo,
		close:      client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, dsn string, cfg config.DB) (*Store, error) {
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.MaxConnections),
		MaxConnLifetime: cfg.MaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}

	coll := postgres.NewWordCollection(pool, cfg.Collection)
	if err := coll.EnsureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{
		Collection: coll,
		Backend:    BackendPostgres,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(ctx context.Context, dsn string, cfg config.DB) (*Store, error) {
	path, err := SQLitePath(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}

	coll := sqlite.NewWordCollection(db, cfg.Collection)
	if err := coll.EnsureTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Collection: coll,
		Backend:    BackendSQLite,
		close: func(context.Context) error {
			return db.Close()
		},
	}, nil
}
