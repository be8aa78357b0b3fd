package docstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/config"
	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

func TestBackendFor(t *testing.T) {
	tests := map[string]string{
		"mongodb://localhost:27017":                  BackendMongo,
		"mongodb+srv://user:pw@cluster.example.net/": BackendMongo,
		"postgres://app@localhost/words":             BackendPostgres,
		"postgresql://app@localhost/words":           BackendPostgres,
		"sqlite::memory:":                            BackendSQLite,
		"SQLITE://words.db":                          BackendSQLite,
	}

	for url, want := range tests {
		got, err := BackendFor(url)
		require.NoError(t, err, url)
		assert.Equal(t, want, got, url)
	}
}

func TestBackendFor_Unsupported(t *testing.T) {
	for _, url := range []string{"redis://localhost", "localhost:5432", "words"} {
		_, err := BackendFor(url)
		assert.ErrorIs(t, err, ErrUnsupportedScheme, url)
	}
}

func TestSQLitePath(t *testing.T) {
	tests := map[string]string{
		"sqlite::memory:":            ":memory:",
		"sqlite://:memory:":          ":memory:",
		"sqlite://words.db":          "words.db",
		"sqlite:///var/lib/words.db": "/var/lib/words.db",
		"sqlite:data/my%20words.db":  "data/my words.db",
	}

	for url, want := range tests {
		got, err := SQLitePath(url)
		require.NoError(t, err, url)
		assert.Equal(t, want, got, url)
	}

	_, err := SQLitePath("sqlite://")
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.DB{
		URL:        "sqlite://" + filepath.Join(t.TempDir(), "words.db"),
		Collection: "LANG_COLLECTION",
	}

	store, err := Open(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { assert.NoError(t, store.Close(ctx)) }()

	assert.Equal(t, BackendSQLite, store.Backend)

	n, err := store.InsertOne(ctx, entities.Document{{Key: "language", Value: "Filipino"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	docs, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestOpen_MissingURL(t *testing.T) {
	_, err := Open(context.Background(), config.DB{}, zap.NewNop())
	assert.ErrorIs(t, err, config.ErrMissingEnvironmentVariables)
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), config.DB{URL: "redis://localhost"}, zap.NewNop())
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}
