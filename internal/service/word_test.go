package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/domain"
	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

type memoryCollection struct {
	mu        sync.Mutex
	docs      []entities.Document
	insertErr error
	findErr   error
}

func (c *memoryCollection) InsertOne(_ context.Context, doc entities.Document) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.insertErr != nil {
		return 0, c.insertErr
	}
	stored := append(entities.Document{{Key: entities.IDField, Value: len(c.docs) + 1}}, doc...)
	c.docs = append(c.docs, stored)
	return 1, nil
}

func (c *memoryCollection) FindAll(_ context.Context) ([]entities.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.findErr != nil {
		return nil, c.findErr
	}
	return append([]entities.Document(nil), c.docs...), nil
}

func helloEntry() entities.WordEntry {
	return entities.WordEntry{
		Language:    entities.LanguageCantonese,
		WordEnglish: "hello",
		WordAlt:     "nei5 hou2",
		Definition:  "a greeting",
		AudioURI:    "https://example.com/a.mp3",
	}
}

func TestWordService_AddWordThenDictionary(t *testing.T) {
	coll := &memoryCollection{}
	svc := NewWordService(coll, zap.NewNop())

	n, err := svc.AddWord(context.Background(), helloEntry())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.Len(t, coll.docs, 1)

	table, err := svc.Dictionary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"language", "word_english", "word_alt", "definition", "audio_uri"}, table.Header)
	assert.Equal(t, [][]string{{"Cantonese", "hello", "nei5 hou2", "a greeting", "https://example.com/a.mp3"}}, table.Rows)
}

func TestWordService_AddWord_UnauthorizedIsFatal(t *testing.T) {
	coll := &memoryCollection{insertErr: fmt.Errorf("insert: %w", domain.ErrUnauthorized)}

	var fatalErr error
	svc := NewWordService(coll, zap.NewNop(), WithFatal(func(err error) { fatalErr = err }))

	_, err := svc.AddWord(context.Background(), helloEntry())

	require.Error(t, err)
	assert.ErrorIs(t, fatalErr, domain.ErrUnauthorized)
	assert.Empty(t, coll.docs)
}

func TestWordService_AddWord_OtherErrorsAreReturned(t *testing.T) {
	storeErr := errors.New("connection reset")
	coll := &memoryCollection{insertErr: storeErr}

	called := false
	svc := NewWordService(coll, zap.NewNop(), WithFatal(func(error) { called = true }))

	_, err := svc.AddWord(context.Background(), helloEntry())

	assert.ErrorIs(t, err, storeErr)
	assert.False(t, called)
}

func TestWordService_Dictionary_Empty(t *testing.T) {
	svc := NewWordService(&memoryCollection{}, zap.NewNop())

	table, err := svc.Dictionary(context.Background())
	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Nil(t, table.Lines())
}

func TestWordService_Dictionary_FindError(t *testing.T) {
	findErr := errors.New("timeout")
	svc := NewWordService(&memoryCollection{findErr: findErr}, zap.NewNop())

	_, err := svc.Dictionary(context.Background())
	assert.ErrorIs(t, err, findErr)
}
