package web

import (
	"context"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

type WordService interface {
	AddWord(ctx context.Context, entry entities.WordEntry) (int64, error)
	Dictionary(ctx context.Context) (entities.Table, error)
}
