package repositories

import (
	"context"

	"github.com/lindenb1/impress/internal/domain/entities"
)

type AccessRepository interface {
	ListByDocument(ctx context.Context, docID string, after *entities.Cursor, limit int) (entities.AccessPage, error)
}
