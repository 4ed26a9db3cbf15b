package repositories

import "context"

type DocumentRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
}
