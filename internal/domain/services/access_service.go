package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lindenb1/impress/internal/domain/entities"
	"github.com/lindenb1/impress/internal/domain/repositories"
	apperrors "github.com/lindenb1/impress/pkg/errors"
	"go.uber.org/zap"
)

type AccessService struct {
	accessRepo      repositories.AccessRepository
	docRepo         repositories.DocumentRepository
	cache           CacheService
	logger          *zap.Logger
	defaultPageSize int
	maxPageSize     int
}

func NewAccessService(
	accessRepo repositories.AccessRepository,
	docRepo repositories.DocumentRepository,
	cache CacheService,
	logger *zap.Logger,
	defaultPageSize, maxPageSize int,
) *AccessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccessService{
		accessRepo:      accessRepo,
		docRepo:         docRepo,
		cache:           cache,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns one page of the accesses granted on docID. A zero pageSize
// selects the default page size.
func (s *AccessService) List(ctx context.Context, docID, cursor string, pageSize int) (entities.AccessPage, error) {
	if _, err := uuid.Parse(docID); err != nil {
		return entities.AccessPage{}, apperrors.NewBadRequestError("invalid document id")
	}

	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize < 1 || pageSize > s.maxPageSize {
		return entities.AccessPage{}, apperrors.NewBadRequestError("invalid page size")
	}

	after, err := entities.DecodeCursor(cursor)
	if err != nil {
		return entities.AccessPage{}, apperrors.NewBadRequestError(err.Error())
	}

	key := s.cache.AccessPageKey(docID, cursor, pageSize)
	if page, err := s.cache.GetAccessPage(ctx, key); err == nil {
		return page, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn("access page cache read failed", zap.String("key", key), zap.Error(err))
	}

	exists, err := s.docRepo.Exists(ctx, docID)
	if err != nil {
		s.logger.Error("failed to look up document", zap.String("doc_id", docID), zap.Error(err))
		return entities.AccessPage{}, apperrors.NewInternalError("failed to get document")
	}
	if !exists {
		return entities.AccessPage{}, apperrors.NewNotFoundError("document not found")
	}

	page, err := s.accessRepo.ListByDocument(ctx, docID, after, pageSize)
	if err != nil {
		s.logger.Error("failed to list accesses", zap.String("doc_id", docID), zap.Error(err))
		return entities.AccessPage{}, apperrors.NewInternalError("failed to get accesses")
	}
	if page.Results == nil {
		page.Results = []entities.Access{}
	}

	if err := s.cache.SetAccessPage(ctx, key, page); err != nil {
		s.logger.Warn("access page cache write failed", zap.String("key", key), zap.Error(err))
	}

	return page, nil
}
