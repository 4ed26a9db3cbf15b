package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lindenb1/impress/internal/domain/entities"
	"github.com/lindenb1/impress/internal/domain/repositories"
)

type accessRepository struct {
	pool *pgxpool.Pool
}

func NewAccessRepository(pool *pgxpool.Pool) repositories.AccessRepository {
	return &accessRepository{pool: pool}
}

// ListByDocument returns up to limit accesses of docID positioned after the
// cursor, ordered by (created_at, id). One extra row is read to tell whether
// a next page exists.
func (r *accessRepository) ListByDocument(
	ctx context.Context,
	docID string,
	after *entities.Cursor,
	limit int,
) (entities.AccessPage, error) {
	query := `SELECT a.id, a.document_id, a.team, a.role, a.created_at,
			u.id, u.email, u.full_name, u.language
		FROM document_accesses a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.document_id = $1`
	args := []any{docID}

	if after != nil {
		query += ` AND (a.created_at, a.id) > ($2, $3)`
		args = append(args, after.CreatedAt, after.ID)
	}

	query += fmt.Sprintf(" ORDER BY a.created_at ASC, a.id ASC LIMIT $%d", len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return entities.AccessPage{}, err
	}

	accesses, err := pgx.CollectRows(rows, scanAccess)
	if err != nil {
		return entities.AccessPage{}, err
	}

	return paginate(accesses, limit), nil
}

func scanAccess(row pgx.CollectableRow) (entities.Access, error) {
	var (
		access                                entities.Access
		role                                  string
		userID, email, fullName, userLanguage *string
	)

	err := row.Scan(
		&access.ID, &access.DocumentID, &access.Team, &role, &access.CreatedAt,
		&userID, &email, &fullName, &userLanguage,
	)
	if err != nil {
		return entities.Access{}, err
	}

	if access.Role, err = entities.ParseRole(role); err != nil {
		return entities.Access{}, err
	}

	if userID != nil {
		access.User = &entities.User{
			ID:       *userID,
			Email:    deref(email),
			FullName: deref(fullName),
			Language: deref(userLanguage),
		}
	}

	return access, nil
}

// paginate trims the look-ahead row and derives the next cursor from the
// last access kept.
func paginate(accesses []entities.Access, limit int) entities.AccessPage {
	if len(accesses) <= limit {
		return entities.AccessPage{Results: accesses}
	}

	accesses = accesses[:limit]
	last := accesses[len(accesses)-1]

	return entities.AccessPage{
		Results: accesses,
		Next:    entities.EncodeCursor(entities.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
