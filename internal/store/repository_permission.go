package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dbelyakov/go-market/internal/logger"
)

// permissionRepository is the PostgreSQL-backed implementation of
// [PermissionRepository]. Grants live in the "permissions" table; one row per
// (user, scope) pair.
type permissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPermissionRepository constructs a [PermissionRepository] backed by the
// provided database connection and logger.
func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePermissions inserts one grant row per scope for the given user.
// A call with no scopes is a no-op.
func (r *permissionRepository) CreatePermissions(ctx context.Context, userID int64, scopes ...string) error {
	log := logger.FromContext(ctx)

	if len(scopes) == 0 {
		return nil
	}

	builder := sq.Insert("permissions").
		Columns("user_id", "scope").
		PlaceholderFormat(sq.Dollar)
	for _, scope := range scopes {
		builder = builder.Values(userID, scope)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.CreatePermissions").Msg("error: building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*permissionRepository.CreatePermissions").Msg("error: inserting permissions")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindScopesByUserID returns every scope granted to the given user. A user
// without grants yields an empty slice, not an error.
func (r *permissionRepository) FindScopesByUserID(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findScopesByUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.FindScopesByUserID").Msg("error: querying scopes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var scopes []string
	for rows.Next() {
		var scope string
		if err := rows.Scan(&scope); err != nil {
			log.Err(err).Str("func", "*permissionRepository.FindScopesByUserID").Msg("error: scanning scope row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		scopes = append(scopes, scope)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return scopes, nil
}

// DeletePermissionsByUserID removes every grant owned by the given user.
// Used only as part of the account deletion cascade.
func (r *permissionRepository) DeletePermissionsByUserID(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deletePermissionsByUserID, userID); err != nil {
		log.Err(err).Str("func", "*permissionRepository.DeletePermissionsByUserID").Msg("error: deleting permissions")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
