// internal/adapters/db/user_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// userRepository implements ports.UserRepository
type userRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *Database, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "user")),
	}
}

// UpsertByEmail inserts the account or refreshes name, role and password of
// the existing one. It reports whether a row was created.
func (r *userRepository) UpsertByEmail(ctx context.Context, u *domain.User) (bool, error) {
	var created bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name, role = EXCLUDED.role, password_hash = EXCLUDED.password_hash
		RETURNING id, created_at, (xmax = 0)`,
		u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.CreatedAt,
	).Scan(&u.ID, &u.CreatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert user: %w", err)
	}
	return created, nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, name, role, password_hash, created_at
		FROM users WHERE email = $1`, email)
	u, err := ScanOne(row, func(row pgx.Row) (*domain.User, error) {
		var u domain.User
		if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		return &u, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}

// DeletePendingBefore drops access requests older than cutoff
func (r *userRepository) DeletePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pending_users WHERE requested_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pending users: %w", err)
	}
	return tag.RowsAffected(), nil
}
