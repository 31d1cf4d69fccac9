package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// SaveUser inserts a user. A taken email is a Conflict.
func (s *Storage) SaveUser(ctx context.Context, email domain.Email, passHash string) (domain.UserId, error) {
	return s.saveUser(ctx, s.db, email, passHash)
}

// User fetches a user by id. Used as the existence check before any scoped query.
func (s *Storage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	return s.user(ctx, s.db, id)
}

func (s *Storage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	return s.userByEmail(ctx, s.db, email)
}

func (s *Storage) saveUser(ctx context.Context, q sharedpg.Querier, email domain.Email, passHash string) (domain.UserId, error) {
	var id domain.UserId
	err := q.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`,
		email, passHash,
	).Scan(&id)
	if err != nil {
		if _, ok := sharedpg.UniqueViolation(err); ok {
			return 0, internal_errors.Conflict("email already exists")
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) user(ctx context.Context, q sharedpg.Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id,
	).Scan(&user.Id, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user by id: %w", err)
	}
	return user, nil
}

func (s *Storage) userByEmail(ctx context.Context, q sharedpg.Querier, email domain.Email) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email,
	).Scan(&user.Id, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user by email: %w", err)
	}
	return user, nil
}
