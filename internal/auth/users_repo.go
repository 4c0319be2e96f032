package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type UsersRepo struct {
	db db.Pool
}

func NewUsersRepo(db db.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.get(ctx, "email", email)
}

func (r *UsersRepo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	span.SetAttributes(attribute.String("user.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.get(ctx, "id", id)
}

func (r *UsersRepo) get(ctx context.Context, column, value string) (*User, error) {
	var u User
	err := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, nickname, role, state, created_at
		FROM app_user WHERE `+column+` = $1`,
		value,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nickname, &u.Role, &u.State, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return &u, nil
}

// Add stores a new user. The password must already be hashed.
func (r *UsersRepo) Add(ctx context.Context, u User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.State == "" {
		u.State = StateActive
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO app_user (id, email, password_hash, nickname, role, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, u.Nickname, u.Role, u.State, u.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}
