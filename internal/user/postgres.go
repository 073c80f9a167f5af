package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mfndnc/lab-authentication-with-passport/internal/db"
)

// PostgresStore is the canonical identity record store.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, external_source, external_id, email, image)
		VALUES (NULLIF($1,''), NULLIF($2,''), NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), NULLIF($6,''))
		RETURNING id, created_at, updated_at
	`,
		u.Username,
		u.PasswordHash,
		u.ExternalSource,
		u.ExternalID,
		u.Email,
		u.Image,
	).Scan(&id, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return mapConstraint(err)
	}

	u.ID = id.String()
	return nil
}

func (s *PostgresStore) ByID(ctx context.Context, id string) (*User, error) {
	// An id that is not a uuid can never match a record.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return s.one(ctx, `WHERE id = $1`, id)
}

func (s *PostgresStore) ByUsername(ctx context.Context, username string) (*User, error) {
	return s.one(ctx, `WHERE LOWER(username) = LOWER($1)`, username)
}

func (s *PostgresStore) ByExternal(ctx context.Context, source, externalID string) (*User, error) {
	return s.one(ctx, `WHERE external_source = $1 AND external_id = $2`, source, externalID)
}

func (s *PostgresStore) one(ctx context.Context, where string, args ...any) (*User, error) {
	var u User
	var id uuid.UUID
	var username, hash, source, extID, email, image sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, external_source, external_id, email, image, created_at, updated_at
		FROM users `+where,
		args...,
	).Scan(&id, &username, &hash, &source, &extID, &email, &image, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: lookup failed: %w", err)
	}

	u.ID = id.String()
	u.Username = username.String
	u.PasswordHash = hash.String
	u.ExternalSource = source.String
	u.ExternalID = extID.String
	u.Email = email.String
	u.Image = image.String
	return &u, nil
}

func mapConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "users_username_lower_unique":
			return ErrUsernameTaken
		case "users_external_unique":
			return ErrDuplicateExternalID
		}
	}
	return fmt.Errorf("user: create failed: %w", err)
}
