package db

import (
	"context"
	"database/sql"
)

type DB struct {
	*sql.DB
}

// Uniqueness of usernames and of (external_source, external_id) pairs
// is enforced here, at the store level. The application keeps its own
// pre-checks only to produce friendlier messages.
const migration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    username text,
    password_hash text,
    external_source text,
    external_id text,
    email text,
    image text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_unique
ON users (LOWER(username))
WHERE username IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS users_external_unique
ON users (external_source, external_id)
WHERE external_source IS NOT NULL;
`

func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, migration)
	return err
}
