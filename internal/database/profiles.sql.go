package database

import (
	"context"

	"github.com/google/uuid"
)

const upsertProfile = `-- name: UpsertProfile :exec
INSERT INTO profiles (
user_id, name, user_type, class_level, stream, location)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id)
DO UPDATE SET
    name = EXCLUDED.name,
    user_type = EXCLUDED.user_type,
    class_level = EXCLUDED.class_level,
    stream = EXCLUDED.stream,
    location = EXCLUDED.location,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertProfileParams struct {
	UserID     uuid.UUID
	Name       string
	UserType   string
	ClassLevel string
	Stream     string
	Location   string
}

func (q *Queries) UpsertProfile(ctx context.Context, arg UpsertProfileParams) error {
	_, err := q.db.ExecContext(ctx, upsertProfile,
		arg.UserID,
		arg.Name,
		arg.UserType,
		arg.ClassLevel,
		arg.Stream,
		arg.Location,
	)
	return err
}

const getProfile = `-- name: GetProfile :one
SELECT user_id, name, user_type, class_level, stream, location, created_at, updated_at FROM profiles WHERE user_id=$1
`

func (q *Queries) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	row := q.db.QueryRowContext(ctx, getProfile, userID)
	var i Profile
	err := row.Scan(
		&i.UserID,
		&i.Name,
		&i.UserType,
		&i.ClassLevel,
		&i.Stream,
		&i.Location,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
