package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createSavedCollege = `-- name: CreateSavedCollege :exec
INSERT INTO saved_colleges (
id, user_id, college_name)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, college_name) DO NOTHING
`

type CreateSavedCollegeParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CollegeName string
}

func (q *Queries) CreateSavedCollege(ctx context.Context, arg CreateSavedCollegeParams) error {
	_, err := q.db.ExecContext(ctx, createSavedCollege, arg.ID, arg.UserID, arg.CollegeName)
	return err
}

const getSavedCollegesByUser = `-- name: GetSavedCollegesByUser :many
SELECT id, user_id, college_name, created_at FROM saved_colleges WHERE user_id=$1 ORDER BY created_at
`

func (q *Queries) GetSavedCollegesByUser(ctx context.Context, userID uuid.UUID) ([]SavedCollege, error) {
	rows, err := q.db.QueryContext(ctx, getSavedCollegesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SavedCollege
	for rows.Next() {
		var i SavedCollege
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.CollegeName,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createSavedCareerPath = `-- name: CreateSavedCareerPath :exec
INSERT INTO saved_career_paths (
id, user_id, path_name, detail)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, path_name) DO UPDATE SET detail = EXCLUDED.detail
`

type CreateSavedCareerPathParams struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	PathName string
	Detail   json.RawMessage
}

func (q *Queries) CreateSavedCareerPath(ctx context.Context, arg CreateSavedCareerPathParams) error {
	_, err := q.db.ExecContext(ctx, createSavedCareerPath, arg.ID, arg.UserID, arg.PathName, arg.Detail)
	return err
}

const getSavedCareerPathsByUser = `-- name: GetSavedCareerPathsByUser :many
SELECT id, user_id, path_name, detail, created_at FROM saved_career_paths WHERE user_id=$1 ORDER BY created_at
`

func (q *Queries) GetSavedCareerPathsByUser(ctx context.Context, userID uuid.UUID) ([]SavedCareerPath, error) {
	rows, err := q.db.QueryContext(ctx, getSavedCareerPathsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SavedCareerPath
	for rows.Next() {
		var i SavedCareerPath
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.PathName,
			&i.Detail,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
