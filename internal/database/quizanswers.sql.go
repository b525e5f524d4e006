package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const upsertQuizAnswers = `-- name: UpsertQuizAnswers :exec
INSERT INTO quiz_answers (
user_id, answers)
VALUES ($1, $2)
ON CONFLICT (user_id)
DO UPDATE SET
    answers = EXCLUDED.answers,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertQuizAnswersParams struct {
	UserID  uuid.UUID
	Answers json.RawMessage
}

func (q *Queries) UpsertQuizAnswers(ctx context.Context, arg UpsertQuizAnswersParams) error {
	_, err := q.db.ExecContext(ctx, upsertQuizAnswers, arg.UserID, arg.Answers)
	return err
}

const getQuizAnswers = `-- name: GetQuizAnswers :one
SELECT user_id, answers, updated_at FROM quiz_answers WHERE user_id=$1
`

func (q *Queries) GetQuizAnswers(ctx context.Context, userID uuid.UUID) (QuizAnswers, error) {
	row := q.db.QueryRowContext(ctx, getQuizAnswers, userID)
	var i QuizAnswers
	err := row.Scan(&i.UserID, &i.Answers, &i.UpdatedAt)
	return i, err
}
