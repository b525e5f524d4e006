package database

import (
	"context"

	"github.com/google/uuid"
)

const createReportJob = `-- name: CreateReportJob :exec
INSERT INTO report_jobs (
id, user_id, status)
VALUES ($1, $2, $3)
`

type CreateReportJobParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status string
}

func (q *Queries) CreateReportJob(ctx context.Context, arg CreateReportJobParams) error {
	_, err := q.db.ExecContext(ctx, createReportJob, arg.ID, arg.UserID, arg.Status)
	return err
}

const updateReportJobStatus = `-- name: UpdateReportJobStatus :exec
UPDATE report_jobs
SET status=$1
WHERE id=$2
`

type UpdateReportJobStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateReportJobStatus(ctx context.Context, arg UpdateReportJobStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateReportJobStatus, arg.Status, arg.ID)
	return err
}

const getReportJob = `-- name: GetReportJob :one
SELECT id, user_id, status, created_at FROM report_jobs WHERE id=$1
`

func (q *Queries) GetReportJob(ctx context.Context, id uuid.UUID) (ReportJob, error) {
	row := q.db.QueryRowContext(ctx, getReportJob, id)
	var i ReportJob
	err := row.Scan(&i.ID, &i.UserID, &i.Status, &i.CreatedAt)
	return i, err
}
