package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateReportResult = `-- name: CreateOrUpdateReportResult :exec
INSERT INTO report_results (
id, job_id, result)
VALUES ($1, $2, $3)
ON CONFLICT (job_id)
DO UPDATE SET
    result = EXCLUDED.result,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateReportResultParams struct {
	ID     uuid.UUID
	JobID  uuid.UUID
	Result json.RawMessage
}

func (q *Queries) CreateOrUpdateReportResult(ctx context.Context, arg CreateOrUpdateReportResultParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateReportResult, arg.ID, arg.JobID, arg.Result)
	return err
}

const getReportResultByJob = `-- name: GetReportResultByJob :one
SELECT id, job_id, result, created_at, updated_at FROM report_results WHERE job_id=$1
`

func (q *Queries) GetReportResultByJob(ctx context.Context, jobID uuid.UUID) (ReportResult, error) {
	row := q.db.QueryRowContext(ctx, getReportResultByJob, jobID)
	var i ReportResult
	err := row.Scan(&i.ID, &i.JobID, &i.Result, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}
