package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID     uuid.UUID
	Name       string
	UserType   string
	ClassLevel string
	Stream     string
	Location   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type QuizAnswers struct {
	UserID    uuid.UUID
	Answers   json.RawMessage
	UpdatedAt time.Time
}

type SavedCollege struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CollegeName string
	CreatedAt   time.Time
}

type SavedCareerPath struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PathName  string
	Detail    json.RawMessage
	CreatedAt time.Time
}

type ReportJob struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
}

type ReportResult struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	Result    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
