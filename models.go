package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/database"
	"github.com/dishalabs/disha-backend/internal/logger"
	"github.com/dishalabs/disha-backend/internal/model"
)

const (
	reportQueue          = "reports"
	reportUpdateExchange = "report_updates"
)

const (
	statusQueued     = "queued"
	statusProcessing = "processing"
	statusCompleted  = "completed"
	statusFailed     = "failed"
)

// WorkerConfig carries the shared dependencies of the report worker pool.
type WorkerConfig struct {
	DB                  *database.Queries
	Catalog             *catalog.Catalog
	RabbitConn          *amqp.Connection
	RabbitMQURL         string
	AgentRunner         *runner.Runner
	AgentSessionService session.Service
	AgentName           string
	Log                 *logger.Logger
}

// ReportJobMessage is the payload published to the reports queue when a
// user requests an async counseling report.
type ReportJobMessage struct {
	ID        uuid.UUID         `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	UserID    uuid.UUID         `json:"user_id"`
	Profile   model.UserProfile `json:"profile"`
}
