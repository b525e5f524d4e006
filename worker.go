package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/database"
	"github.com/dishalabs/disha-backend/internal/flows"
	"github.com/dishalabs/disha-backend/internal/recommend"
	"github.com/google/uuid"
)

// runReportJob produces one counseling report: deterministic pre-filter,
// agent enrichment bound to the fixed slots, then persistence. Network and
// DB edges are retried selectively; the agent output contract is not.
func runReportJob(job ReportJobMessage, workerConfig *WorkerConfig) error {
	ctx := context.Background()

	if err := recommend.ValidateProfile(job.Profile); err != nil {
		return fmt.Errorf("invalid profile on job %v: %w", job.ID, err)
	}

	fixed, err := workerConfig.Catalog.TopMatches(job.Profile, catalog.DefaultListSize)
	if err != nil {
		return fmt.Errorf("pre-filter failed for job %v: %w", job.ID, err)
	}

	// create an agent session
	agentSession, err := workerConfig.AgentSessionService.Create(ctx, &session.CreateRequest{
		AppName:   workerConfig.AgentName,
		UserID:    job.UserID.String(),
		SessionID: job.ID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to create agent session: %w", err)
	}

	msg := flows.RecommendationPrompt(flows.RecommendationInput{
		Profile: job.Profile,
		Fixed:   fixed,
	})

	// retry the agent stream for transient provider failures
	finalOutput, streamErr := retry(2,
		func() (string, error) {
			stream := workerConfig.AgentRunner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
				Role: "user",
				Parts: []*genai.Part{
					{Text: msg},
				},
			}, agent.RunConfig{})

			var output string
			for event, err := range stream {
				if err != nil {
					return "", err
				}
				if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
					output = event.Content.Parts[0].Text
				}
			}

			if output == "" {
				return "", fmt.Errorf("empty agent response")
			}
			return output, nil
		})

	// Clean up the session regardless of the stream outcome.
	delErr := workerConfig.AgentSessionService.Delete(ctx, &session.DeleteRequest{
		AppName:   agentSession.Session.AppName(),
		UserID:    agentSession.Session.UserID(),
		SessionID: agentSession.Session.ID(),
	})
	if delErr != nil {
		workerConfig.Log.Warn("failed to delete agent session", "job_id", job.ID, "error", delErr)
	}

	if streamErr != nil {
		return fmt.Errorf("agent stream failed for job %v: %w", job.ID, streamErr)
	}

	rec, err := flows.DecodeCareerRecommendation(finalOutput)
	if err != nil {
		return fmt.Errorf("agent output rejected for job %v: %w", job.ID, err)
	}
	if err := flows.EnforceFixedSlots(rec, fixed); err != nil {
		return fmt.Errorf("agent broke the fixed-slot contract on job %v: %w", job.ID, err)
	}

	resultJSON, err := json.Marshal(recommend.Result{Fixed: fixed, Recommendation: rec})
	if err != nil {
		return fmt.Errorf("failed to marshal report result: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateReportResult(ctx, database.CreateOrUpdateReportResultParams{
			ID:     uuid.New(),
			JobID:  job.ID,
			Result: resultJSON,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save report result after retries: %w", err)
	}

	workerConfig.Log.Info("report generated", "job_id", job.ID)
	return nil
}

// decodeReportJob parses one queue message. Messages without a job ID are
// rejected so a failure status is never written against the zero UUID.
func decodeReportJob(body []byte) (ReportJobMessage, error) {
	var job ReportJobMessage
	if err := json.Unmarshal(body, &job); err != nil {
		return ReportJobMessage{}, fmt.Errorf("invalid job message: %w", err)
	}
	if job.ID == uuid.Nil {
		return ReportJobMessage{}, fmt.Errorf("job message has no id")
	}
	return job, nil
}

func (workerConfig *WorkerConfig) markFailed(jobID uuid.UUID) {
	err := workerConfig.DB.UpdateReportJobStatus(context.Background(), database.UpdateReportJobStatusParams{
		Status: statusFailed,
		ID:     jobID,
	})
	if err != nil {
		workerConfig.Log.Warn("failed to update job status", "job_id", jobID, "error", err)
	}
	update := map[string]any{
		"job_id":    jobID,
		"status":    statusFailed,
		"message":   "report generation failed",
		"timestamp": time.Now(),
	}
	if err := publishReportUpdate(workerConfig.RabbitConn, jobID.String(), update); err != nil {
		workerConfig.Log.Warn("failed to publish update", "job_id", jobID, "error", err)
	}
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	conn, err := amqp.Dial(workerConfig.RabbitMQURL)
	if err != nil {
		workerConfig.Log.Fatal("error dialling rabbitmq", "error", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		workerConfig.Log.Fatal("error opening rabbitmq channel", "error", err)
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		reportQueue, // queue name
		true,        // durable (survives broker restarts)
		false,       // auto-delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		workerConfig.Log.Fatal("failed to declare queue", "error", err)
	}

	msgs, err := ch.Consume(
		reportQueue, // queue name
		"",          // consumer tag
		true,        // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		workerConfig.Log.Fatal("error consuming rabbitmq messages", "error", err)
	}

	for msg := range msgs {
		job, err := decodeReportJob(msg.Body)
		if err != nil {
			// No usable job ID, so there is no status row to fail.
			workerConfig.Log.Error("dropping bad job message", "error", err)
			continue
		}
		workerConfig.Log.Info("processing report job", "worker", id+1, "job_id", job.ID)

		update := map[string]any{
			"job_id":    job.ID,
			"status":    statusProcessing,
			"message":   "report generation started",
			"timestamp": time.Now(),
		}
		if err := publishReportUpdate(workerConfig.RabbitConn, job.ID.String(), update); err != nil {
			workerConfig.Log.Warn("failed to publish update", "job_id", job.ID, "error", err)
		}
		err = workerConfig.DB.UpdateReportJobStatus(context.Background(), database.UpdateReportJobStatusParams{
			Status: statusProcessing,
			ID:     job.ID,
		})
		if err != nil {
			workerConfig.Log.Warn("failed to update job status", "job_id", job.ID, "error", err)
		}

		if err := runReportJob(job, workerConfig); err != nil {
			workerConfig.Log.Error("report job failed", "job_id", job.ID, "error", err)
			workerConfig.markFailed(job.ID)
			continue
		}

		err = workerConfig.DB.UpdateReportJobStatus(context.Background(), database.UpdateReportJobStatusParams{
			Status: statusCompleted,
			ID:     job.ID,
		})
		if err != nil {
			workerConfig.Log.Warn("failed to update job status", "job_id", job.ID, "error", err)
		}
		update = map[string]any{
			"job_id":    job.ID,
			"status":    statusCompleted,
			"message":   "report ready",
			"timestamp": time.Now(),
		}
		if err := publishReportUpdate(workerConfig.RabbitConn, job.ID.String(), update); err != nil {
			workerConfig.Log.Warn("failed to publish update", "job_id", job.ID, "error", err)
		}
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		workerConfig.Log.Info("report worker started", "worker", i+1)
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
