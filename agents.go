package main

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// Reports use a stronger model than the interactive flows. A single
// report call is slow anyway, so the latency cost does not matter here.
const defaultReportModel = "gemini-2.5-pro"

// GetAgent builds the counseling report agent. An empty modelName selects
// the default report model.
func GetAgent(apiKey, modelName, agentName string) (agent.Agent, error) {
	if modelName == "" {
		modelName = defaultReportModel
	}

	reportModel, err := gemini.NewModel(context.Background(), modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report model: %w", err)
	}

	counselor, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       reportModel,
		Description: "Generate Counseling Report",
		Instruction: reportPrompt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report agent: %w", err)
	}

	return counselor, nil
}
