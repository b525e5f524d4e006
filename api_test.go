package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/chat"
	"github.com/dishalabs/disha-backend/internal/flows"
	"github.com/dishalabs/disha-backend/internal/logger"
	"github.com/dishalabs/disha-backend/internal/recommend"
)

type stubFlow struct {
	err error
}

func (s *stubFlow) CareerRecommendation(_ context.Context, input flows.RecommendationInput) (*flows.CareerRecommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	paths := make([]flows.CareerPath, 0, len(input.Fixed))
	for i, f := range input.Fixed {
		paths = append(paths, flows.CareerPath{ID: f.ID, Name: f.Name, MatchScore: 90 - i, Description: "d"})
	}
	return &flows.CareerRecommendation{
		PersonalityType: "Curious",
		TopCareerPaths:  paths,
		Roadmap:         flows.Roadmap{},
		MarketInsights:  flows.MarketInsights{DemandLevel: "high"},
		Synthesis:       "s",
	}, nil
}

type stubChatGen struct {
	reply string
	err   error
}

func (s *stubChatGen) Reply(context.Context, string, []flows.Turn) (string, error) {
	return s.reply, s.err
}

func newTestRouter(flow recommend.Flow, gen chat.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	cat := catalog.Builtin()
	h := NewHandler(
		log,
		nil, // db-backed routes are not exercised here
		cat,
		recommend.NewService(cat, flow, nil, log),
		chat.NewManager(gen),
		nil,
		nil,
	)
	return newRouter(h, "test")
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{reply: "hi"})
	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{reply: "hi"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", map[string]any{
		"classLevel":  "12",
		"stream":      "science",
		"quizAnswers": map[string]string{"interest": "engineering"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result recommend.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Fixed, catalog.DefaultListSize)
	require.Len(t, result.Recommendation.TopCareerPaths, flows.TopPathCount)
	for i, f := range result.Fixed {
		assert.Equal(t, f.ID, result.Recommendation.TopCareerPaths[i].ID)
	}
}

func TestRecommendationsRejectsInvalidProfile(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", map[string]any{
		"stream": "science",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsSurfacesGenerationFailure(t *testing.T) {
	router := newTestRouter(&stubFlow{err: &flows.GenerationError{Stage: "career-recommendation", Err: errors.New("down")}}, &stubChatGen{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", map[string]any{
		"classLevel": "10",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestChatSessionRoundTrip(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{reply: "Namaste! How can I help?"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat/sessions", map[string]any{
		"name": "Asha", "userType": "student", "classLevel": "12",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.SessionID)

	w = doJSON(t, router, http.MethodPost, "/api/v1/chat/sessions/"+created.SessionID+"/messages", map[string]any{
		"message": "Which stream should I pick?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/chat/sessions/"+created.SessionID+"/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Messages []chat.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Messages, 2)
	assert.Equal(t, chat.RoleUser, history.Messages[0].Role)
	assert.Equal(t, chat.RoleAssistant, history.Messages[1].Role)
}

func TestChatFailedTurnLeavesHistoryEmpty(t *testing.T) {
	gen := &stubChatGen{err: errors.New("provider down")}
	router := newTestRouter(&stubFlow{}, gen)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat/sessions", map[string]any{"name": "Ravi"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/api/v1/chat/sessions/"+created.SessionID+"/messages", map[string]any{
		"message": "hello",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/chat/sessions/"+created.SessionID+"/messages", nil)
	var history struct {
		Messages []chat.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Empty(t, history.Messages)
}

func TestChatUnknownSession(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{})
	w := doJSON(t, router, http.MethodPost, "/api/v1/chat/sessions/nope/messages", map[string]any{"message": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculatorEndpoints(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/calculators/emi", map[string]any{
		"principal": 120000, "annualRate": 0, "tenureMonths": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var emi struct {
		MonthlyPayment float64 `json:"monthlyPayment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &emi))
	assert.Equal(t, 10000.0, emi.MonthlyPayment)

	w = doJSON(t, router, http.MethodPost, "/api/v1/calculators/emi", map[string]any{
		"principal": 0, "annualRate": 9, "tenureMonths": 12,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/calculators/education-cost", map[string]any{
		"tuitionPerYear": 80000, "years": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var cost struct {
		TotalCost float64 `json:"totalCost"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cost))
	assert.Equal(t, 240000.0, cost.TotalCost)
}

func TestReportJobsDisabledWithoutQueue(t *testing.T) {
	router := newTestRouter(&stubFlow{}, &stubChatGen{})
	w := doJSON(t, router, http.MethodPost, "/api/v1/recommendations/reports", map[string]any{
		"userId":  "7cb7f75e-4331-4e4e-9522-6d4984c7b6a9",
		"profile": map[string]any{"classLevel": "12"},
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
