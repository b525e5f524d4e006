package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishalabs/disha-backend/internal/model"
)

func TestDecodeReportJob(t *testing.T) {
	want := ReportJobMessage{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		UserID:    uuid.New(),
		Profile:   model.UserProfile{ClassLevel: "12", Stream: "science"},
	}
	body, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := decodeReportJob(body)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Profile, got.Profile)
}

func TestDecodeReportJobRejectsMalformedBody(t *testing.T) {
	_, err := decodeReportJob([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeReportJobRejectsMissingID(t *testing.T) {
	body, err := json.Marshal(map[string]any{
		"user_id": uuid.New(),
		"profile": model.UserProfile{ClassLevel: "10"},
	})
	require.NoError(t, err)

	_, err = decodeReportJob(body)
	assert.Error(t, err, "a message without a job id must be dropped, not marked failed")
}
