package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/logger"
	"github.com/dishalabs/disha-backend/internal/model"
)

type fakeBackend struct {
	jsonOut  string
	jsonErr  error
	textOut  string
	textErr  error
	lastUser string
}

func (f *fakeBackend) GenerateJSON(_ context.Context, _, user string, _ *genai.Schema) (string, error) {
	f.lastUser = user
	return f.jsonOut, f.jsonErr
}

func (f *fakeBackend) GenerateText(_ context.Context, _ string, _ []Turn) (string, error) {
	return f.textOut, f.textErr
}

func testClient(b backend) *Client {
	return newClientWithBackend(b, logger.NewNop())
}

func fixedThree() []catalog.FixedRecommendation {
	return []catalog.FixedRecommendation{
		{ID: "eng-btech", Name: "Engineering (B.Tech)", RankPosition: 1},
		{ID: "med-mbbs", Name: "Medicine (MBBS)", RankPosition: 2},
		{ID: "sci-bsc", Name: "B.Sc (Pure Sciences)", RankPosition: 3},
	}
}

func validRecommendation(fixed []catalog.FixedRecommendation) CareerRecommendation {
	paths := make([]CareerPath, 0, len(fixed))
	for _, f := range fixed {
		paths = append(paths, CareerPath{
			ID:          f.ID,
			Name:        f.Name,
			MatchScore:  90 - 10*len(paths),
			Description: "a good fit",
		})
	}
	return CareerRecommendation{
		PersonalityType: "Analytical Explorer",
		TopCareerPaths:  paths,
		EmergingFields:  []EmergingField{{Name: "AI Engineering", Description: "ML systems"}},
		Roadmap:         Roadmap{ShortTerm: []string{"focus on boards"}},
		MarketInsights:  MarketInsights{DemandLevel: "high"},
		Synthesis:       "Science suits you.",
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestCareerRecommendationPreservesFixedSlots(t *testing.T) {
	fixed := fixedThree()
	fb := &fakeBackend{jsonOut: mustJSON(t, validRecommendation(fixed))}
	c := testClient(fb)

	rec, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12", Stream: "science"},
		Fixed:   fixed,
	})
	require.NoError(t, err)
	require.Len(t, rec.TopCareerPaths, TopPathCount)
	for i, f := range fixed {
		assert.Equal(t, f.ID, rec.TopCareerPaths[i].ID)
		assert.Equal(t, f.Name, rec.TopCareerPaths[i].Name)
	}
}

func TestCareerRecommendationPromptCarriesFixedSlots(t *testing.T) {
	fixed := fixedThree()
	fb := &fakeBackend{jsonOut: mustJSON(t, validRecommendation(fixed))}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
		Fixed:   fixed,
	})
	require.NoError(t, err)
	for _, f := range fixed {
		assert.Contains(t, fb.lastUser, f.ID)
	}
	// rank order must survive into the prompt text
	assert.Less(t,
		strings.Index(fb.lastUser, "eng-btech"),
		strings.Index(fb.lastUser, "med-mbbs"),
	)
}

func TestCareerRecommendationRejectsReorderedSlots(t *testing.T) {
	fixed := fixedThree()
	rec := validRecommendation(fixed)
	rec.TopCareerPaths[0], rec.TopCareerPaths[1] = rec.TopCareerPaths[1], rec.TopCareerPaths[0]
	fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
		Fixed:   fixed,
	})
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestCareerRecommendationRejectsSubstitutedSlot(t *testing.T) {
	fixed := fixedThree()
	rec := validRecommendation(fixed)
	rec.TopCareerPaths[2] = CareerPath{ID: "other", Name: "Something Else", MatchScore: 50, Description: "x"}
	fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
		Fixed:   fixed,
	})
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestCareerRecommendationWithoutFixedSlots(t *testing.T) {
	rec := validRecommendation(fixedThree())
	fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
	c := testClient(fb)

	out, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "10"},
	})
	require.NoError(t, err)
	assert.Len(t, out.TopCareerPaths, TopPathCount)
}

func TestCareerRecommendationMatchScoreBounds(t *testing.T) {
	for _, score := range []int{-1, 101} {
		t.Run(fmt.Sprintf("score_%d", score), func(t *testing.T) {
			fixed := fixedThree()
			rec := validRecommendation(fixed)
			rec.TopCareerPaths[1].MatchScore = score
			fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
			c := testClient(fb)

			_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
				Profile: model.UserProfile{ClassLevel: "12"},
				Fixed:   fixed,
			})
			assert.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestCareerRecommendationTooManyEmergingFields(t *testing.T) {
	fixed := fixedThree()
	rec := validRecommendation(fixed)
	rec.EmergingFields = []EmergingField{
		{Name: "a", Description: "x"}, {Name: "b", Description: "y"}, {Name: "c", Description: "z"},
	}
	fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
		Fixed:   fixed,
	})
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestCareerRecommendationBadDemandLevel(t *testing.T) {
	fixed := fixedThree()
	rec := validRecommendation(fixed)
	rec.MarketInsights.DemandLevel = "stratospheric"
	fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
		Fixed:   fixed,
	})
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestCareerRecommendationProviderError(t *testing.T) {
	fb := &fakeBackend{jsonErr: errors.New("rate limited")}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
	})
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
}

func TestCareerRecommendationWrongPathCount(t *testing.T) {
	rec := validRecommendation(fixedThree())
	rec.TopCareerPaths = rec.TopCareerPaths[:2]
	fb := &fakeBackend{jsonOut: mustJSON(t, rec)}
	c := testClient(fb)

	_, err := c.CareerRecommendation(context.Background(), RecommendationInput{
		Profile: model.UserProfile{ClassLevel: "12"},
	})
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestDecodeCareerRecommendationStripsFences(t *testing.T) {
	raw := "```json\n" + mustJSON(t, validRecommendation(fixedThree())) + "\n```"
	rec, err := DecodeCareerRecommendation(raw)
	require.NoError(t, err)
	assert.Equal(t, "Analytical Explorer", rec.PersonalityType)
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSON("  {\"a\":1}  "))
}
