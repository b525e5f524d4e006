package flows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishalabs/disha-backend/internal/model"
)

func TestQuizQuestionsHappyPath(t *testing.T) {
	fb := &fakeBackend{jsonOut: `{"questions":[
		{"id":"q1","question":"Which subject do you enjoy most?","type":"single_choice","options":["Maths","Biology","History"],"required":true,"category":"interests"},
		{"id":"q2","question":"Describe a project you are proud of.","type":"text","required":false,"category":"strengths"}
	]}`}
	c := testClient(fb)

	set, err := c.QuizQuestions(context.Background(), "10", 2)
	require.NoError(t, err)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, "q1", set.Questions[0].ID)
	assert.Equal(t, "single_choice", set.Questions[0].Type)
}

func TestQuizSetValidate(t *testing.T) {
	cases := []struct {
		name string
		set  QuizSet
	}{
		{"empty", QuizSet{}},
		{"missing id", QuizSet{Questions: []model.QuizQuestion{{Question: "x", Type: "text", Category: "c"}}}},
		{"duplicate id", QuizSet{Questions: []model.QuizQuestion{
			{ID: "q1", Question: "x", Type: "text", Category: "c"},
			{ID: "q1", Question: "y", Type: "text", Category: "c"},
		}}},
		{"single_choice without options", QuizSet{Questions: []model.QuizQuestion{
			{ID: "q1", Question: "x", Type: "single_choice", Category: "c"},
		}}},
		{"unknown type", QuizSet{Questions: []model.QuizQuestion{
			{ID: "q1", Question: "x", Type: "range", Category: "c"},
		}}},
		{"missing category", QuizSet{Questions: []model.QuizQuestion{
			{ID: "q1", Question: "x", Type: "text"},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.set.Validate(), ErrSchemaViolation)
		})
	}
}

func TestQuizQuestionsBadPayloadRejected(t *testing.T) {
	fb := &fakeBackend{jsonOut: `{"questions":[{"id":"q1","question":"x","type":"multiple_choice","category":"c"}]}`}
	c := testClient(fb)

	_, err := c.QuizQuestions(context.Background(), "12", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}
