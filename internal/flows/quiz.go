package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dishalabs/disha-backend/internal/model"
)

// MaxQuizQuestions bounds a generated quiz.
const MaxQuizQuestions = 15

// DefaultQuizLength is used when the caller does not ask for a count.
const DefaultQuizLength = 8

// QuizSet is a validated generated quiz.
type QuizSet struct {
	Questions []model.QuizQuestion `json:"questions"`
}

func (q *QuizSet) Validate() error {
	if len(q.Questions) == 0 || len(q.Questions) > MaxQuizQuestions {
		return fmt.Errorf("%w: quiz has %d questions, want 1..%d", ErrSchemaViolation, len(q.Questions), MaxQuizQuestions)
	}
	seen := make(map[string]bool, len(q.Questions))
	for i, qu := range q.Questions {
		if strings.TrimSpace(qu.ID) == "" || strings.TrimSpace(qu.Question) == "" {
			return fmt.Errorf("%w: question %d missing id or text", ErrSchemaViolation, i)
		}
		if seen[qu.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrSchemaViolation, qu.ID)
		}
		seen[qu.ID] = true
		switch qu.Type {
		case "single_choice":
			if len(qu.Options) < 2 {
				return fmt.Errorf("%w: question %q is single_choice with %d options", ErrSchemaViolation, qu.ID, len(qu.Options))
			}
		case "text":
		default:
			return fmt.Errorf("%w: question %q has unknown type %q", ErrSchemaViolation, qu.ID, qu.Type)
		}
		if strings.TrimSpace(qu.Category) == "" {
			return fmt.Errorf("%w: question %q has no category", ErrSchemaViolation, qu.ID)
		}
	}
	return nil
}

// QuizQuestions generates a class-appropriate aptitude quiz.
func (c *Client) QuizQuestions(ctx context.Context, classLevel string, count int) (*QuizSet, error) {
	if count <= 0 || count > MaxQuizQuestions {
		count = DefaultQuizLength
	}
	user := fmt.Sprintf(
		"Generate %d aptitude quiz questions for an Indian class %s student deciding on a career direction. "+
			"Mix single_choice and text questions. Categories should cover interests, strengths, work style and aspirations. "+
			"Use simple English a 15-17 year old understands. Give each question a short stable id like q1, q2.",
		count, classLevel,
	)
	raw, err := c.backend.GenerateJSON(ctx, careerCounselorSystemPrompt, user, quizQuestionsSchema())
	if err != nil {
		return nil, generationErr("quiz-questions", err)
	}
	var set QuizSet
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &set); err != nil {
		return nil, generationErr("quiz-questions", fmt.Errorf("%w: %v", ErrSchemaViolation, err))
	}
	if err := set.Validate(); err != nil {
		return nil, generationErr("quiz-questions", err)
	}
	return &set, nil
}
