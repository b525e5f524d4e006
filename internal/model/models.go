package model

// UserProfile is the matching input for one recommendation request. It is
// immutable for the duration of the request; the caller owns it.
type UserProfile struct {
	UserID      string            `json:"userId,omitempty"`
	Name        string            `json:"name,omitempty"`
	ClassLevel  string            `json:"classLevel"` // "10" or "12"
	Stream      string            `json:"stream,omitempty"`
	QuizAnswers map[string]string `json:"quizAnswers,omitempty"`
	Location    string            `json:"location,omitempty"`
}

// UserContext is the static context injected into every chat turn.
type UserContext struct {
	Name          string `json:"name"`
	UserType      string `json:"userType"` // "student" or "parent"
	ClassLevel    string `json:"classLevel,omitempty"`
	QuizCompleted bool   `json:"quizCompleted"`
	QuizSummary   string `json:"quizSummary,omitempty"`
}

// QuizQuestion is one generated aptitude-quiz question.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"` // "single_choice" or "text"
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	Category string   `json:"category"`
}
