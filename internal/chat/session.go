package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dishalabs/disha-backend/internal/flows"
	"github.com/dishalabs/disha-backend/internal/model"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrTurnInFlight is returned when a turn is submitted while a previous one
// is still awaiting the provider. The session stays unchanged.
var ErrTurnInFlight = errors.New("a chat turn is already in flight for this session")

// ErrEmptyMessage rejects blank submissions before any provider call.
var ErrEmptyMessage = errors.New("chat message is empty")

// DefaultMaxHistory is how many recent messages survive truncation.
const DefaultMaxHistory = 20

// DefaultTurnTimeout bounds one generation call.
const DefaultTurnTimeout = 60 * time.Second

// Message is one turn in a session's history. History is append-only and
// never reordered.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Generator produces one assistant reply for an assembled request.
type Generator interface {
	Reply(ctx context.Context, system string, turns []flows.Turn) (string, error)
}

// Session holds one user's conversation. History lives only as long as the
// session object; nothing is persisted. A session must not be shared
// between users, but its methods are safe to call concurrently.
type Session struct {
	ID      string
	userCtx model.UserContext
	gen     Generator

	maxHistory  int
	turnTimeout time.Duration

	mu       sync.Mutex
	history  []Message
	inFlight bool
}

// Send runs one turn: assemble context, call the provider, append both the
// user message and the reply. On any failure the history is left exactly as
// it was, so the user can resubmit without losing context. Only one turn
// may be in flight at a time.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return Message{}, ErrTurnInFlight
	}
	s.inFlight = true
	turns := s.assembleLocked(text)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, s.turnTimeout)
	defer cancel()

	// Stamp the user message now; the provider call below can take a while
	// and the history must record when the user actually sent it.
	submittedAt := time.Now()

	replyText, err := s.gen.Reply(ctx, s.systemPrompt(), turns)
	if err != nil {
		return Message{}, fmt.Errorf("chat turn failed: %w", err)
	}

	userMsg := Message{Role: RoleUser, Content: text, Timestamp: submittedAt}
	reply := Message{Role: RoleAssistant, Content: replyText, Timestamp: time.Now()}

	s.mu.Lock()
	s.history = append(s.history, userMsg, reply)
	s.mu.Unlock()
	return reply, nil
}

// History returns a copy of the session history in order.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// assembleLocked builds the outbound turn list: the most recent history
// plus the new user message. Truncation drops oldest messages first; the
// new user message is always last and never dropped. Caller holds s.mu.
func (s *Session) assembleLocked(text string) []flows.Turn {
	history := s.history
	if keep := s.maxHistory - 1; len(history) > keep {
		history = history[len(history)-keep:]
	}
	turns := make([]flows.Turn, 0, len(history)+1)
	for _, m := range history {
		turns = append(turns, flows.Turn{Role: m.Role, Content: m.Content})
	}
	return append(turns, flows.Turn{Role: RoleUser, Content: text})
}

func (s *Session) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are Disha, a warm and practical AI career counselor for Indian school students and their parents. ")
	b.WriteString("Answer in simple English, keep replies short, and ground advice in the Indian education system (streams, boards, entrance exams, colleges).\n\n")
	b.WriteString("About this user:\n")
	if s.userCtx.Name != "" {
		fmt.Fprintf(&b, "- Name: %s\n", s.userCtx.Name)
	}
	if s.userCtx.UserType != "" {
		fmt.Fprintf(&b, "- They are a: %s\n", s.userCtx.UserType)
	}
	if s.userCtx.ClassLevel != "" {
		fmt.Fprintf(&b, "- Class level: %s\n", s.userCtx.ClassLevel)
	}
	if s.userCtx.QuizCompleted {
		b.WriteString("- They have completed the aptitude quiz.\n")
		if s.userCtx.QuizSummary != "" {
			fmt.Fprintf(&b, "- Quiz summary: %s\n", s.userCtx.QuizSummary)
		}
	} else {
		b.WriteString("- They have not taken the aptitude quiz yet; suggest it when career fit comes up.\n")
	}
	return b.String()
}
