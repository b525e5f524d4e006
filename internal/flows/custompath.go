package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dishalabs/disha-backend/internal/model"
)

// FallbackPolicy decides what a custom-path call does when generation
// fails. Both behaviors existed in the product; they are kept as explicit,
// separately testable policies chosen per call site.
type FallbackPolicy int

const (
	// FallbackNone propagates the GenerationError to the caller.
	FallbackNone FallbackPolicy = iota
	// FallbackStatic serves a canned payload flagged FromFallback.
	FallbackStatic
)

// CustomCareerPath is the structured answer to a free-text dream career.
type CustomCareerPath struct {
	Name              string   `json:"name"`
	Overview          string   `json:"overview"`
	RequiredEducation []string `json:"requiredEducation,omitempty"`
	KeySkills         []string `json:"keySkills,omitempty"`
	SalaryRange       string   `json:"salaryRange,omitempty"`
	Roadmap           []string `json:"roadmap,omitempty"`

	// FromFallback marks a canned payload served after a generation
	// failure. Never set on real model output.
	FromFallback bool `json:"fromFallback,omitempty"`
}

func (p *CustomCareerPath) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Overview) == "" {
		return fmt.Errorf("%w: custom path missing name or overview", ErrSchemaViolation)
	}
	return nil
}

// CustomCareerPath explores a career the catalog does not cover.
func (c *Client) CustomCareerPath(ctx context.Context, profile model.UserProfile, dream string, policy FallbackPolicy) (*CustomCareerPath, error) {
	path, err := c.customCareerPath(ctx, profile, dream)
	if err == nil {
		return path, nil
	}
	if policy == FallbackStatic {
		c.log.Warn("custom path generation failed, serving static fallback", "dream", dream, "error", err)
		return staticCustomPath(dream), nil
	}
	return nil, err
}

func (c *Client) customCareerPath(ctx context.Context, profile model.UserProfile, dream string) (*CustomCareerPath, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "A class %s student", profile.ClassLevel)
	if profile.Stream != "" {
		fmt.Fprintf(&b, " (%s stream)", profile.Stream)
	}
	fmt.Fprintf(&b, " wants to become: %q.\n", dream)
	b.WriteString("Describe this career for the Indian context: what it is, the education route after school, key skills, a realistic salary range in INR, and a step-by-step roadmap.")

	raw, err := c.backend.GenerateJSON(ctx, careerCounselorSystemPrompt, b.String(), customCareerPathSchema())
	if err != nil {
		return nil, generationErr("custom-career-path", err)
	}
	var path CustomCareerPath
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &path); err != nil {
		return nil, generationErr("custom-career-path", fmt.Errorf("%w: %v", ErrSchemaViolation, err))
	}
	if err := path.Validate(); err != nil {
		return nil, generationErr("custom-career-path", err)
	}
	return &path, nil
}

func staticCustomPath(dream string) *CustomCareerPath {
	name := strings.TrimSpace(dream)
	if name == "" {
		name = "Your chosen career"
	}
	return &CustomCareerPath{
		Name:     name,
		Overview: "We could not generate a detailed breakdown right now. The notes below are a general starting point; please try again in a little while for a personalised answer.",
		RequiredEducation: []string{
			"Finish class 12 in the stream closest to this field",
			"Look up undergraduate degrees and entrance exams that lead into it",
		},
		KeySkills: []string{
			"Strong fundamentals in the related school subjects",
			"Communication and consistent practice",
		},
		Roadmap: []string{
			"Talk to someone working in this field",
			"Shortlist 3-5 colleges or institutes that teach it",
			"Plan entrance exam preparation a year ahead",
		},
		FromFallback: true,
	}
}
