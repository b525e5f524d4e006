package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/model"
)

// RecommendationInput carries the profile plus the deterministic short-list
// produced by the catalog pre-filter. Fixed may be empty, in which case the
// model picks its own top paths and the result is not reproducible.
type RecommendationInput struct {
	Profile model.UserProfile
	Fixed   []catalog.FixedRecommendation
}

type CareerPath struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	MatchScore    int      `json:"matchScore"`
	Description   string   `json:"description"`
	Pros          []string `json:"pros,omitempty"`
	Cons          []string `json:"cons,omitempty"`
	AverageSalary string   `json:"averageSalary,omitempty"`
	TopColleges   []string `json:"topColleges,omitempty"`
}

type EmergingField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WhyRelevant string `json:"whyRelevant,omitempty"`
}

type Roadmap struct {
	ShortTerm  []string `json:"shortTerm"`
	MediumTerm []string `json:"mediumTerm"`
	LongTerm   []string `json:"longTerm"`
}

type MarketInsights struct {
	DemandLevel   string   `json:"demandLevel"` // "low", "moderate" or "high"
	GrowthOutlook string   `json:"growthOutlook,omitempty"`
	KeySectors    []string `json:"keySectors,omitempty"`
}

// CareerRecommendation is the validated enrichment output.
type CareerRecommendation struct {
	PersonalityType string          `json:"personalityType"`
	TopCareerPaths  []CareerPath    `json:"topCareerPaths"`
	EmergingFields  []EmergingField `json:"emergingFields,omitempty"`
	Roadmap         Roadmap         `json:"roadmap"`
	MarketInsights  MarketInsights  `json:"marketInsights"`
	Synthesis       string          `json:"synthesis"`
}

// TopPathCount is the contractual length of TopCareerPaths.
const TopPathCount = 3

// MaxEmergingFields bounds the exploratory section.
const MaxEmergingFields = 2

// Validate checks the structural contract. It does not touch the fixed-slot
// identity rule; that needs the input and lives in enforceFixedSlots.
func (r *CareerRecommendation) Validate() error {
	if strings.TrimSpace(r.PersonalityType) == "" {
		return fmt.Errorf("%w: personalityType is empty", ErrSchemaViolation)
	}
	if len(r.TopCareerPaths) != TopPathCount {
		return fmt.Errorf("%w: topCareerPaths has %d entries, want %d", ErrSchemaViolation, len(r.TopCareerPaths), TopPathCount)
	}
	for i, p := range r.TopCareerPaths {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: topCareerPaths[%d] has no name", ErrSchemaViolation, i)
		}
		if p.MatchScore < 0 || p.MatchScore > 100 {
			return fmt.Errorf("%w: topCareerPaths[%d] matchScore %d out of [0,100]", ErrSchemaViolation, i, p.MatchScore)
		}
	}
	if len(r.EmergingFields) > MaxEmergingFields {
		return fmt.Errorf("%w: %d emergingFields, at most %d allowed", ErrSchemaViolation, len(r.EmergingFields), MaxEmergingFields)
	}
	for i, f := range r.EmergingFields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w: emergingFields[%d] has no name", ErrSchemaViolation, i)
		}
	}
	switch strings.ToLower(r.MarketInsights.DemandLevel) {
	case "low", "moderate", "high":
	default:
		return fmt.Errorf("%w: demandLevel %q not in enum", ErrSchemaViolation, r.MarketInsights.DemandLevel)
	}
	if strings.TrimSpace(r.Synthesis) == "" {
		return fmt.Errorf("%w: synthesis is empty", ErrSchemaViolation)
	}
	return nil
}

// enforceFixedSlots rejects output whose ranked slots differ from the
// pre-filter's list in identity or order. The model only adds detail to
// those slots; it never substitutes entries.
func enforceFixedSlots(rec *CareerRecommendation, fixed []catalog.FixedRecommendation) error {
	if len(fixed) == 0 {
		return nil
	}
	if len(fixed) != len(rec.TopCareerPaths) {
		return fmt.Errorf("%w: %d fixed slots but %d paths returned", ErrSchemaViolation, len(fixed), len(rec.TopCareerPaths))
	}
	for i, want := range fixed {
		got := rec.TopCareerPaths[i]
		if got.ID != "" && got.ID == want.ID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(got.Name), strings.TrimSpace(want.Name)) {
			continue
		}
		return fmt.Errorf("%w: slot %d is %q (%s), contract requires %q (%s)",
			ErrSchemaViolation, i+1, got.Name, got.ID, want.Name, want.ID)
	}
	return nil
}

// CareerRecommendation runs the enrichment flow. When input.Fixed is set the
// returned top paths keep its identity and order or the call fails; prose
// content is stochastic either way.
func (c *Client) CareerRecommendation(ctx context.Context, input RecommendationInput) (*CareerRecommendation, error) {
	raw, err := c.backend.GenerateJSON(ctx,
		careerCounselorSystemPrompt,
		careerRecommendationUserPrompt(input),
		careerRecommendationSchema(),
	)
	if err != nil {
		return nil, generationErr("career-recommendation", err)
	}
	rec, err := DecodeCareerRecommendation(raw)
	if err != nil {
		return nil, generationErr("career-recommendation", err)
	}
	if err := enforceFixedSlots(rec, input.Fixed); err != nil {
		c.log.Warn("model broke the fixed-slot contract", "error", err)
		return nil, generationErr("career-recommendation", err)
	}
	return rec, nil
}

// DecodeCareerRecommendation parses and validates a raw model response.
// Shared with the async report worker, which receives the same payload
// through the agent runner.
func DecodeCareerRecommendation(raw string) (*CareerRecommendation, error) {
	var rec CareerRecommendation
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// EnforceFixedSlots is the exported contract check for callers that decode
// outside this package (the report worker).
func EnforceFixedSlots(rec *CareerRecommendation, fixed []catalog.FixedRecommendation) error {
	return enforceFixedSlots(rec, fixed)
}

// RecommendationPrompt renders the user prompt for a recommendation input.
// The report worker reuses it; its agent carries the output schema in the
// agent instruction rather than a response schema.
func RecommendationPrompt(input RecommendationInput) string {
	return careerRecommendationUserPrompt(input)
}

const careerCounselorSystemPrompt = `You are an expert Indian career counselor for school students.
You understand class 10 and class 12 decision points, entrance exams (JEE, NEET, CLAT, CUET),
streams, and the Indian job market. Ground every answer in the student's profile.
Return only what the response schema allows. Use INR figures for salaries.`

func careerRecommendationUserPrompt(input RecommendationInput) string {
	var b strings.Builder
	p := input.Profile
	fmt.Fprintf(&b, "Student profile:\n- Class level: %s\n", p.ClassLevel)
	if p.Stream != "" {
		fmt.Fprintf(&b, "- Stream: %s\n", p.Stream)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	}
	if len(p.QuizAnswers) > 0 {
		b.WriteString("- Quiz answers:\n")
		for _, id := range sortedKeys(p.QuizAnswers) {
			fmt.Fprintf(&b, "    %s: %s\n", id, p.QuizAnswers[id])
		}
	}
	if len(input.Fixed) > 0 {
		b.WriteString("\nThe ranked career paths below are FIXED. ")
		b.WriteString("Slot order and identity must be preserved exactly; copy each id and name unchanged. ")
		b.WriteString("Only add description, pros, cons, salary and colleges to each slot.\n")
		for _, f := range input.Fixed {
			fmt.Fprintf(&b, "%d. %s (id: %s)\n", f.RankPosition, f.Name, f.ID)
		}
	} else {
		b.WriteString("\nChoose the 3 best-fitting career paths yourself, ranked by fit.\n")
	}
	b.WriteString("\nAlso suggest up to 2 emerging fields outside the ranked list, a preparation roadmap, market insights, and a short synthesis.")
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
