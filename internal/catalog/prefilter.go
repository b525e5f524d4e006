package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dishalabs/disha-backend/internal/model"
)

// ErrInsufficientCatalog is returned when the catalog itself holds fewer
// entries than the requested list size, so not even popularity padding can
// fill it. A thin matching subset alone never produces this error.
var ErrInsufficientCatalog = errors.New("catalog has too few entries to build a recommendation list")

// FixedRecommendation is one slot of the deterministic short-list. The
// generative layer is bound to keep its identity and rank position.
type FixedRecommendation struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RankPosition  int    `json:"rankPosition"`
	LowConfidence bool   `json:"lowConfidence,omitempty"`
}

// DefaultListSize is the short-list length the enrichment contract expects.
const DefaultListSize = 3

// TopMatches ranks the catalog against a profile and returns exactly n
// distinct entries.
//
// Ordering rule (fixed, relied upon by the enrichment contract):
// entries are ordered by match score, descending; ties keep catalog
// insertion order. When fewer than n entries score above zero, the list is
// padded with the most popular remaining class-eligible entries, flagged
// LowConfidence, so callers always receive a full list.
func (c *Catalog) TopMatches(profile model.UserProfile, n int) ([]FixedRecommendation, error) {
	if n <= 0 {
		n = DefaultListSize
	}
	if len(c.entries) < n {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCatalog, len(c.entries), n)
	}

	type scored struct {
		idx   int
		score int
	}
	ranked := make([]scored, 0, len(c.entries))
	for i, e := range c.entries {
		s := matchScore(e, profile)
		if s > 0 {
			ranked = append(ranked, scored{idx: i, score: s})
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	out := make([]FixedRecommendation, 0, n)
	taken := make(map[string]bool, n)
	for _, r := range ranked {
		if len(out) == n {
			break
		}
		e := c.entries[r.idx]
		if taken[e.ID] {
			continue
		}
		taken[e.ID] = true
		out = append(out, FixedRecommendation{ID: e.ID, Name: e.Name, RankPosition: len(out) + 1})
	}

	if len(out) < n {
		for _, e := range c.popularDefaults(profile.ClassLevel) {
			if len(out) == n {
				break
			}
			if taken[e.ID] {
				continue
			}
			taken[e.ID] = true
			out = append(out, FixedRecommendation{
				ID:            e.ID,
				Name:          e.Name,
				RankPosition:  len(out) + 1,
				LowConfidence: true,
			})
		}
	}
	if len(out) < n {
		return nil, fmt.Errorf("%w: have %d distinct, need %d", ErrInsufficientCatalog, len(out), n)
	}
	return out, nil
}

// matchScore counts matching signals between an entry and a profile.
// Class-level mismatch disqualifies the entry outright; a stream match
// counts double because it is the strongest explicit signal.
func matchScore(e Entry, p model.UserProfile) int {
	if !classEligible(e, p.ClassLevel) {
		return 0
	}
	score := 0
	if p.Stream != "" && e.TargetStream != "" && strings.EqualFold(e.TargetStream, p.Stream) {
		score += 2
	}
	for _, answer := range p.QuizAnswers {
		for _, word := range strings.Fields(strings.ToLower(answer)) {
			if hasTag(e, word) {
				score++
			}
		}
	}
	if p.Location != "" && hasTag(e, strings.ToLower(p.Location)) {
		score++
	}
	return score
}

func classEligible(e Entry, classLevel string) bool {
	if classLevel == "" || e.TargetClass == "" || e.TargetClass == "both" {
		return true
	}
	return e.TargetClass == classLevel
}

func hasTag(e Entry, word string) bool {
	word = strings.Trim(word, ".,!?;:")
	if word == "" {
		return false
	}
	for _, t := range e.Tags {
		if strings.EqualFold(t, word) {
			return true
		}
	}
	return false
}

// popularDefaults returns class-eligible entries by descending popularity,
// then everything else, for low-confidence padding.
func (c *Catalog) popularDefaults(classLevel string) []Entry {
	eligible := make([]Entry, 0, len(c.entries))
	rest := make([]Entry, 0)
	for _, e := range c.entries {
		if classEligible(e, classLevel) {
			eligible = append(eligible, e)
		} else {
			rest = append(rest, e)
		}
	}
	byPopularity := func(list []Entry) {
		sort.SliceStable(list, func(a, b int) bool {
			return list[a].Popularity > list[b].Popularity
		})
	}
	byPopularity(eligible)
	byPopularity(rest)
	return append(eligible, rest...)
}
