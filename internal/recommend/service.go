// Package recommend couples the deterministic catalog pre-filter to the
// generative enrichment flow and enforces the contract between them.
package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/flows"
	"github.com/dishalabs/disha-backend/internal/logger"
	"github.com/dishalabs/disha-backend/internal/model"
)

// ErrInvalidProfile rejects malformed input before any generation call.
var ErrInvalidProfile = errors.New("invalid user profile")

// DefaultCacheTTL bounds how long an enriched recommendation is reused.
const DefaultCacheTTL = 6 * time.Hour

// Flow is the generative side of the recommendation contract.
type Flow interface {
	CareerRecommendation(ctx context.Context, input flows.RecommendationInput) (*flows.CareerRecommendation, error)
}

// cache is the read-through store boundary. A miss is reported as
// redis.Nil regardless of the backing implementation.
type cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisCache struct {
	client *redis.Client
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return r.client.Get(ctx, key).Bytes()
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Result pairs the enriched output with the deterministic short-list it was
// built from.
type Result struct {
	Fixed          []catalog.FixedRecommendation `json:"fixedRecommendations"`
	Recommendation *flows.CareerRecommendation   `json:"recommendation"`
	FromCache      bool                          `json:"fromCache,omitempty"`
}

// Service runs one recommendation request end to end. The catalog is
// read-only and shared; everything else is per-request.
type Service struct {
	catalog  *catalog.Catalog
	flow     Flow
	cache    cache // nil disables caching
	cacheTTL time.Duration
	log      *logger.Logger
}

func NewService(cat *catalog.Catalog, flow Flow, client *redis.Client, log *logger.Logger) *Service {
	var c cache
	if client != nil {
		c = &redisCache{client: client}
	}
	return newServiceWithCache(cat, flow, c, log)
}

// newServiceWithCache is the test seam.
func newServiceWithCache(cat *catalog.Catalog, flow Flow, c cache, log *logger.Logger) *Service {
	return &Service{
		catalog:  cat,
		flow:     flow,
		cache:    c,
		cacheTTL: DefaultCacheTTL,
		log:      log,
	}
}

// ValidateProfile applies the synchronous input checks shared by the HTTP
// handler and the report worker.
func ValidateProfile(p model.UserProfile) error {
	switch p.ClassLevel {
	case "10", "12":
		return nil
	case "":
		return fmt.Errorf("%w: classLevel is required", ErrInvalidProfile)
	default:
		return fmt.Errorf("%w: classLevel must be \"10\" or \"12\", got %q", ErrInvalidProfile, p.ClassLevel)
	}
}

// Recommend validates the profile, runs the pre-filter, and hands its fixed
// short-list to the enrichment flow. Cached results are keyed by a profile
// digest so identical profiles reuse one enrichment within the TTL; a cache
// hit is only served when its fixed slots still match the pre-filter.
func (s *Service) Recommend(ctx context.Context, profile model.UserProfile) (*Result, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	fixed, err := s.catalog.TopMatches(profile, catalog.DefaultListSize)
	if err != nil {
		return nil, err
	}

	key := cacheKey(profile)
	if cached := s.fromCache(ctx, key, fixed); cached != nil {
		return cached, nil
	}

	rec, err := s.flow.CareerRecommendation(ctx, flows.RecommendationInput{
		Profile: profile,
		Fixed:   fixed,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Fixed: fixed, Recommendation: rec}
	s.toCache(ctx, key, result)
	return result, nil
}

// FixedFor exposes the bare pre-filter output, used by callers that enrich
// elsewhere (the async report worker).
func (s *Service) FixedFor(profile model.UserProfile) ([]catalog.FixedRecommendation, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	return s.catalog.TopMatches(profile, catalog.DefaultListSize)
}

func (s *Service) fromCache(ctx context.Context, key string, fixed []catalog.FixedRecommendation) *Result {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("recommendation cache read failed", "error", err)
		}
		return nil
	}
	var cached Result
	if err := json.Unmarshal(raw, &cached); err != nil {
		s.log.Warn("dropping corrupt cache entry", "key", key, "error", err)
		return nil
	}
	if cached.Recommendation == nil || cached.Recommendation.Validate() != nil {
		return nil
	}
	// a catalog update may have changed the short-list since this entry
	// was written
	if flows.EnforceFixedSlots(cached.Recommendation, fixed) != nil {
		return nil
	}
	cached.Fixed = fixed
	cached.FromCache = true
	return &cached
}

func (s *Service) toCache(ctx context.Context, key string, result *Result) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn("recommendation cache write failed", "error", err)
	}
}

// cacheKey digests the matching-relevant profile fields. json.Marshal sorts
// map keys, so equal profiles always hash the same.
func cacheKey(p model.UserProfile) string {
	p.UserID = ""
	p.Name = ""
	raw, _ := json.Marshal(p)
	sum := sha256.Sum256(raw)
	return "disha:rec:" + hex.EncodeToString(sum[:])
}
