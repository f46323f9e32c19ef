// Package memory holds in-process implementations of persistence interfaces.
package memory

import (
	"context"
	"slices"
	"sync"

	"livewell/internal/domain/entity"
	"livewell/internal/domain/repository"
)

// RecommendationStaging keeps the generated cycle in process memory. It is lost on restart.
type RecommendationStaging struct {
	mu   sync.Mutex
	recs []*entity.Recommendation
}

// NewRecommendationStaging creates an empty in-memory staging collection.
func NewRecommendationStaging() repository.RecommendationStaging {
	return &RecommendationStaging{}
}

// ReplaceAll swaps the staged set for a copy of recs.
func (s *RecommendationStaging) ReplaceAll(_ context.Context, recs []*entity.Recommendation) error {
	next := slices.Clone(recs)

	s.mu.Lock()
	s.recs = next
	s.mu.Unlock()

	return nil
}

// ClaimAll returns the staged set and leaves the collection empty.
func (s *RecommendationStaging) ClaimAll(_ context.Context) ([]*entity.Recommendation, error) {
	s.mu.Lock()
	claimed := s.recs
	s.recs = nil
	s.mu.Unlock()

	if claimed == nil {
		claimed = []*entity.Recommendation{}
	}

	return claimed, nil
}
