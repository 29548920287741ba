package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AnalysisRepo interface {
	ListAnalyses(ctx context.Context, userID uuid.UUID) ([]*OutfitAnalysis, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*OutfitAnalysis, error)
	CreateAnalysis(ctx context.Context, analysis *OutfitAnalysis) (*OutfitAnalysis, error)
	RateAnalysis(ctx context.Context, id uuid.UUID, rating int) (*OutfitAnalysis, error)
}

func (m *MemoryRepo) ListAnalyses(ctx context.Context, userID uuid.UUID) ([]*OutfitAnalysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return listWhere(m.analyses,
		func(a OutfitAnalysis) bool { return a.UserID == userID },
		OutfitAnalysis.clone,
		func(a OutfitAnalysis) time.Time { return a.CreatedAt },
		func(a OutfitAnalysis) uuid.UUID { return a.ID }), nil
}

func (m *MemoryRepo) GetAnalysis(ctx context.Context, id uuid.UUID) (*OutfitAnalysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	analysis, ok := m.analyses[id]
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	out := analysis.clone()
	return &out, nil
}

func (m *MemoryRepo) CreateAnalysis(ctx context.Context, analysis *OutfitAnalysis) (*OutfitAnalysis, error) {
	if analysis == nil {
		return nil, fmt.Errorf("analysis is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := analysis.clone()
	stored.ID = uuid.New()
	stored.CreatedAt = m.timestamp()
	m.analyses[stored.ID] = stored

	out := stored.clone()
	return &out, nil
}

// RateAnalysis records the 1..5 star rating a user gave an analysis.
func (m *MemoryRepo) RateAnalysis(ctx context.Context, id uuid.UUID, rating int) (*OutfitAnalysis, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	analysis, ok := m.analyses[id]
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	analysis.UserRating = &rating
	m.analyses[id] = analysis

	out := analysis.clone()
	return &out, nil
}
