package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type FeedbackRepo interface {
	ListFeedback(ctx context.Context, userID uuid.UUID) ([]*UserFeedback, error)
	CreateFeedback(ctx context.Context, feedback *UserFeedback) (*UserFeedback, error)
}

func (m *MemoryRepo) ListFeedback(ctx context.Context, userID uuid.UUID) ([]*UserFeedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return listWhere(m.feedback,
		func(f UserFeedback) bool { return f.UserID == userID },
		UserFeedback.clone,
		func(f UserFeedback) time.Time { return f.CreatedAt },
		func(f UserFeedback) uuid.UUID { return f.ID }), nil
}

func (m *MemoryRepo) CreateFeedback(ctx context.Context, feedback *UserFeedback) (*UserFeedback, error) {
	if feedback == nil {
		return nil, fmt.Errorf("feedback is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := feedback.clone()
	stored.ID = uuid.New()
	stored.CreatedAt = m.timestamp()
	m.feedback[stored.ID] = stored

	out := stored.clone()
	return &out, nil
}
