package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	CreateProfile(ctx context.Context, profile *UserProfile) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*UserProfile, error)
}

func (m *MemoryRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}
	out := profile.clone()
	return &out, nil
}

// CreateProfile stores profile as the single profile of its user, replacing
// any earlier one.
func (m *MemoryRepo) CreateProfile(ctx context.Context, profile *UserProfile) (*UserProfile, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is nil")
	}
	if profile.UserID == uuid.Nil {
		return nil, fmt.Errorf("profile has no user id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := profile.clone()
	stored.ID = uuid.New()
	m.profiles[stored.UserID] = stored

	out := stored.clone()
	return &out, nil
}

func (m *MemoryRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}
	profile.apply(update)
	m.profiles[userID] = profile

	out := profile.clone()
	return &out, nil
}
