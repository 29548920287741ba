package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OutfitRepo interface {
	ListOutfitsByUser(ctx context.Context, userID uuid.UUID) ([]*Outfit, error)
	GetOutfit(ctx context.Context, id uuid.UUID) (*Outfit, error)
	CreateOutfit(ctx context.Context, outfit *Outfit) (*Outfit, error)
	UpdateOutfit(ctx context.Context, id uuid.UUID, update OutfitUpdate) (*Outfit, error)
	DeleteOutfit(ctx context.Context, id uuid.UUID) error
}

func (m *MemoryRepo) ListOutfitsByUser(ctx context.Context, userID uuid.UUID) ([]*Outfit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return listWhere(m.outfits,
		func(o Outfit) bool { return o.UserID == userID },
		Outfit.clone,
		func(o Outfit) time.Time { return o.CreatedAt },
		func(o Outfit) uuid.UUID { return o.ID }), nil
}

func (m *MemoryRepo) GetOutfit(ctx context.Context, id uuid.UUID) (*Outfit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outfit, ok := m.outfits[id]
	if !ok {
		return nil, fmt.Errorf("outfit %s: %w", id, ErrNotFound)
	}
	out := outfit.clone()
	return &out, nil
}

func (m *MemoryRepo) CreateOutfit(ctx context.Context, outfit *Outfit) (*Outfit, error) {
	if outfit == nil {
		return nil, fmt.Errorf("outfit is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := outfit.clone()
	stored.ID = uuid.New()
	stored.CreatedAt = m.timestamp()
	m.outfits[stored.ID] = stored

	out := stored.clone()
	return &out, nil
}

func (m *MemoryRepo) UpdateOutfit(ctx context.Context, id uuid.UUID, update OutfitUpdate) (*Outfit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outfit, ok := m.outfits[id]
	if !ok {
		return nil, fmt.Errorf("outfit %s: %w", id, ErrNotFound)
	}
	outfit.apply(update)
	m.outfits[id] = outfit

	out := outfit.clone()
	return &out, nil
}

func (m *MemoryRepo) DeleteOutfit(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.outfits[id]; !ok {
		return fmt.Errorf("outfit %s: %w", id, ErrNotFound)
	}
	delete(m.outfits, id)
	return nil
}
