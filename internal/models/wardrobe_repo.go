package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type WardrobeRepo interface {
	ListWardrobeItems(ctx context.Context, userID uuid.UUID) ([]*WardrobeItem, error)
	GetWardrobeItem(ctx context.Context, id uuid.UUID) (*WardrobeItem, error)
	CreateWardrobeItem(ctx context.Context, item *WardrobeItem) (*WardrobeItem, error)
	UpdateWardrobeItem(ctx context.Context, id uuid.UUID, update WardrobeItemUpdate) (*WardrobeItem, error)
	DeleteWardrobeItem(ctx context.Context, id uuid.UUID) error
}

func (m *MemoryRepo) ListWardrobeItems(ctx context.Context, userID uuid.UUID) ([]*WardrobeItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return listWhere(m.wardrobe,
		func(w WardrobeItem) bool { return w.UserID == userID },
		WardrobeItem.clone,
		func(w WardrobeItem) time.Time { return w.CreatedAt },
		func(w WardrobeItem) uuid.UUID { return w.ID }), nil
}

func (m *MemoryRepo) GetWardrobeItem(ctx context.Context, id uuid.UUID) (*WardrobeItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.wardrobe[id]
	if !ok {
		return nil, fmt.Errorf("wardrobe item %s: %w", id, ErrNotFound)
	}
	out := item.clone()
	return &out, nil
}

func (m *MemoryRepo) CreateWardrobeItem(ctx context.Context, item *WardrobeItem) (*WardrobeItem, error) {
	if item == nil {
		return nil, fmt.Errorf("wardrobe item is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := item.clone()
	stored.ID = uuid.New()
	stored.CreatedAt = m.timestamp()
	m.wardrobe[stored.ID] = stored

	out := stored.clone()
	return &out, nil
}

func (m *MemoryRepo) UpdateWardrobeItem(ctx context.Context, id uuid.UUID, update WardrobeItemUpdate) (*WardrobeItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.wardrobe[id]
	if !ok {
		return nil, fmt.Errorf("wardrobe item %s: %w", id, ErrNotFound)
	}
	item.apply(update)
	m.wardrobe[id] = item

	out := item.clone()
	return &out, nil
}

func (m *MemoryRepo) DeleteWardrobeItem(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wardrobe[id]; !ok {
		return fmt.Errorf("wardrobe item %s: %w", id, ErrNotFound)
	}
	delete(m.wardrobe, id)
	return nil
}
