package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type UserRepo interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
}

func (m *MemoryRepo) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (m *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if user, ok := m.findByEmail(email); ok {
		return &user, nil
	}
	return nil, fmt.Errorf("user with email %q: %w", email, ErrNotFound)
}

func (m *MemoryRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if user, ok := m.findByUsername(username); ok {
		return &user, nil
	}
	return nil, fmt.Errorf("user with username %q: %w", username, ErrNotFound)
}

// CreateUser stores a new user. Email and username uniqueness is checked
// under the write lock, so two concurrent registrations cannot both win.
func (m *MemoryRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, fmt.Errorf("user is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.findByEmail(user.Email); taken {
		return nil, ErrDuplicateEmail
	}
	if _, taken := m.findByUsername(user.Username); taken {
		return nil, ErrDuplicateUsername
	}

	stored := *user
	stored.ID = uuid.New()
	stored.CreatedAt = m.timestamp()
	m.users[stored.ID] = stored

	return &stored, nil
}

// findByEmail scans every user; emails compare case-insensitively.
func (m *MemoryRepo) findByEmail(email string) (User, bool) {
	email = strings.TrimSpace(email)
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

func (m *MemoryRepo) findByUsername(username string) (User, bool) {
	for _, u := range m.users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}
