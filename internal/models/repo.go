package models

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var Validate = validator.New()

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already in use")
)

// MemoryRepo keeps every entity in process memory. All state is lost on
// restart. A single RWMutex serializes writers so concurrent updates to the
// same record cannot interleave.
type MemoryRepo struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]User
	profiles map[uuid.UUID]UserProfile // keyed by user id
	outfits  map[uuid.UUID]Outfit
	wardrobe map[uuid.UUID]WardrobeItem
	analyses map[uuid.UUID]OutfitAnalysis
	feedback map[uuid.UUID]UserFeedback

	now func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[uuid.UUID]User),
		profiles: make(map[uuid.UUID]UserProfile),
		outfits:  make(map[uuid.UUID]Outfit),
		wardrobe: make(map[uuid.UUID]WardrobeItem),
		analyses: make(map[uuid.UUID]OutfitAnalysis),
		feedback: make(map[uuid.UUID]UserFeedback),
		now:      time.Now,
	}
}

// timestamp returns the creation time for a new record. Must be called with mu held.
func (m *MemoryRepo) timestamp() time.Time {
	return m.now().UTC()
}

// sortByCreated orders listings oldest first; ties fall back to id so the
// order is stable across calls.
func sortByCreated[T any](items []T, created func(T) time.Time, id func(T) uuid.UUID) {
	slices.SortFunc(items, func(a, b T) int {
		if c := created(a).Compare(created(b)); c != 0 {
			return c
		}
		ia, ib := id(a), id(b)
		return slices.Compare(ia[:], ib[:])
	})
}

// listWhere copies the records of src accepted by keep, oldest first.
// Must be called with mu held.
func listWhere[T any](src map[uuid.UUID]T, keep func(T) bool, clone func(T) T, created func(T) time.Time, id func(T) uuid.UUID) []*T {
	items := make([]T, 0)
	for _, v := range src {
		if keep(v) {
			items = append(items, clone(v))
		}
	}
	sortByCreated(items, created, id)

	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
