package models

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// steppedClock hands out timestamps one second apart.
func steppedClock() func() time.Time {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestCreateUserUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()

	if _, err := m.CreateUser(ctx, &User{Username: "jane", Email: "Jane@Example.com"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	tests := []struct {
		name string
		user User
		want error
	}{
		{"same email different case", User{Username: "other", Email: "jane@example.com"}, ErrDuplicateEmail},
		{"same username", User{Username: "jane", Email: "new@example.com"}, ErrDuplicateUsername},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.CreateUser(ctx, &tt.user); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := m.GetUserByEmail(ctx, " JANE@example.com "); err != nil {
		t.Errorf("lookup by email: %v", err)
	}
	if _, err := m.GetUser(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id err = %v", err)
	}
}

func TestCreateUserConcurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.CreateUser(ctx, &User{Username: uuid.NewString(), Email: "race@example.com"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("created = %d, want exactly 1", created)
	}
}

func TestListingsAreOwnedAndOrdered(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()
	m.now = steppedClock()

	owner, other := uuid.New(), uuid.New()
	for _, name := range []string{"first", "second", "third"} {
		if _, err := m.CreateWardrobeItem(ctx, &WardrobeItem{UserID: owner, Name: name, Category: CategoryTop}); err != nil {
			t.Fatalf("CreateWardrobeItem: %v", err)
		}
	}
	if _, err := m.CreateWardrobeItem(ctx, &WardrobeItem{UserID: other, Name: "theirs", Category: CategoryShoes}); err != nil {
		t.Fatalf("CreateWardrobeItem: %v", err)
	}

	items, err := m.ListWardrobeItems(ctx, owner)
	if err != nil {
		t.Fatalf("ListWardrobeItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Name != want {
			t.Errorf("items[%d] = %s, want %s", i, items[i].Name, want)
		}
		if items[i].Tags == nil || items[i].Colors == nil {
			t.Errorf("items[%d] has nil slices", i)
		}
	}

	empty, _ := m.ListOutfitsByUser(ctx, owner)
	if empty == nil || len(empty) != 0 {
		t.Errorf("empty listing = %#v, want non-nil empty slice", empty)
	}
}

func TestPartialUpdates(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()
	userID := uuid.New()

	if _, err := m.CreateProfile(ctx, DefaultProfile(userID)); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	bodyType := "athletic"
	profile, err := m.UpdateProfile(ctx, userID, ProfileUpdate{BodyType: &bodyType})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if *profile.BodyType != "athletic" || profile.StylePreferences.Formal != 50 || profile.ColorPersonality.Undertone != UndertoneNeutral {
		t.Errorf("profile = %+v", profile)
	}

	outfit, err := m.CreateOutfit(ctx, &Outfit{UserID: userID, Name: "Look", Colors: []string{"#000"}})
	if err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}
	fav := true
	updated, err := m.UpdateOutfit(ctx, outfit.ID, OutfitUpdate{IsFavorite: &fav})
	if err != nil {
		t.Fatalf("UpdateOutfit: %v", err)
	}
	if !updated.IsFavorite || updated.Name != "Look" {
		t.Errorf("outfit = %+v", updated)
	}

	if _, err := m.UpdateOutfit(ctx, uuid.New(), OutfitUpdate{IsFavorite: &fav}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown outfit err = %v", err)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()

	outfit, err := m.CreateOutfit(ctx, &Outfit{UserID: uuid.New(), Name: "Look", Colors: []string{"#111"}})
	if err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}
	outfit.Colors[0] = "#fff"
	outfit.Name = "mutated"

	stored, err := m.GetOutfit(ctx, outfit.ID)
	if err != nil {
		t.Fatalf("GetOutfit: %v", err)
	}
	if stored.Name != "Look" || stored.Colors[0] != "#111" {
		t.Errorf("stored outfit changed through a returned pointer: %+v", stored)
	}
}

func TestRateAnalysis(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()

	analysis, err := m.CreateAnalysis(ctx, &OutfitAnalysis{UserID: uuid.New(), ImageURL: "data:image/png;base64,AA=="})
	if err != nil {
		t.Fatalf("CreateAnalysis: %v", err)
	}
	if analysis.UserRating != nil {
		t.Fatal("new analysis already rated")
	}

	if _, err := m.RateAnalysis(ctx, analysis.ID, 6); err == nil {
		t.Error("rating 6 accepted")
	}
	rated, err := m.RateAnalysis(ctx, analysis.ID, 4)
	if err != nil {
		t.Fatalf("RateAnalysis: %v", err)
	}
	if rated.UserRating == nil || *rated.UserRating != 4 {
		t.Errorf("rating = %v", rated.UserRating)
	}
}
