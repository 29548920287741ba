package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryShoes     = "shoes"
	CategoryAccessory = "accessory"
)

type WardrobeItem struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId" validate:"required"`
	Name      string     `json:"name" validate:"required,max=200"`
	Category  string     `json:"category" validate:"required,oneof=top bottom shoes accessory"`
	Colors    []string   `json:"colors" validate:"required"`
	ImageURL  *string    `json:"imageUrl,omitempty"`
	Brand     *string    `json:"brand,omitempty"`
	Size      *string    `json:"size,omitempty"`
	Purchased *time.Time `json:"purchased,omitempty"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
}

type WardrobeItemUpdate struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Category  *string    `json:"category" validate:"omitempty,oneof=top bottom shoes accessory"`
	Colors    *[]string  `json:"colors"`
	ImageURL  *string    `json:"imageUrl"`
	Brand     *string    `json:"brand"`
	Size      *string    `json:"size"`
	Purchased *time.Time `json:"purchased"`
	Tags      *[]string  `json:"tags"`
}

func (w *WardrobeItem) apply(u WardrobeItemUpdate) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Category != nil {
		w.Category = *u.Category
	}
	if u.Colors != nil {
		w.Colors = cloneStrings(*u.Colors)
	}
	if u.ImageURL != nil {
		v := *u.ImageURL
		w.ImageURL = &v
	}
	if u.Brand != nil {
		v := *u.Brand
		w.Brand = &v
	}
	if u.Size != nil {
		v := *u.Size
		w.Size = &v
	}
	if u.Purchased != nil {
		v := *u.Purchased
		w.Purchased = &v
	}
	if u.Tags != nil {
		w.Tags = cloneStrings(*u.Tags)
	}
}

func (w WardrobeItem) clone() WardrobeItem {
	w.Colors = cloneStrings(w.Colors)
	w.Tags = cloneStrings(w.Tags)
	for _, p := range []**string{&w.ImageURL, &w.Brand, &w.Size} {
		if *p != nil {
			v := **p
			*p = &v
		}
	}
	if w.Purchased != nil {
		v := *w.Purchased
		w.Purchased = &v
	}
	return w
}
