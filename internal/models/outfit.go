package models

import (
	"time"

	"github.com/google/uuid"
)

// OutfitItems are the slots of an outfit. Any slot may be empty.
type OutfitItems struct {
	Top         string   `json:"top,omitempty"`
	Bottom      string   `json:"bottom,omitempty"`
	Shoes       string   `json:"shoes,omitempty"`
	Accessories []string `json:"accessories,omitempty"`
}

type AIAnalysis struct {
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Impact      string   `json:"impact"`
}

type Outfit struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"userId" validate:"required"`
	Name            string      `json:"name" validate:"required"`
	Occasion        string      `json:"occasion" validate:"required"`
	Mood            string      `json:"mood" validate:"required"`
	Items           OutfitItems `json:"items"`
	Colors          []string    `json:"colors" validate:"required"`
	ConfidenceScore int         `json:"confidenceScore" validate:"min=0,max=100"`
	AIAnalysis      *AIAnalysis `json:"aiAnalysis"`
	IsFavorite      bool        `json:"isFavorite"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OutfitUpdate struct {
	Name       *string `json:"name"`
	Occasion   *string `json:"occasion"`
	Mood       *string `json:"mood"`
	IsFavorite *bool   `json:"isFavorite"`
}

func (o *Outfit) apply(u OutfitUpdate) {
	if u.Name != nil {
		o.Name = *u.Name
	}
	if u.Occasion != nil {
		o.Occasion = *u.Occasion
	}
	if u.Mood != nil {
		o.Mood = *u.Mood
	}
	if u.IsFavorite != nil {
		o.IsFavorite = *u.IsFavorite
	}
}

func (o Outfit) clone() Outfit {
	o.Colors = cloneStrings(o.Colors)
	if o.Items.Accessories != nil {
		o.Items.Accessories = cloneStrings(o.Items.Accessories)
	}
	if o.AIAnalysis != nil {
		a := *o.AIAnalysis
		a.Suggestions = cloneStrings(a.Suggestions)
		o.AIAnalysis = &a
	}
	return o
}
