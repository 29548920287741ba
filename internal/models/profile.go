package models

import (
	"slices"

	"github.com/google/uuid"
)

const (
	UndertoneWarm    = "warm"
	UndertoneCool    = "cool"
	UndertoneNeutral = "neutral"
)

// StylePreferences are slider weights, each 0..100.
type StylePreferences struct {
	Minimalist int `json:"minimalist" validate:"min=0,max=100"`
	BoldColors int `json:"boldColors" validate:"min=0,max=100"`
	Vintage    int `json:"vintage" validate:"min=0,max=100"`
	Formal     int `json:"formal" validate:"min=0,max=100"`
}

type ColorPersonality struct {
	Undertone       string   `json:"undertone" validate:"required,oneof=warm cool neutral"`
	PreferredColors []string `json:"preferredColors"`
}

type UserProfile struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"userId"`
	StylePreferences  *StylePreferences `json:"stylePreferences"`
	ColorPersonality  *ColorPersonality `json:"colorPersonality"`
	BodyType          *string           `json:"bodyType"`
	FavoriteOccasions []string          `json:"favoriteOccasions"`
	MoodPreferences   []string          `json:"moodPreferences"`
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	StylePreferences  *StylePreferences `json:"stylePreferences"`
	ColorPersonality  *ColorPersonality `json:"colorPersonality"`
	BodyType          *string           `json:"bodyType" validate:"omitempty,max=50"`
	FavoriteOccasions *[]string         `json:"favoriteOccasions"`
	MoodPreferences   *[]string         `json:"moodPreferences"`
}

// DefaultProfile is what every new account starts with.
func DefaultProfile(userID uuid.UUID) *UserProfile {
	return &UserProfile{
		UserID: userID,
		StylePreferences: &StylePreferences{
			Minimalist: 50,
			BoldColors: 50,
			Vintage:    50,
			Formal:     50,
		},
		ColorPersonality: &ColorPersonality{
			Undertone:       UndertoneNeutral,
			PreferredColors: []string{},
		},
		FavoriteOccasions: []string{},
		MoodPreferences:   []string{},
	}
}

func (p *UserProfile) apply(u ProfileUpdate) {
	if u.StylePreferences != nil {
		sp := *u.StylePreferences
		p.StylePreferences = &sp
	}
	if u.ColorPersonality != nil {
		cp := ColorPersonality{
			Undertone:       u.ColorPersonality.Undertone,
			PreferredColors: cloneStrings(u.ColorPersonality.PreferredColors),
		}
		p.ColorPersonality = &cp
	}
	if u.BodyType != nil {
		bt := *u.BodyType
		p.BodyType = &bt
	}
	if u.FavoriteOccasions != nil {
		p.FavoriteOccasions = cloneStrings(*u.FavoriteOccasions)
	}
	if u.MoodPreferences != nil {
		p.MoodPreferences = cloneStrings(*u.MoodPreferences)
	}
}

func (p UserProfile) clone() UserProfile {
	if p.StylePreferences != nil {
		sp := *p.StylePreferences
		p.StylePreferences = &sp
	}
	if p.ColorPersonality != nil {
		cp := *p.ColorPersonality
		cp.PreferredColors = cloneStrings(cp.PreferredColors)
		p.ColorPersonality = &cp
	}
	if p.BodyType != nil {
		bt := *p.BodyType
		p.BodyType = &bt
	}
	p.FavoriteOccasions = cloneStrings(p.FavoriteOccasions)
	p.MoodPreferences = cloneStrings(p.MoodPreferences)
	return p
}

// cloneStrings copies s, turning nil into an empty slice so JSON renders [].
func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
