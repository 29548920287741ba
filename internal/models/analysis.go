package models

import (
	"time"

	"github.com/google/uuid"
)

type ColorAnalysis struct {
	DominantColors      []string `json:"dominantColors"`
	ComplementaryColors []string `json:"complementaryColors"`
}

type StyleMatch struct {
	Occasion   string `json:"occasion"`
	Mood       string `json:"mood"`
	Confidence int    `json:"confidence"`
}

// AnalysisResult is the structured verdict on an outfit photo.
type AnalysisResult struct {
	Suitability   int           `json:"suitability"`
	Feedback      string        `json:"feedback"`
	Suggestions   []string      `json:"suggestions"`
	ColorAnalysis ColorAnalysis `json:"colorAnalysis"`
	StyleMatch    StyleMatch    `json:"styleMatch"`
}

type OutfitAnalysis struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	ImageURL   string         `json:"imageUrl"`
	Analysis   AnalysisResult `json:"analysis"`
	UserRating *int           `json:"userRating"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func (a OutfitAnalysis) clone() OutfitAnalysis {
	a.Analysis.Suggestions = cloneStrings(a.Analysis.Suggestions)
	a.Analysis.ColorAnalysis.DominantColors = cloneStrings(a.Analysis.ColorAnalysis.DominantColors)
	a.Analysis.ColorAnalysis.ComplementaryColors = cloneStrings(a.Analysis.ColorAnalysis.ComplementaryColors)
	if a.UserRating != nil {
		r := *a.UserRating
		a.UserRating = &r
	}
	return a
}
