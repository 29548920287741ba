package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FirstName       string `json:"firstName" binding:"required,max=100"`
	LastName        string `json:"lastName" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RecommendationRequest asks for Count outfits; Count defaults to 2.
type RecommendationRequest struct {
	Occasion string `json:"occasion" binding:"required"`
	Mood     string `json:"mood" binding:"required"`
	Count    int    `json:"count" binding:"omitempty,min=1,max=6"`
}

type FavoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" binding:"required"`
}

type FeedbackRequest struct {
	OutfitID   *uuid.UUID `json:"outfitId"`
	AnalysisID *uuid.UUID `json:"analysisId"`
	Rating     int        `json:"rating" binding:"required,min=1,max=5"`
	Comment    *string    `json:"comment" binding:"omitempty,max=1000"`
}

type WardrobeItemRequest struct {
	Name      string     `json:"name" binding:"required,max=200"`
	Category  string     `json:"category" binding:"required,oneof=top bottom shoes accessory"`
	Colors    []string   `json:"colors" binding:"required"`
	ImageURL  *string    `json:"imageUrl"`
	Brand     *string    `json:"brand"`
	Size      *string    `json:"size"`
	Purchased *time.Time `json:"purchased"`
	Tags      []string   `json:"tags"`
}
