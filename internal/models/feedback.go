package models

import (
	"time"

	"github.com/google/uuid"
)

// UserFeedback is a 1..5 rating on an outfit or an analysis. Neither
// reference is checked against the owning user.
type UserFeedback struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId" validate:"required"`
	OutfitID   *uuid.UUID `json:"outfitId"`
	AnalysisID *uuid.UUID `json:"analysisId"`
	Rating     int        `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string    `json:"comment"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (f UserFeedback) clone() UserFeedback {
	if f.OutfitID != nil {
		v := *f.OutfitID
		f.OutfitID = &v
	}
	if f.AnalysisID != nil {
		v := *f.AnalysisID
		f.AnalysisID = &v
	}
	if f.Comment != nil {
		v := *f.Comment
		f.Comment = &v
	}
	return f
}
