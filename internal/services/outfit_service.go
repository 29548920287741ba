package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/stylist"
)

const DefaultRecommendationCount = 2

type OutfitService struct {
	outfitRepo models.OutfitRepo
	profiles   *ProfileService
	stylist    stylist.Stylist
	logger     *slog.Logger
}

func NewOutfitService(outfitRepo models.OutfitRepo, profiles *ProfileService, st stylist.Stylist, logger *slog.Logger) *OutfitService {
	return &OutfitService{
		outfitRepo: outfitRepo,
		profiles:   profiles,
		stylist:    st,
		logger:     logger,
	}
}

// Recommend asks the stylist for outfits matching the user's profile and
// saves every one of them.
func (s *OutfitService) Recommend(ctx context.Context, userID uuid.UUID, req models.RecommendationRequest) ([]*models.Outfit, error) {
	if req.Count == 0 {
		req.Count = DefaultRecommendationCount
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs, err := s.stylist.Recommend(ctx, stylist.RecommendRequest{
		Profile:  profile,
		Occasion: req.Occasion,
		Mood:     req.Mood,
		Count:    req.Count,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error generating outfit recommendations", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRecommendationFailed, err)
	}

	saved := make([]*models.Outfit, 0, len(recs))
	for _, rec := range recs {
		outfit, err := s.outfitRepo.CreateOutfit(ctx, &models.Outfit{
			UserID:          userID,
			Name:            rec.Name,
			Occasion:        rec.Occasion,
			Mood:            rec.Mood,
			Items:           rec.Items,
			Colors:          rec.Colors,
			ConfidenceScore: rec.ConfidenceScore,
			AIAnalysis: &models.AIAnalysis{
				Feedback:    rec.Feedback,
				Suggestions: rec.Suggestions,
				Impact:      rec.Impact,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save outfit: %w", err)
		}
		saved = append(saved, outfit)
	}
	return saved, nil
}

func (s *OutfitService) List(ctx context.Context, userID uuid.UUID) ([]*models.Outfit, error) {
	return s.outfitRepo.ListOutfitsByUser(ctx, userID)
}

// Get returns ErrNotFound for outfits that belong to someone else.
func (s *OutfitService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Outfit, error) {
	outfit, err := s.outfitRepo.GetOutfit(ctx, id)
	if err != nil {
		return nil, err
	}
	if outfit.UserID != userID {
		return nil, fmt.Errorf("outfit %s: %w", id, models.ErrNotFound)
	}
	return outfit, nil
}

func (s *OutfitService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.outfitRepo.DeleteOutfit(ctx, id)
}
