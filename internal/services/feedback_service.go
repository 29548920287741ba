package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

type FeedbackService struct {
	feedbackRepo models.FeedbackRepo
	analysisRepo models.AnalysisRepo
	logger       *slog.Logger
}

func NewFeedbackService(feedbackRepo models.FeedbackRepo, analysisRepo models.AnalysisRepo, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

// Create stores the feedback. A rating on one of the user's own analyses is
// also copied onto that analysis.
func (s *FeedbackService) Create(ctx context.Context, userID uuid.UUID, req models.FeedbackRequest) (*models.UserFeedback, error) {
	feedback := &models.UserFeedback{
		UserID:     userID,
		OutfitID:   req.OutfitID,
		AnalysisID: req.AnalysisID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := models.Validate.Struct(feedback); err != nil {
		return nil, err
	}

	if req.AnalysisID != nil {
		if err := s.rateAnalysis(ctx, userID, *req.AnalysisID, req.Rating); err != nil {
			return nil, err
		}
	}

	return s.feedbackRepo.CreateFeedback(ctx, feedback)
}

func (s *FeedbackService) rateAnalysis(ctx context.Context, userID, analysisID uuid.UUID, rating int) error {
	analysis, err := s.analysisRepo.GetAnalysis(ctx, analysisID)
	if errors.Is(err, models.ErrNotFound) {
		s.logger.DebugContext(ctx, "Feedback references unknown analysis", "analysis_id", analysisID)
		return nil
	}
	if err != nil {
		return err
	}
	if analysis.UserID != userID {
		return nil
	}

	if _, err := s.analysisRepo.RateAnalysis(ctx, analysisID, rating); err != nil {
		return fmt.Errorf("failed to rate analysis: %w", err)
	}
	return nil
}

func (s *FeedbackService) List(ctx context.Context, userID uuid.UUID) ([]*models.UserFeedback, error) {
	return s.feedbackRepo.ListFeedback(ctx, userID)
}
