package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/metrics"
	"github.com/joshua-takyi/wearorithm/internal/models"
	"github.com/joshua-takyi/wearorithm/internal/stylist"
)

const DefaultMaxImageBytes = 5 << 20

type AnalysisService struct {
	analysisRepo models.AnalysisRepo
	stylist      stylist.Stylist
	maxBytes     int64
	logger       *slog.Logger
}

func NewAnalysisService(analysisRepo models.AnalysisRepo, st stylist.Stylist, maxBytes int64, logger *slog.Logger) *AnalysisService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &AnalysisService{
		analysisRepo: analysisRepo,
		stylist:      st,
		maxBytes:     maxBytes,
		logger:       logger,
	}
}

func (s *AnalysisService) MaxBytes() int64 {
	return s.maxBytes
}

// CheckImage sniffs data and returns its MIME type. Anything that is not an
// image, or is larger than the limit, is rejected.
func (s *AnalysisService) CheckImage(data []byte) (string, error) {
	if len(data) == 0 {
		metrics.RecordUploadRejected("missing")
		return "", ErrNoImage
	}
	if int64(len(data)) > s.maxBytes {
		metrics.RecordUploadRejected("too_large")
		return "", ErrImageTooLarge
	}

	mimeType := mimetype.Detect(data).String()
	if !strings.HasPrefix(mimeType, "image/") {
		metrics.RecordUploadRejected("not_image")
		return "", ErrNotAnImage
	}
	return mimeType, nil
}

// Analyze validates the upload before the stylist is ever called, then stores
// the verdict with the image inlined as a data URL.
func (s *AnalysisService) Analyze(ctx context.Context, userID uuid.UUID, data []byte) (*models.OutfitAnalysis, error) {
	mimeType, err := s.CheckImage(data)
	if err != nil {
		return nil, err
	}

	result, err := s.stylist.AnalyzeImage(ctx, data, mimeType)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error analyzing outfit image", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	return s.analysisRepo.CreateAnalysis(ctx, &models.OutfitAnalysis{
		UserID:   userID,
		ImageURL: fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
		Analysis: *result,
	})
}

func (s *AnalysisService) List(ctx context.Context, userID uuid.UUID) ([]*models.OutfitAnalysis, error) {
	return s.analysisRepo.ListAnalyses(ctx, userID)
}
