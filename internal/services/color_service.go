package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/wearorithm/internal/helpers"
	"github.com/joshua-takyi/wearorithm/internal/stylist"
)

type ColorService struct {
	stylist stylist.Stylist
	logger  *slog.Logger
}

func NewColorService(st stylist.Stylist, logger *slog.Logger) *ColorService {
	return &ColorService{stylist: st, logger: logger}
}

func (s *ColorService) Palette(ctx context.Context, baseColors []string) ([]string, error) {
	palette, err := s.stylist.Palette(ctx, helpers.RemoveDuplicates(baseColors))
	if err != nil {
		s.logger.ErrorContext(ctx, "Error generating color palette", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPaletteFailed, err)
	}
	return palette, nil
}
