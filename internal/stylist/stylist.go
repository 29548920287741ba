// Package stylist talks to the generative model that produces outfit
// recommendations, photo analyses and colour palettes.
package stylist

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

const (
	OpRecommend = "recommend"
	OpAnalyze   = "analyze"
	OpPalette   = "palette"
)

var (
	ErrStylistUnavailable = errors.New("stylist unavailable")
	ErrEmptyResponse      = errors.New("model returned no content")
)

// Recommendation is one generated outfit before it is saved.
type Recommendation struct {
	Name            string             `json:"name"`
	Occasion        string             `json:"occasion"`
	Mood            string             `json:"mood"`
	Items           models.OutfitItems `json:"items"`
	Colors          []string           `json:"colors"`
	ConfidenceScore int                `json:"confidenceScore"`
	Feedback        string             `json:"feedback"`
	Impact          string             `json:"impact"`
	Suggestions     []string           `json:"suggestions"`
}

type RecommendRequest struct {
	Profile  *models.UserProfile
	Occasion string
	Mood     string
	Count    int
}

type Stylist interface {
	Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error)
	AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.AnalysisResult, error)
	Palette(ctx context.Context, baseColors []string) ([]string, error)
}

type Options struct {
	Model           string
	FastModel       string
	Timeout         time.Duration
	Rate            float64
	Burst           int
	BreakerFailures uint32
}

// New returns the Gemini-backed stylist behind a Guard, or the mock stylist
// when client is nil (no API key configured).
func New(client *genai.Client, opts Options, logger *slog.Logger) Stylist {
	if client == nil {
		logger.Warn("Gemini API key not found, AI responses will be mocked")
		return NewMockStylist(logger)
	}
	return NewGuard(NewGeminiStylist(client, opts), opts, logger)
}
