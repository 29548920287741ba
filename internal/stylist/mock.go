package stylist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/wearorithm/internal/metrics"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

// MockStylist serves fixed demo payloads when no Gemini API key is set.
type MockStylist struct {
	logger *slog.Logger
}

func NewMockStylist(logger *slog.Logger) *MockStylist {
	return &MockStylist{logger: logger}
}

// Recommend always returns the same two outfits, whatever the count.
func (m *MockStylist) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	m.logger.InfoContext(ctx, "Gemini API key not found, returning mock recommendations",
		"occasion", req.Occasion, "mood", req.Mood)
	metrics.RecordMockResponse(OpRecommend)

	return []Recommendation{
		{
			Name:     fmt.Sprintf("Perfect %s Look", req.Occasion),
			Occasion: req.Occasion,
			Mood:     req.Mood,
			Items: models.OutfitItems{
				Top:         "Classic white button-down shirt",
				Bottom:      "Dark blue tailored trousers",
				Shoes:       "Brown leather loafers",
				Accessories: []string{"Minimalist watch", "Leather belt"},
			},
			Colors:          []string{"#FFFFFF", "#1E3A8A", "#8B4513"},
			ConfidenceScore: 85,
			Feedback:        "This is a demo recommendation. Add a Gemini API key to get personalized outfit suggestions. This classic combination works well for professional occasions.",
			Impact:          "Projects confidence and professionalism",
			Suggestions: []string{
				"Add a blazer for a more formal look",
				"Consider a pocket square for added elegance",
				"Try different shoe colors to match your style",
			},
		},
		{
			Name:     fmt.Sprintf("Casual %s Style", req.Mood),
			Occasion: req.Occasion,
			Mood:     req.Mood,
			Items: models.OutfitItems{
				Top:         "Soft cotton t-shirt",
				Bottom:      "Comfortable jeans",
				Shoes:       "White sneakers",
				Accessories: []string{"Canvas tote bag", "Simple necklace"},
			},
			Colors:          []string{"#F8F9FA", "#6C757D", "#FFFFFF"},
			ConfidenceScore: 80,
			Feedback:        "This is a demo recommendation. Add a Gemini API key to get personalized outfit suggestions. This relaxed look is perfect for casual outings.",
			Impact:          "Conveys comfort and approachability",
			Suggestions: []string{
				"Layer with a denim jacket for cooler weather",
				"Add colorful accessories to express personality",
				"Try different jean washes for variety",
			},
		},
	}, nil
}

func (m *MockStylist) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.AnalysisResult, error) {
	m.logger.InfoContext(ctx, "Gemini API key not found, returning mock analysis",
		"mime_type", mimeType, "bytes", len(data))
	metrics.RecordMockResponse(OpAnalyze)

	return &models.AnalysisResult{
		Suitability: 75,
		Feedback:    "This is a demo analysis. Add a Gemini API key to get a real outfit analysis. The outfit looks well-coordinated with good color harmony.",
		Suggestions: []string{
			"Consider adding a statement accessory to elevate the look",
			"The color combination works well for casual occasions",
			"Try experimenting with different shoe styles for variety",
		},
		ColorAnalysis: models.ColorAnalysis{
			DominantColors:      []string{"#2C3E50", "#E8F4FD", "#95A5A6"},
			ComplementaryColors: []string{"#E74C3C", "#F39C12", "#27AE60", "#8E44AD"},
		},
		StyleMatch: models.StyleMatch{
			Occasion:   "Casual Day Out",
			Mood:       "Relaxed and Comfortable",
			Confidence: 80,
		},
	}, nil
}

func (m *MockStylist) Palette(ctx context.Context, baseColors []string) ([]string, error) {
	m.logger.InfoContext(ctx, "Gemini API key not found, returning mock color palette",
		"base_colors", len(baseColors))
	metrics.RecordMockResponse(OpPalette)

	return []string{
		"#E74C3C",
		"#F39C12",
		"#F1C40F",
		"#27AE60",
		"#3498DB",
		"#8E44AD",
		"#E67E22",
		"#2ECC71",
	}, nil
}
