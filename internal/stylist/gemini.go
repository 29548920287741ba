package stylist

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

const (
	DefaultModel     = "gemini-2.5-pro"
	DefaultFastModel = "gemini-2.5-flash"
)

// generateFunc sends parts to the named model and returns the text of the
// first candidate.
type generateFunc func(ctx context.Context, model string, schema *genai.Schema, parts ...genai.Part) (string, error)

type GeminiStylist struct {
	generate  generateFunc
	model     string
	fastModel string
}

func NewGeminiStylist(client *genai.Client, opts Options) *GeminiStylist {
	return newGeminiStylist(clientGenerator(client), opts)
}

func newGeminiStylist(gen generateFunc, opts Options) *GeminiStylist {
	s := &GeminiStylist{generate: gen, model: opts.Model, fastModel: opts.FastModel}
	if s.model == "" {
		s.model = DefaultModel
	}
	if s.fastModel == "" {
		s.fastModel = DefaultFastModel
	}
	return s
}

func clientGenerator(client *genai.Client) generateFunc {
	return func(ctx context.Context, name string, schema *genai.Schema, parts ...genai.Part) (string, error) {
		model := client.GenerativeModel(name)
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = schema

		resp, err := model.GenerateContent(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", ErrEmptyResponse
		}

		var sb strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		if sb.Len() == 0 {
			return "", ErrEmptyResponse
		}
		return sb.String(), nil
	}
}

// Model replies carry numbers as JSON numbers that may be fractional.
type recommendationReply struct {
	Recommendations []struct {
		Name     string `json:"name"`
		Occasion string `json:"occasion"`
		Mood     string `json:"mood"`
		Items    struct {
			Top         string   `json:"top"`
			Bottom      string   `json:"bottom"`
			Shoes       string   `json:"shoes"`
			Accessories []string `json:"accessories"`
		} `json:"items"`
		Colors          []string `json:"colors"`
		ConfidenceScore float64  `json:"confidenceScore"`
		Feedback        string   `json:"feedback"`
		Impact          string   `json:"impact"`
		Suggestions     []string `json:"suggestions"`
	} `json:"recommendations"`
}

type analysisReply struct {
	Suitability   float64  `json:"suitability"`
	Feedback      string   `json:"feedback"`
	Suggestions   []string `json:"suggestions"`
	ColorAnalysis struct {
		DominantColors      []string `json:"dominantColors"`
		ComplementaryColors []string `json:"complementaryColors"`
	} `json:"colorAnalysis"`
	StyleMatch struct {
		Occasion   string  `json:"occasion"`
		Mood       string  `json:"mood"`
		Confidence float64 `json:"confidence"`
	} `json:"styleMatch"`
}

type paletteReply struct {
	ComplementaryColors []string `json:"complementaryColors"`
}

func (s *GeminiStylist) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	text, err := s.generate(ctx, s.model, recommendationsSchema(), genai.Text(recommendPrompt(req)))
	if err != nil {
		return nil, err
	}

	var reply recommendationReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}

	recs := make([]Recommendation, 0, len(reply.Recommendations))
	for _, r := range reply.Recommendations {
		recs = append(recs, Recommendation{
			Name:     r.Name,
			Occasion: r.Occasion,
			Mood:     r.Mood,
			Items: models.OutfitItems{
				Top:         r.Items.Top,
				Bottom:      r.Items.Bottom,
				Shoes:       r.Items.Shoes,
				Accessories: r.Items.Accessories,
			},
			Colors:          nonNil(r.Colors),
			ConfidenceScore: score(r.ConfidenceScore),
			Feedback:        r.Feedback,
			Impact:          r.Impact,
			Suggestions:     nonNil(r.Suggestions),
		})
	}
	if req.Count > 0 && len(recs) > req.Count {
		recs = recs[:req.Count]
	}
	return recs, nil
}

func (s *GeminiStylist) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.AnalysisResult, error) {
	text, err := s.generate(ctx, s.model, analysisSchema(),
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(analyzePrompt),
	)
	if err != nil {
		return nil, err
	}

	var reply analysisReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}

	return &models.AnalysisResult{
		Suitability: score(reply.Suitability),
		Feedback:    reply.Feedback,
		Suggestions: nonNil(reply.Suggestions),
		ColorAnalysis: models.ColorAnalysis{
			DominantColors:      nonNil(reply.ColorAnalysis.DominantColors),
			ComplementaryColors: nonNil(reply.ColorAnalysis.ComplementaryColors),
		},
		StyleMatch: models.StyleMatch{
			Occasion:   reply.StyleMatch.Occasion,
			Mood:       reply.StyleMatch.Mood,
			Confidence: score(reply.StyleMatch.Confidence),
		},
	}, nil
}

func (s *GeminiStylist) Palette(ctx context.Context, baseColors []string) ([]string, error) {
	text, err := s.generate(ctx, s.fastModel, paletteSchema(), genai.Text(palettePrompt(baseColors)))
	if err != nil {
		return nil, err
	}

	var reply paletteReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	return nonNil(reply.ComplementaryColors), nil
}

// score rounds a model-supplied number into 0..100.
func score(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
