package stylist

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

func recommendPrompt(req RecommendRequest) string {
	var prefs, personality any = struct{}{}, struct{}{}
	if req.Profile != nil {
		if req.Profile.StylePreferences != nil {
			prefs = req.Profile.StylePreferences
		}
		if req.Profile.ColorPersonality != nil {
			personality = req.Profile.ColorPersonality
		}
	}

	return fmt.Sprintf(`As a professional fashion stylist, generate %d outfit recommendations for a person with these preferences:

Style Preferences: %s
Color Personality: %s
Occasion: %s
Mood: %s

For each outfit, provide a creative name, specific clothing items (top, bottom, shoes, accessories),
a color palette as hex codes, a confidence score from 0 to 100, feedback explaining why the outfit works,
the impression it gives and suggestions for improving it.

Only suggest real, achievable combinations that fit the person's style and the occasion and mood.`,
		req.Count, mustJSON(prefs), mustJSON(personality), req.Occasion, req.Mood)
}

const analyzePrompt = `Analyze this outfit image as a professional fashion expert. Provide:

1. A suitability score from 0 to 100 for how well the outfit works overall
2. Feedback on fit, style and color coordination
3. Specific improvement suggestions
4. Color analysis: the dominant colors and complementary colors that would work well, as hex codes
5. Style match: the best occasion for the outfit, the mood it conveys and the confidence it projects (0 to 100)

Be constructive and specific. Focus on practical styling advice.`

func palettePrompt(baseColors []string) string {
	return fmt.Sprintf(`As a color theory expert, generate a complementary color palette for these base colors: %s

Provide 5 to 8 additional colors as hex codes that complement the base colors.
Include both harmonious and accent colors that work well in fashion styling.`, strings.Join(baseColors, ", "))
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
