package stylist

import "github.com/google/generative-ai-go/genai"

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func numberSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber}
}

func stringListSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: stringSchema()}
}

func recommendationsSchema() *genai.Schema {
	outfit := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     stringSchema(),
			"occasion": stringSchema(),
			"mood":     stringSchema(),
			"items": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"top":         stringSchema(),
					"bottom":      stringSchema(),
					"shoes":       stringSchema(),
					"accessories": stringListSchema(),
				},
				Required: []string{"top", "bottom", "shoes", "accessories"},
			},
			"colors":          stringListSchema(),
			"confidenceScore": numberSchema(),
			"feedback":        stringSchema(),
			"impact":          stringSchema(),
			"suggestions":     stringListSchema(),
		},
		Required: []string{"name", "occasion", "mood", "items", "colors", "confidenceScore", "feedback", "impact", "suggestions"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {Type: genai.TypeArray, Items: outfit},
		},
		Required: []string{"recommendations"},
	}
}

func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suitability": numberSchema(),
			"feedback":    stringSchema(),
			"suggestions": stringListSchema(),
			"colorAnalysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"dominantColors":      stringListSchema(),
					"complementaryColors": stringListSchema(),
				},
				Required: []string{"dominantColors", "complementaryColors"},
			},
			"styleMatch": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"occasion":   stringSchema(),
					"mood":       stringSchema(),
					"confidence": numberSchema(),
				},
				Required: []string{"occasion", "mood", "confidence"},
			},
		},
		Required: []string{"suitability", "feedback", "suggestions", "colorAnalysis", "styleMatch"},
	}
}

func paletteSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"complementaryColors": stringListSchema(),
		},
		Required: []string{"complementaryColors"},
	}
}
