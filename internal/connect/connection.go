package connect

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var GeminiClient *genai.Client

// GeminiConnect builds the Gemini client. With no API key it returns nil and
// the application falls back to mock AI responses.
func GeminiConnect(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	GeminiClient = client
	return client, nil
}

func GeminiDisconnect() error {
	if GeminiClient == nil {
		return nil
	}
	if err := GeminiClient.Close(); err != nil {
		return fmt.Errorf("failed to close Gemini client: %w", err)
	}
	GeminiClient = nil
	return nil
}
