package assist

import (
	"context"
	"strings"

	"sttm-catalog-api/config"

	"google.golang.org/genai"
)

// NewClient builds a Gemini client from config. It returns nil when neither an
// API key nor a GCP project is configured.
func NewClient(ctx context.Context, cfg config.Config) (*genai.Client, error) {
	if !cfg.AssistEnabled() {
		return nil, nil
	}

	if key := strings.TrimSpace(cfg.GeminiKey); key != "" {
		return genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
	}

	location := strings.TrimSpace(cfg.GCPLocation)
	if location == "" {
		location = "global"
	}
	// Vertex AI uses application default credentials.
	return genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  strings.TrimSpace(cfg.GCPProject),
		Location: location,
	})
}
