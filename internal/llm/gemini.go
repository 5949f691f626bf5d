package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// Gemini talks to the Gemini API, rotating through the supplied API
// keys. Rotation happens via RotateKey, driven by the Gateway when a
// call comes back rate limited.
type Gemini struct {
	mu      sync.Mutex
	apiKeys []string
	current int
	model   string
}

func NewGemini(apiKeys []string, model string) (*Gemini, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("gemini: at least one API key is required")
	}
	return &Gemini{apiKeys: apiKeys, model: model}, nil
}

func (g *Gemini) RotateKey() {
	g.mu.Lock()
	g.current = (g.current + 1) % len(g.apiKeys)
	g.mu.Unlock()
}

func (g *Gemini) currentKey() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.current]
}

func (g *Gemini) Complete(ctx context.Context, system, user string, maxOutput int) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.currentKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", g.classify(fmt.Errorf("create client: %w", err))
	}

	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if maxOutput > 0 {
		cfg.MaxOutputTokens = int32(maxOutput)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", g.classify(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &ServiceError{Kind: InvalidResponse, Provider: "gemini", Err: fmt.Errorf("empty response")}
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", &ServiceError{Kind: InvalidResponse, Provider: "gemini", Err: fmt.Errorf("no text parts in response")}
	}

	return text.String(), nil
}

func (g *Gemini) classify(err error) error {
	msg := err.Error()
	kind := InvalidResponse

	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		kind = RateLimited
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "API key") || strings.Contains(msg, "UNAUTHENTICATED") ||
		strings.Contains(msg, "PERMISSION_DENIED"):
		kind = Unauthorized
	case errorsIsTimeout(err) || strings.Contains(msg, "DEADLINE_EXCEEDED") || strings.Contains(msg, "504"):
		kind = Timeout
	}

	return &ServiceError{Kind: kind, Provider: "gemini", Err: err}
}
