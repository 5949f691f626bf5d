package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAI talks to an OpenAI-compatible chat completion endpoint
// through langchaingo; base URL is configurable so hosted gateways
// work too.
type OpenAI struct {
	llm *openai.LLM
}

func NewOpenAI(token, baseURL, model string) (*OpenAI, error) {
	if token == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}

	opts := []openai.Option{
		openai.WithToken(strings.TrimPrefix(token, "Bearer ")),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai: create client: %w", err)
	}

	return &OpenAI{llm: client}, nil
}

func (o *OpenAI) Complete(ctx context.Context, system, user string, maxOutput int) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}

	var callOpts []llms.CallOption
	if maxOutput > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(maxOutput))
	}

	resp, err := o.llm.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", classifyOpenAI(err)
	}

	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", &ServiceError{Kind: InvalidResponse, Provider: "openai", Err: fmt.Errorf("empty response")}
	}

	return resp.Choices[0].Content, nil
}

func classifyOpenAI(err error) error {
	msg := strings.ToLower(err.Error())
	kind := InvalidResponse

	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		kind = RateLimited
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized"):
		kind = Unauthorized
	case errorsIsTimeout(err) || strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		kind = Timeout
	}

	return &ServiceError{Kind: kind, Provider: "openai", Err: err}
}

func errorsIsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
