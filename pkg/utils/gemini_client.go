package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GenerationClientInterface is the contract the itinerary service speaks.
// Implementations issue exactly one request per call and return the raw
// JSON text body; classification of upstream failures into the sentinel
// kinds happens here, parsing happens in the service.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeminiGenerationClient implements GenerationClientInterface on Google's
// Gemini models with the structured-output schema attached.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (GenerationClientInterface, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{client: client, model: model}, nil
}

func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = ItineraryResponseSchema()
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(resp.Candidates) == 0 {
		return "", ErrEmptyAIResponse
	}
	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return "", ErrSafetyBlocked
	}
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", ErrEmptyAIResponse
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyAIResponse
	}
	return sb.String(), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}

func classifyGeminiError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return fmt.Errorf("%w: %v", ErrSafetyBlocked, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %v", ErrModelOverloaded, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}

// NewGenerationClient builds the configured provider, defaulting to Gemini.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
