package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerationClient is the alternate provider behind the same
// interface, using the json_schema response format instead of Gemini's
// native response schema.
type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerationClient(apiKey, model string) (GenerationClientInterface, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerationClient{client: openai.NewClient(apiKey), model: model}, nil
}

func (c *OpenAIGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "itinerary",
				Schema: ItineraryJSONSchema(),
				Strict: true,
			},
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyAIResponse
	}
	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", ErrSafetyBlocked
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		return "", ErrEmptyAIResponse
	}
	return choice.Message.Content, nil
}

func (c *OpenAIGenerationClient) Close() error {
	return nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
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
