package utils

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

func TestClassifyGeminiError(t *testing.T) {
	cases := map[int]error{
		401: ErrInvalidCredentials,
		403: ErrInvalidCredentials,
		429: ErrRateLimited,
		503: ErrModelOverloaded,
	}
	for code, want := range cases {
		err := classifyGeminiError(&googleapi.Error{Code: code})
		if !errors.Is(err, want) {
			t.Errorf("code %d classified as %v, want %v", code, err, want)
		}
	}

	if err := classifyGeminiError(errors.New("boom")); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("unknown error classified as %v, want ErrGenerationFailed", err)
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	cases := map[int]error{
		401: ErrInvalidCredentials,
		429: ErrRateLimited,
		503: ErrModelOverloaded,
	}
	for code, want := range cases {
		err := classifyOpenAIError(&openai.APIError{HTTPStatusCode: code})
		if !errors.Is(err, want) {
			t.Errorf("status %d classified as %v, want %v", code, err, want)
		}
	}
}

func TestNewGenerationClient_MissingKey(t *testing.T) {
	if _, err := NewGeminiGenerationClient("", ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("gemini: err = %v, want ErrMissingAPIKey", err)
	}
	if _, err := NewOpenAIGenerationClient("  ", ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("openai: err = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewGenerationClient_UnsupportedProvider(t *testing.T) {
	if _, err := NewGenerationClient("llama-at-home", "key", ""); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}
