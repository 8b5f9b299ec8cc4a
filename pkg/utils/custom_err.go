package utils

import "errors"

// Generation failures are surfaced as distinguishable kinds so the caller
// can decide what is retryable. Overload and rate limiting are transient;
// malformed/empty responses usually clear up on a retry; credential and
// safety errors do not.
var (
	ErrMissingAPIKey       = errors.New("ai api key missing")
	ErrInvalidCredentials  = errors.New("ai credentials rejected")
	ErrModelOverloaded     = errors.New("ai model overloaded")
	ErrRateLimited         = errors.New("too many ai requests")
	ErrSafetyBlocked       = errors.New("request blocked by safety filters")
	ErrEmptyAIResponse     = errors.New("empty ai response")
	ErrMalformedAIResponse = errors.New("malformed ai response")
	ErrGenerationFailed    = errors.New("itinerary generation failed")
)
