package ai

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned when no API key is configured for the
// credential family a model resolves to. Callers surface it as a
// service-unavailable condition; it is never retried.
var ErrModelUnavailable = errors.New("no API key configured for model")

// providerError wraps a transport or provider-side failure from the LLM
// call, preserving the originating message for diagnostics.
func providerError(operation string, err error) error {
	return fmt.Errorf("LLM call failed during %s: %w", operation, err)
}
