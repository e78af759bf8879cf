// README: Generative-language provider contract shared by the itinerary planner and assistant.
package ai

import (
	"context"
	"errors"
)

var (
	// ErrCredentialMissing means no provider API key is configured.
	// The grounded assistant surfaces this to its caller; the itinerary
	// planner substitutes the deterministic fallback instead.
	ErrCredentialMissing = errors.New("ai: credential missing")
)

// Provider defines the contract for interacting with generative models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.)
// and for substituting a fake in tests.
type Provider interface {
	// GenerateItinerary produces a Markdown 3-day travel plan for a listing.
	GenerateItinerary(ctx context.Context, title, location string) (string, error)

	// ChatWithContext answers a user message grounded on the supplied
	// context data (a textual snapshot of available listings). The model is
	// instructed to only reference listings present in contextData; that
	// contract is prompt-level, not mechanically enforced.
	ChatWithContext(ctx context.Context, userMessage, contextData string) (string, error)
}
