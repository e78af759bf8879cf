package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// stubProvider is a test double for Provider.
type stubProvider struct {
	itinerary string
	reply     string
	err       error
}

func (s *stubProvider) GenerateItinerary(_ context.Context, _, _ string) (string, error) {
	return s.itinerary, s.err
}

func (s *stubProvider) ChatWithContext(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func TestFallbackItinerary_Deterministic(t *testing.T) {
	a := FallbackItinerary("Lakeview Cottage", "Nashik")
	b := FallbackItinerary("Lakeview Cottage", "Nashik")
	if a != b {
		t.Errorf("same input produced different output")
	}
}

func TestFallbackItinerary_Structure(t *testing.T) {
	got := FallbackItinerary("Lakeview Cottage", "Nashik")

	if !strings.HasPrefix(got, "## 📅 3-Day Trip to Nashik") {
		t.Errorf("itinerary does not start with the trip header: %q", got[:40])
	}

	// The listing title appears in the Day 1 morning line.
	wantLine := "- **Morning**: Check into **Lakeview Cottage** and settle in"
	if !strings.Contains(got, wantLine) {
		t.Errorf("missing Day 1 morning line %q", wantLine)
	}

	for _, section := range []string{
		"### Day 1: Arrival & Local Exploration",
		"### Day 2: Main Attractions",
		"### Day 3: Culture & Departure",
		"### 🎒 Packing Tips",
	} {
		if !strings.Contains(got, section) {
			t.Errorf("missing section %q", section)
		}
	}

	if !strings.HasSuffix(got, "contact our support team!") {
		t.Errorf("missing closing note")
	}
}

func TestPlanner_NoProviderUsesFallback(t *testing.T) {
	p := NewPlanner(nil, zerolog.Nop())
	got := p.Generate(context.Background(), "Lakeview Cottage", "Nashik")
	if got != FallbackItinerary("Lakeview Cottage", "Nashik") {
		t.Errorf("expected the fallback itinerary, got %q", got)
	}
}

func TestPlanner_ProviderErrorUsesFallback(t *testing.T) {
	p := NewPlanner(&stubProvider{err: errors.New("quota exceeded")}, zerolog.Nop())
	got := p.Generate(context.Background(), "Lakeview Cottage", "Nashik")
	if got != FallbackItinerary("Lakeview Cottage", "Nashik") {
		t.Errorf("expected the fallback itinerary on provider error, got %q", got)
	}
}

func TestPlanner_ProviderSuccessPassthrough(t *testing.T) {
	p := NewPlanner(&stubProvider{itinerary: "## Custom Plan"}, zerolog.Nop())
	got := p.Generate(context.Background(), "Lakeview Cottage", "Nashik")
	if got != "## Custom Plan" {
		t.Errorf("expected the provider text verbatim, got %q", got)
	}
}
