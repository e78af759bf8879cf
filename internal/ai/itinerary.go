// README: Itinerary planner with deterministic offline fallback.
package ai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Planner produces a Markdown itinerary for a listing. It never fails: when
// no provider is configured or the provider call errors, the deterministic
// fallback plan is returned instead.
type Planner struct {
	provider Provider
	log      zerolog.Logger
}

// NewPlanner creates a Planner. provider may be nil (fallback-only mode).
func NewPlanner(provider Provider, log zerolog.Logger) *Planner {
	return &Planner{provider: provider, log: log}
}

// Generate returns a 3-day itinerary for the given listing title and location.
func (p *Planner) Generate(ctx context.Context, title, location string) string {
	if p.provider == nil {
		return FallbackItinerary(title, location)
	}

	text, err := p.provider.GenerateItinerary(ctx, title, location)
	if err != nil {
		p.log.Warn().Err(err).Str("location", location).Msg("itinerary provider failed, using fallback")
		return FallbackItinerary(title, location)
	}
	return text
}

// FallbackItinerary is a pure function: the same (title, location) input
// always yields byte-identical output.
func FallbackItinerary(title, location string) string {
	return fmt.Sprintf(`## 📅 3-Day Trip to %[2]s

### Day 1: Arrival & Local Exploration
- **Morning**: Check into **%[1]s** and settle in
- **Afternoon**: Explore the local neighborhood and nearby attractions
- **Evening**: Enjoy local cuisine at a recommended restaurant

### Day 2: Main Attractions
- **Morning**: Visit the top tourist spots in %[2]s
- **Afternoon**: Lunch at a local favorite, then continue sightseeing
- **Evening**: Relax at your accommodation or explore nightlife

### Day 3: Culture & Departure
- **Morning**: Visit local markets and cultural sites
- **Afternoon**: Last-minute shopping and lunch
- **Evening**: Prepare for departure

### 🎒 Packing Tips
- Comfortable walking shoes
- Weather-appropriate clothing
- Camera for memories
- Local currency
- Travel documents

**Note**: This is a basic itinerary. For a personalized AI-generated plan, contact our support team!`, title, location)
}
