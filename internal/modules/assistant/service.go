// README: Assistant service; dispatches per intent or delegates to the grounded model.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"roamhaven/internal/ai"
	"roamhaven/internal/modules/listing"
)

// Mode selects the deployment-time answering strategy. The two strategies
// are alternate configurations, never combined at runtime.
type Mode string

const (
	// ModeRules answers from the listing repository with canned replies.
	ModeRules Mode = "rules"
	// ModeGemini grounds a generative model on a per-request listing snapshot.
	ModeGemini Mode = "gemini"
)

const searchLimit = 5

// ListingDirectory is the read-only listing access the assistant needs.
type ListingDirectory interface {
	List(ctx context.Context) ([]listing.Listing, error)
	SearchByLocation(ctx context.Context, q string, limit int) ([]listing.Listing, error)
	PriceStats(ctx context.Context) (listing.PriceStats, error)
	Categories(ctx context.Context) ([]string, error)
}

type Service struct {
	listings ListingDirectory
	provider ai.Provider
	mode     Mode
	log      zerolog.Logger
}

// NewService creates the assistant. provider may be nil when mode is ModeRules.
func NewService(listings ListingDirectory, provider ai.Provider, mode Mode, log zerolog.Logger) *Service {
	if mode == "" {
		mode = ModeRules
	}
	return &Service{listings: listings, provider: provider, mode: mode, log: log}
}

// Respond produces the assistant's reply for a user message.
// In gemini mode a missing credential surfaces as ai.ErrCredentialMissing and
// a failed call as ErrProvider; the transport layer turns both into a generic
// apology, never the internal error text.
func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("empty message")
	}
	if s.mode == ModeGemini {
		return s.respondGrounded(ctx, message)
	}
	return s.respondRules(ctx, message)
}

func (s *Service) respondGrounded(ctx context.Context, message string) (string, error) {
	if s.provider == nil {
		return "", ai.ErrCredentialMissing
	}

	// Snapshot the catalogue fresh for every request; the grounding context
	// is never reused across requests.
	all, err := s.listings.List(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	contextData := SerializeContext(Summarize(all))

	reply, err := s.provider.ChatWithContext(ctx, message, contextData)
	if err != nil {
		if errors.Is(err, ai.ErrCredentialMissing) {
			return "", err
		}
		s.log.Warn().Err(err).Msg("grounded chat call failed")
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return reply, nil
}

func (s *Service) respondRules(ctx context.Context, message string) (string, error) {
	c := Classify(message)

	switch c.Intent {
	case IntentGreeting:
		return "👋 Hello! I'm RoamMate, your travel assistant. I can help you with:\n\n" +
			"🏠 Find listings - Ask about places in any location\n" +
			"💰 Check prices - Get pricing information\n" +
			"📍 Locations - Explore different destinations\n" +
			"❓ Help & Support - Get answers to common questions\n\n" +
			"What would you like to know?", nil

	case IntentSearchListings:
		return s.replySearch(ctx, c.Location)

	case IntentPriceInfo:
		return s.replyPrices(ctx)

	case IntentBookingHelp:
		return "📅 How to Book:\n\n" +
			"1️⃣ Browse our listings\n" +
			"2️⃣ Click on a property you like\n" +
			"3️⃣ Click the 'Reserve' button\n" +
			"4️⃣ Fill in your details and dates\n" +
			"5️⃣ Complete payment securely\n\n" +
			"✅ You'll receive confirmation within 24 hours!", nil

	case IntentCancellationPolicy:
		return "🔄 Cancellation Policy:\n\n" +
			"✅ Free cancellation within 24 hours of booking\n" +
			"⏰ After 24 hours, cancellation depends on the host's policy\n" +
			"💰 Full refund if booking isn't confirmed by host\n\n" +
			"For specific property policies, check the listing details page.", nil

	case IntentSupport:
		return "📞 Customer Support:\n\n" +
			"📧 Email: support@roamhaven.com\n" +
			"📱 Phone: +91 1234567890\n" +
			"⏰ Available: 24/7\n\n" +
			"We're here to help! Feel free to reach out anytime.", nil

	case IntentCategories:
		return s.replyCategories(ctx)

	case IntentThanks:
		return "😊 You're welcome! Happy to help. If you have any other questions, just ask!\n\n" +
			"Safe travels! 🌍✈️", nil

	case IntentGoodbye:
		return "👋 Goodbye! Thanks for chatting with RoamMate. Have a wonderful day and happy travels! 🌟", nil

	default:
		return "🤔 I'm not sure I understand. I can help you with:\n\n" +
			"🏠 Finding listings in specific locations\n" +
			"💰 Price information\n" +
			"📅 Booking process\n" +
			"🔄 Cancellation policies\n" +
			"📞 Customer support\n" +
			"🏷️ Browse categories\n\n" +
			"What would you like to know?", nil
	}
}

// RefusalFor is the fixed reply pattern when a requested location has no
// listings available.
func RefusalFor(location string) string {
	return fmt.Sprintf("I'm sorry, I couldn't find any listings in %s on RoamHaven right now.", titleCase(location))
}

func (s *Service) replySearch(ctx context.Context, location string) (string, error) {
	var (
		results []listing.Listing
		err     error
	)
	if location != "" {
		results, err = s.listings.SearchByLocation(ctx, location, searchLimit)
	} else {
		results, err = s.listings.List(ctx)
	}
	if err != nil {
		return "", err
	}
	if len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if len(results) == 0 {
		if location != "" {
			return RefusalFor(location), nil
		}
		return "😔 Sorry, I couldn't find any listings matching your search. Try browsing all our listings!", nil
	}

	var b strings.Builder
	if location != "" {
		fmt.Fprintf(&b, "🏠 Here are some amazing places in %s:\n\n", titleCase(location))
	} else {
		b.WriteString("🏠 Here are some of our top listings:\n\n")
	}
	for i, l := range results {
		fmt.Fprintf(&b, "%d. %s\n   📍 %s, %s\n   💰 ₹%d/night\n\n", i+1, l.Title, l.Location, l.Country, l.Price)
	}
	b.WriteString("Visit our listings page to see all available properties!")
	return b.String(), nil
}

func (s *Service) replyPrices(ctx context.Context) (string, error) {
	stats, err := s.listings.PriceStats(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("💰 Pricing Information:\n\n"+
		"📊 Average: ₹%.0f/night\n"+
		"💵 Starting from: ₹%d/night\n"+
		"💎 Up to: ₹%d/night\n\n"+
		"We have options for every budget! Check out our listings to find your perfect stay.",
		stats.Avg, stats.Min, stats.Max), nil
}

var categoryIcons = map[string]string{
	"trending":      "🔥",
	"rooms":         "🛏️",
	"iconic_cities": "🏙️",
	"mountains":     "⛰️",
	"castles":       "🏰",
	"pools":         "🏊",
	"camping":       "⛺",
	"farms":         "🌾",
	"arctic":        "❄️",
}

func (s *Service) replyCategories(ctx context.Context) (string, error) {
	categories, err := s.listings.Categories(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("🏷️ Browse by Category:\n\n")
	for _, cat := range categories {
		icon := categoryIcons[cat]
		if icon == "" {
			icon = "📍"
		}
		fmt.Fprintf(&b, "%s %s\n", icon, strings.ToUpper(strings.ReplaceAll(cat, "_", " ")))
	}
	b.WriteString("\nVisit our listings page and use the filters to explore!")
	return b.String(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
