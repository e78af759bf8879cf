// README: Assistant intent variants and chat grounding context.
package assistant

import (
	"errors"
	"fmt"
	"strings"

	"roamhaven/internal/modules/listing"
)

// Intent is the tagged variant the classifier maps a user message onto.
// Classification happens once; responses dispatch per variant.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentSearchListings
	IntentPriceInfo
	IntentBookingHelp
	IntentCancellationPolicy
	IntentSupport
	IntentCategories
	IntentThanks
	IntentGoodbye
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentSearchListings:
		return "search_listings"
	case IntentPriceInfo:
		return "price_info"
	case IntentBookingHelp:
		return "booking_help"
	case IntentCancellationPolicy:
		return "cancellation_policy"
	case IntentSupport:
		return "support"
	case IntentCategories:
		return "categories"
	case IntentThanks:
		return "thanks"
	case IntentGoodbye:
		return "goodbye"
	default:
		return "unknown"
	}
}

// ErrProvider wraps a failed generative-provider call. The handler converts
// it (and ai.ErrCredentialMissing) into a generic user-facing apology.
var ErrProvider = errors.New("assistant: provider error")

// Summary is one grounding entry handed to the generative model.
type Summary struct {
	Name     string
	Location string
	Price    int64
}

// SerializeContext renders the ordered listing summaries as the textual
// grounding context. Regenerated per request, never cached.
func SerializeContext(summaries []Summary) string {
	if len(summaries) == 0 {
		return "No listings are currently available."
	}
	var b strings.Builder
	for i, s := range summaries {
		fmt.Fprintf(&b, "%d. %s | Location: %s | Price: ₹%d/night\n", i+1, s.Name, s.Location, s.Price)
	}
	return b.String()
}

// Summarize projects listings onto the grounding entries, preserving order.
func Summarize(listings []listing.Listing) []Summary {
	out := make([]Summary, 0, len(listings))
	for _, l := range listings {
		out = append(out, Summary{Name: l.Title, Location: l.Location, Price: l.Price})
	}
	return out
}
