// README: Rule-based intent classifier for the RoamMate assistant.
package assistant

import "strings"

// knownLocations are the destinations the original assistant recognised.
var knownLocations = []string{"nashik", "mumbai", "goa", "delhi", "bangalore", "pune"}

// Classification is the one-shot result of classifying a user message.
type Classification struct {
	Intent   Intent
	Location string
}

// Classify maps a free-text message onto exactly one intent. The checks run
// in the same precedence order as the original cascade, so a message that
// matches several rules resolves the same way it always did.
func Classify(message string) Classification {
	m := strings.ToLower(strings.TrimSpace(message))

	switch {
	case hasPrefix(m, "hi", "hello", "hey", "good morning", "good evening"):
		return Classification{Intent: IntentGreeting}
	case isSearch(m):
		return Classification{Intent: IntentSearchListings, Location: extractLocation(m)}
	case containsAny(m, "price", "cost", "expensive", "cheap", "budget", "affordable"):
		return Classification{Intent: IntentPriceInfo}
	case containsAny(m, "book", "reserve", "reservation"):
		return Classification{Intent: IntentBookingHelp}
	case containsAny(m, "cancel", "refund"):
		return Classification{Intent: IntentCancellationPolicy}
	case containsAny(m, "contact", "support", "help", "customer service", "email", "phone"):
		return Classification{Intent: IntentSupport}
	case containsAny(m, "category", "categories", "type", "trending", "popular", "iconic", "mountain", "beach"):
		return Classification{Intent: IntentCategories}
	case containsAny(m, "thank", "thanks", "appreciate"):
		return Classification{Intent: IntentThanks}
	case containsAny(m, "bye", "goodbye", "see you", "later"):
		return Classification{Intent: IntentGoodbye}
	default:
		return Classification{Intent: IntentUnknown}
	}
}

func isSearch(m string) bool {
	hasVerb := containsAny(m, "show", "find", "search", "list", "looking for", "need")
	hasNoun := containsAny(m, "listing", "place", "property", "room", "accommodation", "stay")
	if hasVerb && hasNoun {
		return true
	}
	return extractLocation(m) != ""
}

// extractLocation pulls a destination out of the message: first an
// "in <word>" phrase, then the known-location list.
func extractLocation(m string) string {
	words := strings.Fields(m)
	for i, w := range words {
		if w == "in" && i+1 < len(words) {
			return strings.Trim(words[i+1], ".,!?")
		}
	}
	for _, loc := range knownLocations {
		if strings.Contains(m, loc) {
			return loc
		}
	}
	return ""
}

func hasPrefix(m string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(m, p) {
			return true
		}
	}
	return false
}

func containsAny(m string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}
