package assistant

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantIntent   Intent
		wantLocation string
	}{
		{name: "greeting hi", message: "Hi there", wantIntent: IntentGreeting},
		{name: "greeting hello", message: "hello", wantIntent: IntentGreeting},
		{name: "greeting good morning", message: "Good morning!", wantIntent: IntentGreeting},

		{name: "search with in-phrase", message: "show me places in Nashik", wantIntent: IntentSearchListings, wantLocation: "nashik"},
		{name: "search known location only", message: "anything near goa?", wantIntent: IntentSearchListings, wantLocation: "goa"},
		{name: "search verb plus noun", message: "find a property for me", wantIntent: IntentSearchListings},
		{name: "in-phrase strips punctuation", message: "looking for a stay in Mumbai!", wantIntent: IntentSearchListings, wantLocation: "mumbai"},

		{name: "price", message: "how much does it cost", wantIntent: IntentPriceInfo},
		{name: "price budget", message: "what fits my budget", wantIntent: IntentPriceInfo},

		{name: "booking", message: "how do I reserve", wantIntent: IntentBookingHelp},
		{name: "cancellation", message: "can I get a refund", wantIntent: IntentCancellationPolicy},
		{name: "support", message: "how do I contact you", wantIntent: IntentSupport},
		{name: "categories", message: "what categories do you have", wantIntent: IntentCategories},
		{name: "thanks", message: "thanks a lot", wantIntent: IntentThanks},
		{name: "goodbye", message: "bye now", wantIntent: IntentGoodbye},

		{name: "unknown", message: "what is the weather like", wantIntent: IntentUnknown},

		// Precedence: a greeting prefix wins over later keywords.
		{name: "greeting beats price", message: "hi, what are your prices", wantIntent: IntentGreeting},
		// Search wins over price when a location is present.
		{name: "search beats price", message: "cheap rooms in pune", wantIntent: IntentSearchListings, wantLocation: "pune"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got.Intent != tt.wantIntent {
				t.Errorf("Classify(%q).Intent = %v, want %v", tt.message, got.Intent, tt.wantIntent)
			}
			if got.Location != tt.wantLocation {
				t.Errorf("Classify(%q).Location = %q, want %q", tt.message, got.Location, tt.wantLocation)
			}
		})
	}
}
