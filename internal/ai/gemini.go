// README: Gemini-backed Provider implementation.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from configuration, not read from the environment here.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrCredentialMissing
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  client.GenerativeModel(geminiModel),
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateItinerary asks the model for a 3-day plan in the required Markdown
// structure. The raw text is passed through without structural validation.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, title, location string) (string, error) {
	prompt := fmt.Sprintf(`Act as a professional travel agent. Create a 3-day itinerary for a trip to %q (Listing: %q).

Format the response in clean Markdown.
Structure it as:
## 📅 3-Day Trip to %s

### Day 1: [Theme of the Day]
- **Morning**: ...
- **Afternoon**: ...
- **Evening**: ...

... (Repeat for Day 2 and 3)

### 🎒 Packing Tips
- ...

Keep it engaging and specific to the location.`, location, title, location)

	return p.generate(ctx, prompt)
}

// ChatWithContext answers userMessage grounded on contextData, a per-request
// textual snapshot of the available listings.
func (p *GeminiProvider) ChatWithContext(ctx context.Context, userMessage, contextData string) (string, error) {
	prompt := fmt.Sprintf(`You are RoamMate, the official AI assistant for the RoamHaven travel website.
Your goal is to help users find the perfect stay from OUR available listings.

STRICT RULES:
1. **Only use the provided Context Data**. Do not invent listings.
2. If the user asks for a location not in the context, say: "I'm sorry, I couldn't find any listings in [Location] on RoamHaven right now."
3. Be friendly, concise, and professional.
4. When suggesting a listing, mention its Name, Location, and Price.

CONTEXT DATA (Available Listings):
%s

User Question: %s
Answer:`, contextData, userMessage)

	return p.generate(ctx, prompt)
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("gemini returned empty text parts")
	}
	return text.String(), nil
}
