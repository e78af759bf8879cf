// README: Small CLI to exercise the itinerary planner without the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"roamhaven/internal/ai"
)

func main() {
	title := flag.String("title", "Lakeview Cottage", "listing title")
	location := flag.String("location", "Nashik", "listing location")
	flag.Parse()

	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := context.Background()

	var provider ai.Provider
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		gemini, err := ai.NewGeminiProvider(ctx, key)
		if err != nil {
			log.Fatal().Err(err).Msg("init gemini provider")
		}
		defer gemini.Close()
		provider = gemini
	} else {
		log.Warn().Msg("GOOGLE_API_KEY not set; printing the deterministic fallback")
	}

	planner := ai.NewPlanner(provider, log)
	fmt.Println(planner.Generate(ctx, *title, *location))
}
