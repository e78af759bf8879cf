// README: Entry point; loads config, wires module services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"roamhaven/internal/ai"
	"roamhaven/internal/config"
	"roamhaven/internal/geo"
	httptransport "roamhaven/internal/http"
	"roamhaven/internal/infra"
	"roamhaven/internal/media"
	"roamhaven/internal/modules/assistant"
	"roamhaven/internal/modules/booking"
	"roamhaven/internal/modules/listing"
	"roamhaven/internal/modules/review"
	"roamhaven/internal/modules/user"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	geocoder, err := geo.New(cfg.Geo)
	if err != nil {
		log.Fatal().Err(err).Msg("init geocoder")
	}

	// The Gemini key is optional: without it the itinerary planner serves the
	// deterministic fallback and the grounded assistant reports the missing
	// credential.
	var provider ai.Provider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("init gemini provider")
		}
		defer gemini.Close()
		provider = gemini
	} else {
		log.Warn().Msg("GOOGLE_API_KEY not set; itinerary planner runs in fallback-only mode")
	}
	planner := ai.NewPlanner(provider, log)

	var uploader *media.Uploader
	minioClient, err := infra.NewMinio(cfg.Media.Endpoint, cfg.Media.AccessKey, cfg.Media.SecretKey, cfg.Media.UseSSL)
	if err != nil {
		log.Warn().Err(err).Msg("image storage unavailable; listings will be created without images")
	} else {
		uploader, err = media.NewUploader(ctx, minioClient, cfg.Media, log)
		if err != nil {
			log.Warn().Err(err).Msg("image bucket unavailable; listings will be created without images")
			uploader = nil
		}
	}

	userStore := user.NewStore(dbPool)
	sessions := user.NewRedisSessions(redisClient)
	userSvc := user.NewService(userStore, sessions)

	listingStore := listing.NewStore(dbPool)
	listingSvc := listing.NewService(listingStore, geocoder, log)

	reviewStore := review.NewStore(dbPool)
	reviewSvc := review.NewService(reviewStore)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, listingSvc)

	assistantSvc := assistant.NewService(listingSvc, provider, assistant.Mode(cfg.AI.AssistantMode), log)

	var oauthCfg *oauth2.Config
	if cfg.OAuth.ClientID != "" && cfg.OAuth.ClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	deps := httptransport.RouterDeps{
		Listings:  listingSvc,
		Reviews:   reviewSvc,
		Bookings:  bookingSvc,
		Users:     userSvc,
		Assistant: assistantSvc,
		Planner:   planner,
		OAuth:     oauthCfg,
		Log:       log,
	}
	if uploader != nil {
		deps.Uploader = uploader
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Str("geocoder", cfg.Geo.Provider).Str("assistant", cfg.AI.AssistantMode).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server")
	}
}
