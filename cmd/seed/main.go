// README: Bulk seeder; loads the sample catalogue with sentinel-coordinate fallback.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"roamhaven/internal/config"
	"roamhaven/internal/geo"
	"roamhaven/internal/infra"
	"roamhaven/internal/modules/listing"
	"roamhaven/internal/modules/user"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

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

	userSvc := user.NewService(user.NewStore(dbPool), user.NewRedisSessions(redisClient))
	listingSvc := listing.NewService(listing.NewStore(dbPool), geocoder, log)

	owner, err := defaultOwner(ctx, userSvc)
	if err != nil {
		log.Fatal().Err(err).Msg("ensure default owner")
	}

	seeded := 0
	for _, item := range sampleListings {
		cmd := item
		cmd.OwnerID = owner.ID
		// SeedCreate falls back to sentinel coordinates when the provider is
		// unavailable, so a flaky geocoder never aborts the load.
		if _, err := listingSvc.SeedCreate(ctx, cmd); err != nil {
			log.Error().Err(err).Str("title", cmd.Title).Msg("seed listing failed")
			continue
		}
		seeded++
	}

	log.Info().Int("seeded", seeded).Int("total", len(sampleListings)).Msg("seeding complete")
}

// defaultOwner finds or creates the account that owns all seeded listings.
func defaultOwner(ctx context.Context, users *user.Service) (*user.User, error) {
	u, _, err := users.Register(ctx, "owner@roamhaven.com", "defaultowner", "defaultpassword123")
	if err == nil {
		return u, nil
	}
	if errors.Is(err, user.ErrEmailTaken) {
		existing, _, loginErr := users.Login(ctx, "owner@roamhaven.com", "defaultpassword123")
		return existing, loginErr
	}
	return nil, err
}
