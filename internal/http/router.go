// README: HTTP route registration; delegates to module services via handlers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"roamhaven/internal/ai"
	"roamhaven/internal/http/handlers"
	"roamhaven/internal/http/middleware"
	"roamhaven/internal/modules/assistant"
	"roamhaven/internal/modules/booking"
	"roamhaven/internal/modules/listing"
	"roamhaven/internal/modules/review"
	"roamhaven/internal/modules/user"
)

type RouterDeps struct {
	Listings  *listing.Service
	Reviews   *review.Service
	Bookings  *booking.Service
	Users     *user.Service
	Assistant *assistant.Service
	Planner   *ai.Planner
	Uploader  handlers.Uploader
	OAuth     *oauth2.Config
	Log       zerolog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.Auth(deps.Users))

	listingHandler := handlers.NewListingHandler(deps.Listings, deps.Reviews, deps.Bookings, deps.Planner, deps.Uploader)
	reviewHandler := handlers.NewReviewHandler(deps.Reviews)
	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	userHandler := handlers.NewUserHandler(deps.Users, deps.OAuth)
	assistantHandler := handlers.NewAssistantHandler(deps.Assistant)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.POST("/api/auth/register", userHandler.Register)
	r.POST("/api/auth/login", userHandler.Login)
	r.POST("/api/auth/logout", userHandler.Logout)
	r.GET("/api/auth/me", middleware.Require(), userHandler.Me)
	r.GET("/auth/google", userHandler.GoogleLogin)
	r.GET("/auth/google/callback", userHandler.GoogleCallback)

	r.GET("/api/listings", listingHandler.List)
	r.GET("/api/listings/:id", listingHandler.Show)
	r.GET("/api/listings/:id/itinerary", listingHandler.Itinerary)
	r.POST("/api/listings", middleware.Require(), listingHandler.Create)
	r.PUT("/api/listings/:id", middleware.Require(), listingHandler.Update)
	r.DELETE("/api/listings/:id", middleware.Require(), listingHandler.Delete)

	r.POST("/api/listings/:id/reviews", middleware.Require(), reviewHandler.Create)
	r.DELETE("/api/listings/:id/reviews/:reviewId", middleware.Require(), reviewHandler.Delete)

	r.POST("/api/bookings", middleware.Require(), bookingHandler.Create)
	r.GET("/api/bookings", middleware.Require(), bookingHandler.ListMine)

	r.POST("/api/jarvis", assistantHandler.Chat)

	return r
}
