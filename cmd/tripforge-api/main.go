// README: Entry point; loads config, wires providers and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"googlemaps.github.io/maps"

	"tripforge/internal/ai"
	"tripforge/internal/config"
	httptransport "tripforge/internal/http"
	"tripforge/internal/http/handlers"
	"tripforge/internal/infra"
	"tripforge/internal/logger"
	"tripforge/internal/modules/activities"
	"tripforge/internal/modules/flights"
	"tripforge/internal/modules/itinerary"
	"tripforge/internal/modules/lodging"
	"tripforge/internal/modules/restaurants"
	"tripforge/internal/modules/trip"
	"tripforge/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zlog := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	redisClient := infra.NewRedis(cfg.Redis.Addr)

	// Every provider is optional: an absent credential routes the stage to
	// its fallback rather than failing startup.
	var offerProvider flights.OfferProvider
	if cfg.Providers.FlightsLive && cfg.Providers.DuffelToken != "" {
		offerProvider = flights.NewDuffelClient(cfg.Providers.DuffelToken)
	}

	var mapsClient *maps.Client
	if cfg.Providers.PlacesKey != "" {
		mapsClient, err = maps.NewClient(maps.WithAPIKey(cfg.Providers.PlacesKey))
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}
	var activitySearcher activities.PlacesSearcher
	if cfg.Providers.ActivitiesLive && mapsClient != nil {
		activitySearcher = mapsClient
	}
	var restaurantClient restaurants.PlacesClient
	if cfg.Providers.RestaurantsLive && mapsClient != nil {
		restaurantClient = mapsClient
	}

	var narrativeProvider ai.NarrativeProvider
	if cfg.Providers.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.Providers.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		narrativeProvider = gemini
	}

	tripStore := trip.NewStore(dbPool)
	generator := service.NewGenerator(
		tripStore,
		flights.NewService(offerProvider, cfg.Providers.FlightTestCarrier, zlog),
		lodging.NewService(cfg.Providers.HotelsLive, zlog),
		activities.NewService(activitySearcher, redisClient, zlog),
		restaurants.NewService(restaurantClient, redisClient, zlog),
		itinerary.NewGenerator(narrativeProvider, zlog),
		zlog,
	)

	router := httptransport.NewRouter(httptransport.ServerDeps{
		Trips: handlers.NewTripHandler(tripStore, generator, zlog),
		Log:   zlog,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	zlog.Info("tripforge api listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
