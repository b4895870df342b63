package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/handler"
	"restaurant-finder-api/internal/places"
	"restaurant-finder-api/internal/repository"
	"restaurant-finder-api/internal/router"
	"restaurant-finder-api/internal/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Restaurant Finder API
//	@version		1.0
//	@description	Stores a caller's location and picks a random nearby restaurant matching cuisine, distance, rating and price filters.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)
	gin.SetMode(config.GinMode)

	store, closeStore, err := newLocationStore(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Str("store", config.LocationStore).Msg("cannot open location store")
	}
	defer closeStore()

	// Initialize layers
	httpClient := places.NewHTTPClient(config.ProviderTimeout)
	geocoder := places.NewGeocoder(httpClient, config.GeocodeBaseURL, config.GeocodeAPIKey, config.ProviderTimeout)
	placesClient := places.NewClient(httpClient, config.PlacesBaseURL, config.PlacesAPIKey, config.ProviderTimeout)

	locationService := service.NewLocationService(store)
	searchService := service.NewSearchService(store, geocoder, placesClient, nil)

	locationHandler := handler.NewLocationHandler(locationService)
	searchHandler := handler.NewSearchHandler(searchService, config.DefaultRadius)

	r := router.New(locationHandler, searchHandler, router.Options{
		Logger:         log.Logger,
		RequestTimeout: config.RequestTimeout,
		SearchLimit:    config.SearchLimit(),
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", config.ServerAddress).Str("store", config.LocationStore).Msg("server listening")
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// newLocationStore opens the backend selected by LOCATION_STORE. The returned func releases it.
func newLocationStore(ctx context.Context, cfg config.Config) (service.LocationStore, func(), error) {
	switch cfg.LocationStore {
	case config.StorePostgres:
		// Database connection
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot connect to db: %w", err)
		}

		store := repository.NewPostgresLocationStore(conn)
		if err := store.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store, conn.Close, nil

	case config.StoreDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot load aws config: %w", err)
		}
		return repository.NewDynamoLocationStore(dynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable), func() {}, nil

	default:
		store := repository.NewMemoryLocationStore(cfg.MemoryStoreTTL)
		sweepCtx, stop := context.WithCancel(log.Logger.WithContext(ctx))
		go store.Run(sweepCtx, memorySweepInterval(cfg.MemoryStoreTTL))
		return store, stop, nil
	}
}

func memorySweepInterval(ttl time.Duration) time.Duration {
	if ttl > 0 && ttl < time.Minute {
		return ttl
	}
	return time.Minute
}
