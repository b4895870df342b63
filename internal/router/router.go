package router

import (
	"net/http"
	"time"

	_ "restaurant-finder-api/docs"
	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/handler"
	"restaurant-finder-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options controls the cross cutting behaviour of the engine.
type Options struct {
	Logger         zerolog.Logger
	RequestTimeout time.Duration
	SearchLimit    config.RateLimit
}

// New assembles the gin engine: middleware, CORS, swagger and all API routes including the
// legacy aliases.
func New(location *handler.LocationHandler, search *handler.SearchHandler, opts Options) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Origin", "Content-Type", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:             []string{middleware.SessionHeader, middleware.RequestIDHeader},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}))
	r.Use(middleware.PermissiveCORS())
	r.Use(middleware.Session())
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit := middleware.RateLimit(opts.SearchLimit)

	for _, path := range []string{"/location", "/LocalServer"} {
		r.POST(path, location.ReportLocation)
		r.GET(path, location.GetLocation)
		r.OPTIONS(path, handler.Preflight)
	}
	r.GET("/getLocation", location.GetLocation)

	// One bucket is shared by /search and its aliases.
	for _, path := range []string{"/search", "/find", "/findRestaurant"} {
		r.POST(path, limit, search.Search)
		r.OPTIONS(path, handler.Preflight)
	}

	return r
}
