package handler

import (
	"context"
	"errors"
	"net/http"

	"restaurant-finder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"no location data available"`
}

// respondError maps a service outcome to a status and a client safe message.
// Diagnostic detail is only written to the request log.
func respondError(c *gin.Context, err error) {
	logger := zerolog.Ctx(c.Request.Context())

	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn().Err(err).Msg("request timed out")
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "request timed out"})
		return
	}

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		logger.Error().Err(err).Msg("unclassified failure")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	switch svcErr.Kind {
	case service.KindInput:
		logger.Info().Err(svcErr.Err).Str("kind", svcErr.Kind.String()).Msg(svcErr.Message)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: svcErr.Message})
	case service.KindResolution:
		logger.Warn().Err(svcErr.Err).Str("kind", svcErr.Kind.String()).Msg(svcErr.Message)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: svcErr.Message})
	case service.KindGateway, service.KindParse:
		logger.Error().Err(svcErr.Err).Str("kind", svcErr.Kind.String()).Msg(svcErr.Message)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: svcErr.Message})
	default:
		logger.Error().Err(svcErr.Err).Str("kind", svcErr.Kind.String()).Msg(svcErr.Message)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// Preflight answers OPTIONS requests that were not already handled by the CORS middleware
func Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
