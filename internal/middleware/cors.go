package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AllowedMethods and AllowedHeaders are advertised on every response.
var (
	AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	AllowedHeaders = []string{"Content-Type"}
)

// PermissiveCORS sets the wildcard CORS headers on every response, including requests that
// carry no Origin header and are therefore skipped by cors.New. Preflights that do carry an
// Origin are answered by cors.New before this runs.
func PermissiveCORS() gin.HandlerFunc {
	methods := strings.Join(AllowedMethods, ", ")
	headers := strings.Join(AllowedHeaders, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Next()
	}
}
