// File: /routes/routes_test.go
package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"drivecalc-api/config"
	"drivecalc-api/services"
)

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := config.Load()
	emailService := services.NewEmailService(cfg, zap.NewNop())

	r := gin.New()
	SetupRoutes(r, nil, cfg, emailService)
	return r
}

func hasRoute(r *gin.Engine, method, path string) bool {
	for _, route := range r.Routes() {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

func TestDebugVerificationCodeRouteOnlyInDebugMode(t *testing.T) {
	previous := gin.Mode()
	defer gin.SetMode(previous)

	gin.SetMode(gin.DebugMode)
	assert.True(t, hasRoute(buildRouter(t), http.MethodGet, "/api/v1/auth/debug/verification-code"))

	gin.SetMode(gin.ReleaseMode)
	assert.False(t, hasRoute(buildRouter(t), http.MethodGet, "/api/v1/auth/debug/verification-code"))
}
