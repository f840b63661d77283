package routes

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"empoweryouth-api/internal/api/handlers"
	"empoweryouth-api/internal/api/middleware"
	"empoweryouth-api/internal/auth"
	"empoweryouth-api/internal/chat"
	"empoweryouth-api/internal/config"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, st store.Store, tokens *auth.TokenService, responder *chat.Responder, history *chat.HistoryClient, limiter *chat.RateLimiter) {
	e.HTTPErrorHandler = httpErrorHandler

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	requireAuth := middleware.RequireAuth(tokens)

	// Root route
	e.GET("/", handlers.RootHandler)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/live", handlers.LivenessHandler)
		health.GET("/ready", handlers.ReadinessHandler(st, history))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", handlers.RegisterHandler(st, tokens))
		authGroup.GET("/me", handlers.MeHandler(st), requireAuth)
	}

	// Assessment route
	e.POST("/assessment/submit", handlers.SubmitAssessmentHandler(st), requireAuth)

	// Dashboard route
	e.GET("/dashboard", handlers.DashboardHandler(st), requireAuth)

	// Chat route
	e.POST("/chat", handlers.ChatHandler(st, responder, history, limiter), requireAuth)

	// Catalog routes
	e.GET("/jobs", handlers.JobsHandler(), requireAuth)
	e.GET("/courses", handlers.CoursesHandler(), requireAuth)

	// Apply route
	e.POST("/apply", handlers.ApplyHandler(st), requireAuth)
}

// httpErrorHandler funnels every error into the single {error} body
// shape. Unmatched routes (echo 404 and 405 alike) echo the path with
// status 404; anything unexpected becomes the generic 500 with the
// cause logged for operators, never surfaced to the caller.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: fmt.Sprintf("Route %s not found", c.Request().URL.Path),
			})
			return
		default:
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			_ = c.JSON(he.Code, models.ErrorResponse{Error: message})
			return
		}
	}

	logging.GetGlobalLogger().Error("Unhandled request error", map[string]interface{}{
		"request_id": c.Get("request_id"),
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"error":      err.Error(),
	})

	_ = c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Internal server error",
	})
}
