package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/chat"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
)

var startTime = time.Now()

// RootHandler answers the unauthenticated liveness message at GET /.
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.RootResponse{
		Message: "EmpowerYouth API is running!",
	})
}

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": c.Get("request_id")})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the store and session cache are
// reachable. A missing cache degrades the check, not the status code
// gate for the store.
func ReadinessHandler(st store.Store, history *chat.HistoryClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := http.StatusOK

		if err := st.Ping(c.Request().Context()); err != nil {
			checks["store"] = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			checks["store"] = "ok"
		}

		if history != nil {
			if err := history.Ping(c.Request().Context()); err != nil {
				checks["session_cache"] = "unreachable"
			} else {
				checks["session_cache"] = "ok"
			}
		}

		state := "ready"
		if status != http.StatusOK {
			state = "degraded"
		}

		return c.JSON(status, models.HealthResponse{
			Status:    state,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}
