package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/middleware"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

// ApplyHandler records a job application. The jobId is not checked
// against the catalog: catalog identifiers regenerate per request, so
// there is nothing stable to validate against.
func ApplyHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		userID := middleware.UserID(c)

		var req models.ApplyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Job ID is required",
			})
		}

		application := &models.JobApplication{
			ID:        utils.NewID(),
			UserID:    userID,
			JobID:     req.JobID,
			AppliedAt: time.Now(),
			Status:    "applied",
		}

		if err := st.InsertApplication(c.Request().Context(), application); err != nil {
			return err
		}

		logger.Info("Application submitted", map[string]interface{}{
			"request_id": c.Get("request_id"),
			"user_id":    userID,
			"job_id":     req.JobID,
		})

		return c.JSON(http.StatusOK, models.ApplyResponse{
			Success: true,
			Message: "Application submitted successfully!",
		})
	}
}
