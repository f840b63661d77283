package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/middleware"
	"empoweryouth-api/internal/assessment"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

// SubmitAssessmentHandler derives a skill vector from the submitted
// answers, stores it on the user, and replaces the user's skill-record
// set wholesale. The delete-then-insert replacement has no isolation:
// concurrent submissions for the same user are last-write-wins.
func SubmitAssessmentHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()
		userID := middleware.UserID(c)

		var req models.AssessmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		skillVector := assessment.DeriveSkillVector(req)

		answers := map[string]interface{}{}
		if req.Skills != nil {
			answers["skills"] = req.Skills
		}
		if req.Interests != nil {
			answers["interests"] = req.Interests
		}

		if err := st.UpdateUserAssessment(ctx, userID, skillVector, answers); err != nil {
			return err
		}

		records := make([]models.SkillRecord, len(skillVector))
		now := time.Now()
		for i, skill := range skillVector {
			records[i] = models.SkillRecord{
				ID:        utils.NewID(),
				UserID:    userID,
				SkillName: skill.Name,
				Level:     skill.Level,
				CreatedAt: now,
			}
		}
		if err := st.ReplaceUserSkills(ctx, userID, records); err != nil {
			return err
		}

		logger.Info("Assessment submitted", map[string]interface{}{
			"request_id": c.Get("request_id"),
			"user_id":    userID,
			"skills":     len(skillVector),
		})

		return c.JSON(http.StatusOK, models.AssessmentResponse{
			Success:     true,
			SkillVector: skillVector,
		})
	}
}
