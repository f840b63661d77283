package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/middleware"
	"empoweryouth-api/internal/chat"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

// ChatHandler answers one chat turn and persists it. A missing
// session id starts a new conversation. The Redis history cache is
// best-effort: a cache failure is logged and never fails the turn.
func ChatHandler(st store.Store, responder *chat.Responder, history *chat.HistoryClient, limiter *chat.RateLimiter) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()
		userID := middleware.UserID(c)

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Message is required",
			})
		}

		if limiter != nil && !limiter.Allow(userID) {
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many chat requests",
			})
		}

		language := utils.GetStringOrDefault(req.Language, "en")
		sessionID := utils.GetStringOrDefault(req.SessionID, utils.NewID())

		response := responder.Respond(req.Message, language)

		record := &models.ChatMessage{
			ID:          utils.NewID(),
			UserID:      userID,
			SessionID:   sessionID,
			UserMessage: req.Message,
			BotResponse: response,
			Language:    language,
			Timestamp:   time.Now(),
		}

		if err := st.InsertChatMessage(ctx, record); err != nil {
			return err
		}

		if history != nil {
			if err := history.AppendTurn(ctx, record); err != nil {
				logger.Warn("Failed to cache chat turn", map[string]interface{}{
					"request_id": c.Get("request_id"),
					"session_id": sessionID,
					"error":      err.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			Response:  response,
			SessionID: sessionID,
		})
	}
}
