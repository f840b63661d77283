package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/middleware"
	"empoweryouth-api/internal/auth"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

var validate = validator.New()

// RegisterHandler creates a user and issues its first bearer token.
// Email uniqueness is enforced at creation; the password is required
// in the payload but never persisted.
func RegisterHandler(st store.Store, tokens *auth.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()

		var req models.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "All fields are required",
			})
		}

		if _, err := st.FindUserByEmail(ctx, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "User already exists",
			})
		} else if err != store.ErrNotFound {
			return err
		}

		user := &models.User{
			ID:                  utils.NewID(),
			Name:                req.Name,
			Email:               req.Email,
			Phone:               req.Phone,
			Location:            req.Location,
			Experience:          req.Experience,
			SkillVector:         []models.Skill{},
			AssessmentCompleted: false,
			CreatedAt:           time.Now(),
		}

		if err := st.CreateUser(ctx, user); err != nil {
			return err
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			return err
		}

		logger.Info("User registered", map[string]interface{}{
			"request_id": c.Get("request_id"),
			"user_id":    user.ID,
		})

		return c.JSON(http.StatusOK, models.AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// MeHandler resolves the authenticated token back to its user record.
// The store never exposes the backing database's internal id, so the
// response carries only the document fields.
func MeHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := st.FindUserByID(c.Request().Context(), middleware.UserID(c))
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
			})
		}
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, user)
	}
}
