package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/catalog"
	"empoweryouth-api/pkg/models"
)

// JobsHandler returns the full static job catalog, unfiltered.
func JobsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.JobsResponse{Jobs: catalog.Jobs()})
	}
}

// CoursesHandler returns the full static course catalog, unfiltered.
func CoursesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.CoursesResponse{Courses: catalog.Courses()})
	}
}
