package handlers

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/middleware"
	"empoweryouth-api/internal/catalog"
	"empoweryouth-api/internal/store"
	"empoweryouth-api/pkg/models"
)

// DashboardHandler aggregates the user's skills with the static
// catalogs. CoursesCompleted and JobApplications in the progress block
// are randomized display values, not counts from stored records.
func DashboardHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID := middleware.UserID(c)

		user, err := st.FindUserByID(ctx, userID)
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "User not found",
			})
		}
		if err != nil {
			return err
		}

		records, err := st.ListUserSkills(ctx, userID)
		if err != nil {
			return err
		}

		skills := make([]models.Skill, len(records))
		for i, record := range records {
			skills[i] = models.Skill{Name: record.SkillName, Level: record.Level}
		}

		jobs := catalog.Jobs()
		courses := catalog.Courses()
		recommended := recommendCourses(courses, records)

		profileCompletion := 45
		if user.AssessmentCompleted {
			profileCompletion = 85
		}

		return c.JSON(http.StatusOK, models.DashboardResponse{
			Skills:             skills,
			JobMatches:         jobs,
			Jobs:               jobs,
			Courses:            courses,
			RecommendedCourses: recommended,
			Progress: models.Progress{
				ProfileCompletion: profileCompletion,
				CoursesCompleted:  rand.Intn(5) + 1,
				JobApplications:   rand.Intn(15) + 5,
			},
		})
	}
}

// recommendCourses keeps courses teaching at least one skill the user
// does not already have, capped at 6.
func recommendCourses(courses []models.Course, records []models.SkillRecord) []models.Course {
	owned := make(map[string]bool, len(records))
	for _, record := range records {
		owned[strings.ToLower(record.SkillName)] = true
	}

	recommended := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		for _, skill := range course.Skills {
			if !owned[strings.ToLower(skill)] {
				recommended = append(recommended, course)
				break
			}
		}
		if len(recommended) == 6 {
			break
		}
	}
	return recommended
}
