package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sammeh543/CycleTrackApp-sub001/internal/service"
)

func PostSymptom(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.SymptomLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateSymptomLogRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		log, err := service.LogSymptom(c.Request.Context(), app.SymptomRepo(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save symptom log")
			return
		}

		HandleCreated(c, app.Logger(), log)
	}
}

func GetSymptoms(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		logs, err := app.SymptomRepo().ListSymptomLogs(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch symptom logs")
			return
		}

		// Optional filter to a single day.
		if date := c.Query("date"); date != "" {
			filtered := logs[:0]
			for _, l := range logs {
				if l.Date == date {
					filtered = append(filtered, l)
				}
			}
			logs = filtered
		}

		HandleSuccess(c, app.Logger(), logs, nil)
	}
}

func GetTopSymptoms(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		limit := 5
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				if err == nil {
					err = errors.New("limit must be positive")
				}
				HandleError(c, app.Logger(), err, 400, "Invalid limit")
				return
			}
			limit = parsed
		}

		logs, err := app.SymptomRepo().ListSymptomLogs(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch symptom logs")
			return
		}

		HandleSuccess(c, app.Logger(), service.TopSymptoms(logs, limit), nil)
	}
}
