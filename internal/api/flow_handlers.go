package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sammeh543/CycleTrackApp-sub001/internal/service"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

func PostFlow(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.FlowLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateFlowLogRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		log, err := service.LogFlow(c.Request.Context(), app.FlowRepo(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save flow log")
			return
		}

		HandleCreated(c, app.Logger(), log)
	}
}

func GetFlow(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		logs, err := app.FlowRepo().ListFlowLogs(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch flow logs")
			return
		}

		// Optional date-range filter; dates compare lexicographically.
		from, to := c.Query("from"), c.Query("to")
		if from != "" || to != "" {
			filtered := logs[:0]
			for _, l := range logs {
				if from != "" && l.Date < from {
					continue
				}
				if to != "" && l.Date > to {
					continue
				}
				filtered = append(filtered, l)
			}
			logs = filtered
		}

		HandleSuccess(c, app.Logger(), logs, nil)
	}
}

func DeleteFlow(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		err := app.FlowRepo().DeleteFlowLog(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Flow log not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to delete flow log")
			return
		}

		HandleSuccess(c, app.Logger(), nil, nil)
	}
}
