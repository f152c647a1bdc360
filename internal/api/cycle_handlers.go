package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sammeh543/CycleTrackApp-sub001/internal/service"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

func PostCycle(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.CycleStartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateCycleStartRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.StartCycle(c.Request.Context(), app.CycleRepo(), user, &req)
		if err != nil {
			if errors.Is(err, service.ErrCycleInProgress) {
				HandleError(c, app.Logger(), err, 409, "Cycle already in progress")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to start cycle")
			return
		}

		HandleCreated(c, app.Logger(), rec)
	}
}

func PutCycleEnd(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.CycleEndRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateCycleEndRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.EndCycle(c.Request.Context(), app.CycleRepo(), user, c.Param("id"), &req)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				HandleError(c, app.Logger(), err, 404, "Cycle not found")
			case errors.Is(err, service.ErrEndBeforeStart):
				HandleError(c, app.Logger(), err, 400, "Invalid end date")
			default:
				HandleError(c, app.Logger(), err, 500, "Failed to end cycle")
			}
			return
		}

		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

func GetCycles(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		records, err := app.CycleRepo().ListCycleRecords(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch cycle records")
			return
		}

		HandleSuccess(c, app.Logger(), records, nil)
	}
}

func GetCycleStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		stats, err := app.Insights().Stats(c.Request.Context(), user.ID, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute cycle stats")
			return
		}

		HandleSuccess(c, app.Logger(), stats, nil)
	}
}

func GetUpcoming(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		windows, err := app.Insights().Upcoming(c.Request.Context(), user.ID, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute upcoming periods")
			return
		}

		HandleSuccess(c, app.Logger(), windows, nil)
	}
}

func GetCycleTrend(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		gaps, err := app.Insights().Trend(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute cycle trend")
			return
		}

		HandleSuccess(c, app.Logger(), gaps, nil)
	}
}
