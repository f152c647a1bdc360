package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GetCalendar returns one status per day of the requested month
// (?month=YYYY-MM, defaulting to the current month). The same engine path
// serves GetDay, so the two views can never disagree.
func GetCalendar(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		month := c.Query("month")
		if month == "" {
			month = time.Now().Format("2006-01")
		}

		days, err := app.Insights().CalendarMonth(c.Request.Context(), user.ID, month, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid month")
			return
		}

		HandleSuccess(c, app.Logger(), days, map[string]any{"month": month})
	}
}

func GetDay(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		date := c.Query("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		day, err := app.Insights().DayDetail(c.Request.Context(), user.ID, date, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid date")
			return
		}

		HandleSuccess(c, app.Logger(), day, nil)
	}
}
