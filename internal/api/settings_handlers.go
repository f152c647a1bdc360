package api

import (
	"github.com/gin-gonic/gin"

	"github.com/sammeh543/CycleTrackApp-sub001/internal/service"
)

func GetSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		settings, err := service.GetSettings(c.Request.Context(), app.SettingsRepo(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch settings")
			return
		}

		HandleSuccess(c, app.Logger(), settings, nil)
	}
}

func PutSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.SettingsRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateSettingsRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		settings, err := service.UpdateSettings(c.Request.Context(), app.SettingsRepo(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save settings")
			return
		}

		HandleSuccess(c, app.Logger(), settings, nil)
	}
}
