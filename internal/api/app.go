package api

import (
	"github.com/gin-gonic/gin"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/service"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

type App interface {
	Logger() internal.Logger
	FlowRepo() storage.FlowRepository
	CycleRepo() storage.CycleRepository
	SymptomRepo() storage.SymptomRepository
	SettingsRepo() storage.SettingsRepository
	Insights() *service.InsightsService
}

type app struct {
	logger   internal.Logger
	repos    storage.Repositories
	insights *service.InsightsService
}

func NewApp(logger internal.Logger, repos storage.Repositories) App {
	return &app{
		logger:   logger,
		repos:    repos,
		insights: service.NewInsightsService(repos.Flow, repos.Cycles, repos.Settings),
	}
}

func (a *app) Logger() internal.Logger                  { return a.logger }
func (a *app) FlowRepo() storage.FlowRepository         { return a.repos.Flow }
func (a *app) CycleRepo() storage.CycleRepository       { return a.repos.Cycles }
func (a *app) SymptomRepo() storage.SymptomRepository   { return a.repos.Symptoms }
func (a *app) SettingsRepo() storage.SettingsRepository { return a.repos.Settings }
func (a *app) Insights() *service.InsightsService       { return a.insights }

// RegisterRoutes mounts every handler behind the supplied auth middleware.
func RegisterRoutes(r *gin.Engine, application App, authMW gin.HandlerFunc) {
	r.Use(RequestIDMiddleware())

	authed := r.Group("/api", authMW)
	authed.POST("/flow", PostFlow(application))
	authed.GET("/flow", GetFlow(application))
	authed.DELETE("/flow/:id", DeleteFlow(application))

	authed.POST("/cycles", PostCycle(application))
	authed.PUT("/cycles/:id/end", PutCycleEnd(application))
	authed.GET("/cycles", GetCycles(application))
	authed.GET("/cycles/stats", GetCycleStats(application))
	authed.GET("/cycles/upcoming", GetUpcoming(application))
	authed.GET("/cycles/trend", GetCycleTrend(application))

	authed.GET("/calendar", GetCalendar(application))
	authed.GET("/day", GetDay(application))

	authed.POST("/symptoms", PostSymptom(application))
	authed.GET("/symptoms", GetSymptoms(application))
	authed.GET("/symptoms/top", GetTopSymptoms(application))

	authed.GET("/settings", GetSettings(application))
	authed.PUT("/settings", PutSettings(application))
}
