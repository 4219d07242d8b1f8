package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"visa-admin-backend/config"
	"visa-admin-backend/internal/mw"
	"visa-admin-backend/internal/remote"
	"visa-admin-backend/internal/service"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(
	cfg *config.Config,
	rc *remote.Client,
	applicants *service.ApplicantService,
	reSchedules *service.ReScheduleService,
	configuration *service.ConfigurationService,
	sessions *mw.SessionManager,
) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(applicants, reSchedules, configuration, rc, sessions)

	rateLimiter := mw.RateLimit(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	api := r.Group("/api")
	api.Use(rateLimiter)

	// Sign-in is the only route reachable without a session.
	api.POST("/auth/login", handler.Login)

	authed := api.Group("")
	authed.Use(sessions.RequireAuth())
	{
		authed.POST("/auth/logout", handler.Logout)
		authed.GET("/auth/me", handler.Me)

		authed.GET("/applicants", handler.ListApplicants)
		authed.POST("/applicants", handler.CreateApplicant)
		authed.GET("/applicants/:id", handler.GetApplicant)
		authed.PUT("/applicants/:id", handler.UpdateApplicant)
		authed.DELETE("/applicants/:id", handler.DeleteApplicant)
		authed.POST("/applicants/:id/test-credentials", handler.TestCredentials)
		authed.GET("/applicants/:id/re-schedules", handler.ListReSchedulesByApplicant)

		authed.GET("/re-schedules", handler.ListReSchedules)
		authed.POST("/re-schedules", handler.CreateReSchedule)
		authed.GET("/re-schedules/:id", handler.GetReSchedule)
		authed.PUT("/re-schedules/:id", handler.UpdateReSchedule)
		authed.DELETE("/re-schedules/:id", handler.DeleteReSchedule)
		authed.POST("/re-schedules/:id/retry", handler.RetryReSchedule)
		authed.GET("/re-schedules/:id/logs", handler.GetReScheduleLogs)

		authed.GET("/configuration", handler.GetConfiguration)
		authed.PUT("/configuration/:id", handler.UpdateConfiguration)
	}

	return r
}
