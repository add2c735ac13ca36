package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/festops/scoreboard-service/internal/repository"
	"github.com/festops/scoreboard-service/internal/service"
)

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo repository.Pinger, activitySvc service.ActivityService, scoreSvc service.ScoreService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewActivityHandler(activitySvc).Register(api)
		NewScoreHandler(scoreSvc).Register(api)
	}
}
