package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/controllers"
	"crewquick/internal/middleware"
	"crewquick/internal/policy"
)

func JobRoutes(r *gin.Engine, db *gorm.DB) {
	jc := controllers.NewJobController(db)

	jobs := r.Group("/jobs")
	{
		jobs.POST("", middleware.Authorize(policy.ActionPostJob), jc.Create)
		jobs.GET("", middleware.Authorize(policy.ActionListJobs), jc.List)
		jobs.POST("/:id/apply", middleware.Authorize(policy.ActionApplyToJob), jc.Apply)
	}
}
