package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/controllers"
	"crewquick/internal/middleware"
	"crewquick/internal/policy"
)

func MeRoutes(r *gin.Engine, db *gorm.DB) {
	pc := controllers.NewProfileController(db)

	me := r.Group("/me")
	{
		me.GET("", middleware.Authorize(policy.ActionViewOwnProfile), pc.Me)
		me.GET("/applications", middleware.Authorize(policy.ActionViewOwnApplications), pc.MyApplications)
		me.GET("/jobs", middleware.Authorize(policy.ActionViewOwnJobs), pc.MyJobs)
	}
}
