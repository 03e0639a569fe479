package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/controllers"
	"crewquick/internal/middleware"
	"crewquick/internal/policy"
)

func AdminRoutes(r *gin.Engine, db *gorm.DB) {
	ac := controllers.NewAdminController(db)

	admin := r.Group("/admin")
	{
		admin.GET("/users", middleware.Authorize(policy.ActionListAllUsers), ac.ListUsers)
		admin.GET("/jobs", middleware.Authorize(policy.ActionListAllJobs), ac.ListJobs)
	}
}
