package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/controllers"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := controllers.NewAuthController(db)

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
}
