package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/controllers"
)

// SetupRouter assembles the engine. The DB handle is passed down explicitly;
// no package keeps an ambient connection.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	// Request logging middleware
	r.Use(ginlog.SetLogger())
	// Recovery middleware
	r.Use(gin.Recovery())

	// Healthcheck
	health := controllers.NewHealthController(db)
	r.GET("/", health.Status)

	AuthRoutes(r, db)
	JobRoutes(r, db)
	MeRoutes(r, db)
	AdminRoutes(r, db)

	return r
}
