package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Status probes store connectivity with a trivial query and always answers
// 200; a broken database is reported in the body, not as an error.
func (h *HealthController) Status(c *gin.Context) {
	var probe int
	if err := h.DB.Raw("SELECT 1").Scan(&probe).Error; err != nil || probe != 1 {
		c.JSON(http.StatusOK, gin.H{
			"status":        "CrewQuick API running!",
			"db_connection": "failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "CrewQuick API running!",
		"db_connection": "successful",
	})
}
