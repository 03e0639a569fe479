package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/models"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// ListUsers returns every account with its role.
func (a *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := a.DB.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing users"})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, user := range users {
		out = append(out, gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ListJobs returns every job regardless of owner.
func (a *AdminController) ListJobs(c *gin.Context) {
	var jobs []models.Job
	if err := a.DB.Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing jobs"})
		return
	}

	out := make([]gin.H, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jobResponse(job))
	}

	c.JSON(http.StatusOK, out)
}
