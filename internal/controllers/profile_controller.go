package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crewquick/internal/models"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// Me returns the caller's account with its role profile attached.
func (p *ProfileController) Me(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := p.DB.Preload("Worker").Preload("Contractor").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	resp := gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
	switch {
	case user.Worker != nil:
		resp["profile"] = gin.H{
			"id":             user.Worker.ID,
			"name":           user.Worker.Name,
			"location":       user.Worker.Location,
			"skills":         []string(user.Worker.Skills),
			"transportation": user.Worker.Transportation,
		}
	case user.Contractor != nil:
		resp["profile"] = gin.H{
			"id":            user.Contractor.ID,
			"business_name": user.Contractor.BusinessName,
			"location":      user.Contractor.Location,
			"phone":         user.Contractor.Phone,
		}
	default:
		resp["profile"] = nil
	}

	c.JSON(http.StatusOK, resp)
}

// MyApplications lists the caller's applications with the job embedded.
func (p *ProfileController) MyApplications(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var worker models.Worker
	if err := p.DB.Where("user_id = ?", userID).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	var applications []models.JobApplication
	if err := p.DB.Preload("Job").
		Where("worker_id = ?", worker.ID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list applications"})
		return
	}

	out := make([]gin.H, 0, len(applications))
	for _, application := range applications {
		out = append(out, gin.H{
			"application_id": application.ID,
			"job_id":         application.JobID,
			"applied_at":     application.AppliedAt,
			"job":            jobResponse(application.Job),
		})
	}

	c.JSON(http.StatusOK, out)
}

// MyJobs lists jobs posted by the caller's contractor profile.
func (p *ProfileController) MyJobs(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var contractor models.Contractor
	if err := p.DB.Where("user_id = ?", userID).First(&contractor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contractor profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	var jobs []models.Job
	if err := p.DB.
		Where("contractor_id = ?", contractor.ID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list jobs"})
		return
	}

	out := make([]gin.H, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jobResponse(job))
	}

	c.JSON(http.StatusOK, out)
}
