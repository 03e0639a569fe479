package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewquick/internal/models"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

type postJobInput struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	RequiredSkills []string `json:"required_skills"`
}

// Create posts a new job owned by the caller's contractor profile.
func (j *JobController) Create(c *gin.Context) {
	var input postJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)
	var contractor models.Contractor
	if err := j.DB.Where("user_id = ?", userID).First(&contractor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contractor profile not found"})
		} else {
			logrus.WithError(err).Error("Create job: could not load contractor")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	job := models.Job{
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		ContractorID:   contractor.ID,
		RequiredSkills: pq.StringArray(input.RequiredSkills),
	}
	if err := j.DB.Create(&job).Error; err != nil {
		logrus.WithError(err).Error("Create job: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job posted successfully",
		"job_id":  job.ID,
	})
}

// List returns jobs newest-first with ties broken by id descending.
func (j *JobController) List(c *gin.Context) {
	page, perPage := pagination(c)

	var total int64
	if err := j.DB.Model(&models.Job{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count jobs"})
		return
	}

	var jobs []models.Job
	if err := j.DB.
		Order("created_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list jobs"})
		return
	}

	results := make([]gin.H, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, jobResponse(job))
	}

	c.JSON(http.StatusOK, gin.H{
		"results":  results,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

// Apply records a worker's application. The composite unique index on
// (worker_id, job_id) is the real guard against concurrent duplicates; the
// count below is an early exit only.
func (j *JobController) Apply(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	var worker models.Worker
	if err := j.DB.Where("user_id = ?", userID).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	var job models.Job
	if err := j.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	var existing int64
	if err := j.DB.Model(&models.JobApplication{}).
		Where("worker_id = ? AND job_id = ?", worker.ID, job.ID).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already applied to this job"})
		return
	}

	application := models.JobApplication{WorkerID: worker.ID, JobID: job.ID}
	if err := j.DB.Create(&application).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already applied to this job"})
			return
		}
		logrus.WithError(err).Error("Apply: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully"})
}

func pagination(c *gin.Context) (page, perPage int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func jobResponse(job models.Job) gin.H {
	return gin.H{
		"id":              job.ID,
		"title":           job.Title,
		"description":     job.Description,
		"location":        job.Location,
		"contractor_id":   job.ContractorID,
		"required_skills": []string(job.RequiredSkills),
		"status":          job.Status,
		"created_at":      job.CreatedAt,
	}
}
