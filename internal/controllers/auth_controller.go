package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewquick/internal/auth"
	"crewquick/internal/middleware"
	"crewquick/internal/models"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// Worker profile fields
	Name           string   `json:"name"`
	Skills         []string `json:"skills"`
	Transportation string   `json:"transportation"`

	// Contractor profile fields
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`

	// Shared
	Location string `json:"location"`
}

// Signup creates the user and its role profile in one transaction; either
// both rows commit or neither does.
func (a *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if role == models.RoleWorker && input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required for worker role"})
		return
	}
	if role == models.RoleContractor && input.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "business_name is required for contractor role"})
		return
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := a.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: digest,
		Role:         role,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		logrus.WithError(err).Error("Signup: could not create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	if err := createProfileRecord(tx, &user, input); err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Signup: could not create profile record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile record"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s signed up successfully", capitalize(string(role))),
		"user_id": user.ID,
	})
}

// Login verifies credentials and returns a bearer token carrying the role
// claim. Unknown email and wrong password get the same response.
func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			logrus.WithError(err).Error("Login: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	if !auth.CheckPassword(body.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user_id":      user.ID,
		"role":         user.Role,
	})
}

func createProfileRecord(tx *gorm.DB, user *models.User, input signupInput) error {
	switch user.Role {
	case models.RoleWorker:
		worker := models.Worker{
			UserID:         user.ID,
			Name:           input.Name,
			Location:       input.Location,
			Skills:         pq.StringArray(input.Skills),
			Transportation: input.Transportation,
		}
		return tx.Create(&worker).Error
	case models.RoleContractor:
		contractor := models.Contractor{
			UserID:       user.ID,
			BusinessName: input.BusinessName,
			Location:     input.Location,
			Phone:        input.Phone,
		}
		return tx.Create(&contractor).Error
	}
	// Admins carry no profile row.
	return nil
}

// isDuplicateKey recognizes unique-constraint violations across dialects.
// GORM's translated error covers the common case; the pq code and message
// match are driver-specific fallbacks.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
