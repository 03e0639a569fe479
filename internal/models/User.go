package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Role is the closed set of permission classes a user can hold.
type Role string

const (
	RoleWorker     Role = "worker"
	RoleContractor Role = "contractor"
	RoleAdmin      Role = "admin"
)

// ParseRole validates and normalizes a role supplied at the API boundary.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleWorker, RoleContractor, RoleAdmin:
		return role, nil
	}
	return "", errors.New("invalid role")
}

type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         Role   `json:"role" gorm:"type:varchar(50);not null"` // "worker", "contractor", "admin"

	// Role-specific relations; at most one is set, matching Role.
	Worker     *Worker     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"worker,omitempty"`
	Contractor *Contractor `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"contractor,omitempty"`
}
