// internal/models/contractor.go
package models

import (
	"gorm.io/gorm"
)

// Contractor is the business profile owned 1:1 by a user with role "contractor".
type Contractor struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	BusinessName string `json:"business_name"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`

	Jobs []Job `gorm:"foreignKey:ContractorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"jobs,omitempty"`
}
