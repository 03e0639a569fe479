package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Job is a posting owned by a contractor. Jobs are never edited or closed
// through the API; Status is carried in the schema with its default only.
type Job struct {
	gorm.Model
	Title          string         `json:"title" binding:"required"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	ContractorID   uint           `json:"contractor_id" gorm:"index;not null"`
	RequiredSkills pq.StringArray `json:"required_skills" gorm:"type:text[]"`
	Status         string         `json:"status" gorm:"type:varchar(50);default:open"` // open, filled, closed

	Applications []JobApplication `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"applications,omitempty"`
}
