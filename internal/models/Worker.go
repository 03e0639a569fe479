// internal/models/worker.go
package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Worker struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Skills         pq.StringArray `json:"skills" gorm:"type:text[]"` // e.g. ["roofing","painting"]
	Transportation string         `json:"transportation"`
	// DO NOT include Email, Password, or Role here. They are in the User model.

	Applications []JobApplication `gorm:"foreignKey:WorkerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"applications,omitempty"`
}
