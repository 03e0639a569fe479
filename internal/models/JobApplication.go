package models

import (
	"time"

	"gorm.io/gorm"
)

// JobApplication links a worker to a job. The composite unique index is the
// guard for "a worker may apply to a given job at most once"; handler-level
// duplicate checks are early exits only.
type JobApplication struct {
	gorm.Model
	WorkerID  uint      `json:"worker_id" gorm:"uniqueIndex:idx_worker_job;not null"`
	JobID     uint      `json:"job_id" gorm:"uniqueIndex:idx_worker_job;not null"`
	Worker    Worker    `gorm:"foreignKey:WorkerID" json:"-"`
	Job       Job       `gorm:"foreignKey:JobID" json:"-"`
	AppliedAt time.Time `json:"applied_at" gorm:"autoCreateTime"`
}
