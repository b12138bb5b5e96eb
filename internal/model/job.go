package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job type values.
const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeContract = "contract"
)

// Work mode values.
const (
	WorkModeRemote = "remote"
	WorkModeOffice = "office"
	WorkModeHybrid = "hybrid"
)

// Job is a job posting created by a recruiter. Postings are never updated
// or deleted. SkillsRequired is free text and is substring-matched by the
// listing filter.
type Job struct {
	ID                 uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CompanyName        string    `json:"companyName" gorm:"size:255;not null"`
	LogoURL            string    `json:"logoURL" gorm:"size:512;not null"`
	JobPosition        string    `json:"jobPosition" gorm:"size:255;not null"`
	MonthlySalary      int       `json:"monthlySalary" gorm:"not null"`
	JobType            string    `json:"jobType" gorm:"size:20"`
	RemoteOffice       string    `json:"remoteOffice" gorm:"size:20"`
	Location           string    `json:"location" gorm:"size:255"`
	JobDescription     string    `json:"jobDescription" gorm:"type:text;not null"`
	CompanyDescription string    `json:"companyDescription" gorm:"type:text;not null"`
	SkillsRequired     string    `json:"skillsRequired" gorm:"size:1024;not null"`
	AdditionalInfo     string    `json:"additionalInfo,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
