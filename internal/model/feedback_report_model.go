package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report sources.
const (
	SourceEvaluation = "evaluation"
	SourceUpload     = "upload"
)

type FeedbackReport struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Source        string         `gorm:"type:varchar(20);index" json:"source"`
	FileName      string         `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	Score         float64        `gorm:"type:float" json:"score"`
	Label         string         `gorm:"type:varchar(50)" json:"label"`
	IsExperienced bool           `json:"is_experienced"`
	Verdict       string         `gorm:"type:varchar(30);index" json:"verdict"`
	Track         string         `gorm:"type:varchar(20)" json:"track"`
	Tier          string         `gorm:"type:varchar(20)" json:"tier"`
	Approved      bool           `json:"approved"`
	Cutoff        float64        `gorm:"type:float" json:"cutoff"`
	Subscores     datatypes.JSON `json:"subscores"`
	Fragments     datatypes.JSON `json:"fragments"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (r *FeedbackReport) TableName() string {
	return "feedback_reports"
}

func (r *FeedbackReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
