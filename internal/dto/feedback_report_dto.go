package dto

import (
	"encoding/json"
	"time"

	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/google/uuid"
)

// EvaluationRequest is a scorer result posted for synthesis. The python
// scorer names the field rb_subscores, so both spellings are accepted.
type EvaluationRequest struct {
	Score                float64            `json:"score" validate:"gte=0,lte=100"`
	Label                string             `json:"label" validate:"required,max=50"`
	IsExperiencedProfile bool               `json:"isExperiencedProfile"`
	Subscores            feedback.Subscores `json:"subscores" validate:"omitempty,dive"`
	RBSubscores          feedback.Subscores `json:"rb_subscores" validate:"omitempty,dive"`
	Features             *feedback.Features `json:"features,omitempty"`
}

// Input converts the request into the engine's input.
func (r EvaluationRequest) Input() feedback.EvaluationInput {
	subs := r.Subscores
	if subs == nil {
		subs = r.RBSubscores
	}
	return feedback.EvaluationInput{
		Score:                r.Score,
		Label:                r.Label,
		IsExperiencedProfile: r.IsExperiencedProfile,
		Subscores:            subs,
		Features:             r.Features,
	}
}

type FeedbackReportDTO struct {
	ID            uuid.UUID           `json:"id"`
	Source        string              `json:"source"`
	FileName      string              `json:"file_name,omitempty"`
	Score         float64             `json:"score"`
	Label         string              `json:"label"`
	IsExperienced bool                `json:"is_experienced"`
	Verdict       string              `json:"verdict"`
	Track         string              `json:"track"`
	Tier          string              `json:"tier"`
	Approved      bool                `json:"approved"`
	Cutoff        float64             `json:"cutoff"`
	Subscores     json.RawMessage     `json:"subscores,omitempty"`
	Fragments     []feedback.Fragment `json:"fragments,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// FeedbackReportSummaryDTO is the list view; fragments are left out.
type FeedbackReportSummaryDTO struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"`
	FileName  string    `json:"file_name,omitempty"`
	Score     float64   `json:"score"`
	Verdict   string    `json:"verdict"`
	Tier      string    `json:"tier"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
