package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/tidwall/gjson"
)

var (
	// ErrScorerInvalidResponse means the scorer answered with something other than the expected JSON.
	ErrScorerInvalidResponse = errors.New("scorer returned an invalid response")
	// ErrScorerRejected means the scorer reported a failure for the document.
	ErrScorerRejected = errors.New("scorer rejected the document")
)

// RejectedError carries the scorer's own explanation for a rejected document.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return ErrScorerRejected.Error() + ": " + e.Message
}

func (e *RejectedError) Unwrap() error {
	return ErrScorerRejected
}

// Scorer evaluates extracted CV text and returns the engine input.
type Scorer interface {
	Score(ctx context.Context, resumeText string) (*feedback.EvaluationInput, error)
}

// parseScorerResult picks the evaluation out of a scorer answer shaped as
// {"success": bool, "features": {...}, "result": {"score", "label", "rb_subscores"}}.
func parseScorerResult(body string) (*feedback.EvaluationInput, error) {
	if !gjson.Valid(body) {
		return nil, ErrScorerInvalidResponse
	}
	doc := gjson.Parse(body)
	if !doc.IsObject() {
		return nil, ErrScorerInvalidResponse
	}
	if success := doc.Get("success"); success.Exists() && !success.Bool() {
		msg := doc.Get("error").String()
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &RejectedError{Message: msg}
	}

	result := doc.Get("result")
	score := result.Get("score")
	if score.Type != gjson.Number {
		return nil, fmt.Errorf("%w: missing result.score", ErrScorerInvalidResponse)
	}

	in := &feedback.EvaluationInput{
		Score: score.Float(),
		Label: result.Get("label").String(),
	}
	if raw := result.Get("rb_subscores"); raw.Exists() && raw.Type != gjson.Null {
		subs, err := feedback.ParseSubscores(raw.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScorerInvalidResponse, err)
		}
		in.Subscores = subs
	}

	if features := doc.Get("features"); features.IsObject() {
		in.IsExperiencedProfile = features.Get("has_experience").Bool()
		feat := &feedback.Features{
			YearsTotal:  features.Get("years_total").Float(),
			ProjectHits: int(features.Get("project_hits").Int()),
			CertPoints:  features.Get("cert_points").Float(),
			MetricsHits: int(features.Get("metrics_hits").Int()),
		}
		features.Get("skills").ForEach(func(_, skill gjson.Result) bool {
			feat.Skills = append(feat.Skills, skill.String())
			return true
		})
		in.Features = feat
	}
	return in, nil
}
