package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fadilmartias/cv-feedback/internal/config"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// HTTPScorer posts the CV text to the scoring service.
type HTTPScorer struct {
	client *resty.Client
	url    string
	logger zerolog.Logger
}

func NewHTTPScorer(cfg *config.ScorerConfig, logger zerolog.Logger) *HTTPScorer {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		SetHeader("Content-Type", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPScorer{
		client: client,
		url:    cfg.URL,
		logger: logger.With().Str("component", "http_scorer").Logger(),
	}
}

func (s *HTTPScorer) Score(ctx context.Context, resumeText string) (*feedback.EvaluationInput, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"resume_text": resumeText}).
		Post(s.url)
	if err != nil {
		return nil, fmt.Errorf("call scorer: %w", err)
	}

	s.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Int("attempts", resp.Request.Attempt).
		Msg("scorer responded")

	in, err := parseScorerResult(resp.String())
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrScorerInvalidResponse, resp.StatusCode())
	}
	return in, nil
}
