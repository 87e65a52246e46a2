package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/cv-feedback/internal/config"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

var ErrCircuitOpen = errors.New("circuit breaker open")

// scorerLabels are the labels the scoring service emits; only feedback.LabelGood passes.
const scorerLabels = feedback.LabelGood + "|Regular|Ruim"

const scoringPrompt = `Você é um avaliador de currículos. Avalie o currículo abaixo e responda
SOMENTE com JSON neste formato:
{
  "success": true,
  "features": {
    "has_experience": <true se há experiência profissional>,
    "skills": [<habilidades técnicas encontradas>],
    "years_total": <anos de experiência, número>,
    "project_hits": <quantidade de projetos mencionados>,
    "cert_points": <0.2 por certificação>,
    "metrics_hits": <quantidade de resultados quantificados>
  },
  "result": {
    "score": <0-100>,
    "label": "<` + scorerLabels + `>",
    "rb_subscores": {
      "skills": <0-1>, "experience": <0-1>, "doc_quality": <0-1>, "contact": <0-1>,
      "certs": <0-1>, "projects": <0-1>, "impact": <0-1>
    }
  }
}

Use o label "` + feedback.LabelGood + `" somente para currículos aprovados; "Regular" e "Ruim"
indicam que o currículo precisa de revisão.

Currículo:
%s`

// contentGenerator is the subset of genai.Models the scorer calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiScorer asks a Gemini model for the scorer JSON.
type GeminiScorer struct {
	models            contentGenerator
	model             string
	logger            zerolog.Logger
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	circuitBreakerMax int

	mu                sync.Mutex
	consecutiveErrors int
}

func NewGeminiScorer(ctx context.Context, cfg *config.GeminiConfig, logger zerolog.Logger) (*GeminiScorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiScorer(client.Models, cfg.Model, logger), nil
}

func newGeminiScorer(models contentGenerator, model string, logger zerolog.Logger) *GeminiScorer {
	return &GeminiScorer{
		models:            models,
		model:             model,
		logger:            logger.With().Str("component", "gemini_scorer").Logger(),
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		circuitBreakerMax: 5,
	}
}

func (s *GeminiScorer) Score(ctx context.Context, resumeText string) (*feedback.EvaluationInput, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text cannot be empty")
	}
	if errs, open := s.CircuitBreakerStatus(); open {
		return nil, fmt.Errorf("%w: too many consecutive errors (%d)", ErrCircuitOpen, errs)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
	}
	prompt := fmt.Sprintf(scoringPrompt, resumeText)

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.logger.Warn().Int("attempt", attempt).Int("max_retries", s.MaxRetries).Dur("delay", delay).Msg("retrying gemini scoring")

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.models.GenerateContent(timeoutCtx, s.model, genai.Text(prompt), genConfig)
		if err == nil {
			s.recordSuccess()
			if err := validateGenerateResponse(result); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrScorerInvalidResponse, err)
			}
			return parseScorerResult(stripCodeFence(result.Text()))
		}

		lastErr = err
		if !isRetryableError(err) {
			s.logger.Error().Err(err).Msg("non-retryable gemini error")
			s.recordFailure()
			return nil, fmt.Errorf("generate content failed: %w", err)
		}
		s.logger.Warn().Err(err).Int("attempt", attempt+1).Msg("retryable gemini error")
	}

	s.recordFailure()
	return nil, fmt.Errorf("max retries (%d) exceeded for gemini scoring: %w", s.MaxRetries, lastErr)
}

func (s *GeminiScorer) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	jitter := time.Duration(float64(delay) * 0.25)
	if jitter > 0 {
		delay = delay - jitter/2 + time.Duration(rand.Int64N(int64(jitter)))
	}
	return delay
}

func (s *GeminiScorer) recordSuccess() {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.mu.Unlock()
}

func (s *GeminiScorer) recordFailure() {
	s.mu.Lock()
	s.consecutiveErrors++
	s.mu.Unlock()
}

func (s *GeminiScorer) ResetCircuitBreaker() {
	s.recordSuccess()
	s.logger.Info().Msg("circuit breaker reset")
}

func (s *GeminiScorer) CircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if code, ok := apiErrorCode(err); ok {
		switch code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

// stripCodeFence removes a ```json fence some models wrap around JSON answers.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
