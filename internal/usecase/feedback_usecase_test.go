package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/fadilmartias/cv-feedback/internal/dto"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/fadilmartias/cv-feedback/internal/model"
	"github.com/fadilmartias/cv-feedback/internal/repository"
	"github.com/fadilmartias/cv-feedback/internal/service"
	"github.com/fadilmartias/cv-feedback/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	reports []model.FeedbackReport
	err     error
}

func (m *memoryStore) Create(ctx context.Context, report *model.FeedbackReport) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	report.ID = uuid.New()
	m.reports = append(m.reports, *report)
	return nil
}

func (m *memoryStore) FindByID(ctx context.Context, id string) (*model.FeedbackReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reports {
		if m.reports[i].ID.String() == id {
			r := m.reports[i]
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryStore) List(ctx context.Context, page, pageSize int) ([]model.FeedbackReport, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start := min((page-1)*pageSize, len(m.reports))
	end := min(start+pageSize, len(m.reports))
	return m.reports[start:end], int64(len(m.reports)), nil
}

type stubScorer struct {
	in   *feedback.EvaluationInput
	err  error
	text string
}

func (s *stubScorer) Score(ctx context.Context, resumeText string) (*feedback.EvaluationInput, error) {
	s.text = resumeText
	return s.in, s.err
}

func newTestUsecase(store ReportStore, scorer service.Scorer) *FeedbackUsecase {
	return NewFeedbackUsecase(store, scorer, validator.New(validator.WithRequiredStructEnabled()), zerolog.New(io.Discard))
}

func subs(pairs ...any) feedback.Subscores {
	var out feedback.Subscores
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, feedback.Subscore{Dimension: pairs[i].(feedback.Dimension), Value: pairs[i+1].(float64)})
	}
	return out
}

func TestSynthesize_StoresReport(t *testing.T) {
	store := &memoryStore{}
	uc := newTestUsecase(store, &stubScorer{})

	report, err := uc.Synthesize(context.Background(), dto.EvaluationRequest{
		Score:                55,
		Label:                "Ruim",
		IsExperiencedProfile: true,
		RBSubscores:          subs(feedback.Skills, 0.5, feedback.Impact, 0.95),
	})

	require.NoError(t, err)
	assert.Equal(t, model.SourceEvaluation, report.Source)
	assert.Equal(t, string(feedback.VerdictNeedsRevision), report.Verdict)
	assert.Equal(t, string(feedback.TrackApproved), report.Track)
	assert.Equal(t, string(feedback.TierDevelopment), report.Tier)
	assert.True(t, report.Approved)
	assert.Equal(t, 50.0, report.Cutoff)
	assert.JSONEq(t, `{"skills":0.5,"impact":0.95}`, string(report.Subscores))
	require.Len(t, store.reports, 1)

	frags, err := Fragments(report)
	require.NoError(t, err)
	assert.Equal(t, feedback.Synthesize(feedback.EvaluationInput{
		Score: 55, Label: "Ruim", IsExperiencedProfile: true,
		Subscores: subs(feedback.Skills, 0.5, feedback.Impact, 0.95),
	}).Fragments, frags)
}

func TestSynthesize_RejectsOutOfRangeValues(t *testing.T) {
	store := &memoryStore{}
	uc := newTestUsecase(store, &stubScorer{})

	cases := []struct {
		name  string
		req   dto.EvaluationRequest
		field string
	}{
		{"score above 100", dto.EvaluationRequest{Score: 101, Label: "Bom"}, "Score"},
		{"negative score", dto.EvaluationRequest{Score: -1, Label: "Bom"}, "Score"},
		{"missing label", dto.EvaluationRequest{Score: 70}, "Label"},
		{"subscore above 1", dto.EvaluationRequest{Score: 70, Label: "Bom", Subscores: subs(feedback.Skills, 1.5)}, "Subscores[0].Value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Synthesize(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidEvaluation)

			formErr := util.FormErrorFromValidation(err)
			require.NotNil(t, formErr)
			assert.Contains(t, formErr.Errors, tc.field)
		})
	}
	assert.Empty(t, store.reports)
}

func TestAnalyze_ScoresExtractedText(t *testing.T) {
	store := &memoryStore{}
	scorer := &stubScorer{in: &feedback.EvaluationInput{
		Score: 84, Label: feedback.LabelGood, IsExperiencedProfile: true,
		Subscores: subs(feedback.Skills, 0.95, feedback.Impact, 0.9),
	}}
	uc := newTestUsecase(store, scorer)
	cv := strings.Repeat("Analista de dados com foco em Python, SQL e visualização. ", 3)

	report, err := uc.Analyze(context.Background(), "cv.txt", []byte(cv))

	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(cv), scorer.text)
	assert.Equal(t, model.SourceUpload, report.Source)
	assert.Equal(t, "cv.txt", report.FileName)
	assert.Equal(t, string(feedback.VerdictExcellent), report.Verdict)
	assert.Equal(t, string(feedback.TierExcellence), report.Tier)
}

func TestAnalyze_PassesThroughSentinels(t *testing.T) {
	uc := newTestUsecase(&memoryStore{}, &stubScorer{err: service.ErrScorerRejected})

	_, err := uc.Analyze(context.Background(), "cv.docx", []byte("x"))
	assert.ErrorIs(t, err, util.ErrUnsupportedFileType)

	_, err = uc.Analyze(context.Background(), "cv.txt", []byte(strings.Repeat("a", 150)))
	assert.ErrorIs(t, err, service.ErrScorerRejected)
}

func TestAnalyze_StoreFailure(t *testing.T) {
	store := &memoryStore{err: errors.New("disk full")}
	uc := newTestUsecase(store, &stubScorer{in: &feedback.EvaluationInput{Score: 30, Label: "Fraco"}})

	_, err := uc.Analyze(context.Background(), "cv.txt", []byte(strings.Repeat("a", 150)))
	assert.ErrorContains(t, err, "disk full")
}

func TestGetReport(t *testing.T) {
	store := &memoryStore{}
	uc := newTestUsecase(store, &stubScorer{})
	created, err := uc.Synthesize(context.Background(), dto.EvaluationRequest{Score: 70, Label: "Bom"})
	require.NoError(t, err)

	found, err := uc.GetReport(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = uc.GetReport(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListReports_ClampsPaging(t *testing.T) {
	store := &memoryStore{}
	uc := newTestUsecase(store, &stubScorer{})
	for range 3 {
		_, err := uc.Synthesize(context.Background(), dto.EvaluationRequest{Score: 70, Label: "Bom"})
		require.NoError(t, err)
	}

	reports, total, err := uc.ListReports(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, reports, 3)

	reports, _, err = uc.ListReports(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}
