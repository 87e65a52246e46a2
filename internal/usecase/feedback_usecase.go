package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fadilmartias/cv-feedback/internal/dto"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/fadilmartias/cv-feedback/internal/model"
	"github.com/fadilmartias/cv-feedback/internal/observability"
	"github.com/fadilmartias/cv-feedback/internal/repository"
	"github.com/fadilmartias/cv-feedback/internal/service"
	"github.com/fadilmartias/cv-feedback/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidEvaluation = errors.New("invalid evaluation")
	ErrReportNotFound    = errors.New("report not found")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ReportStore persists synthesized reports.
type ReportStore interface {
	Create(ctx context.Context, report *model.FeedbackReport) error
	FindByID(ctx context.Context, id string) (*model.FeedbackReport, error)
	List(ctx context.Context, page, pageSize int) ([]model.FeedbackReport, int64, error)
}

type FeedbackUsecase struct {
	reports  ReportStore
	scorer   service.Scorer
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewFeedbackUsecase(reports ReportStore, scorer service.Scorer, validate *validator.Validate, logger zerolog.Logger) *FeedbackUsecase {
	return &FeedbackUsecase{
		reports:  reports,
		scorer:   scorer,
		validate: validate,
		logger:   logger.With().Str("component", "feedback_usecase").Logger(),
	}
}

// Synthesize builds and stores the report for an evaluation posted by a client.
func (uc *FeedbackUsecase) Synthesize(ctx context.Context, req dto.EvaluationRequest) (*model.FeedbackReport, error) {
	if err := uc.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvaluation, err)
	}
	return uc.store(ctx, req.Input(), model.SourceEvaluation, "")
}

// Analyze extracts the text of an uploaded CV, scores it and stores the report.
func (uc *FeedbackUsecase) Analyze(ctx context.Context, fileName string, content []byte) (*model.FeedbackReport, error) {
	text, err := util.ExtractText(fileName, content)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", fileName, err)
	}
	uc.logger.Info().Str("file", fileName).Int("chars", len(text)).Msg("text extracted")

	in, err := uc.scorer.Score(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", fileName, err)
	}
	return uc.store(ctx, *in, model.SourceUpload, fileName)
}

func (uc *FeedbackUsecase) GetReport(ctx context.Context, id string) (*model.FeedbackReport, error) {
	report, err := uc.reports.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find report %s: %w", id, err)
	}
	return report, nil
}

// NormalizePaging clamps a requested page and page size to the values ListReports uses.
func NormalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, min(pageSize, MaxPageSize)
}

func (uc *FeedbackUsecase) ListReports(ctx context.Context, page, pageSize int) ([]model.FeedbackReport, int64, error) {
	page, pageSize = NormalizePaging(page, pageSize)
	reports, total, err := uc.reports.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	return reports, total, nil
}

func (uc *FeedbackUsecase) store(ctx context.Context, in feedback.EvaluationInput, source, fileName string) (*model.FeedbackReport, error) {
	report := feedback.Synthesize(in)

	subscores, err := json.Marshal(in.Subscores)
	if err != nil {
		return nil, fmt.Errorf("encode subscores: %w", err)
	}
	fragments, err := json.Marshal(report.Fragments)
	if err != nil {
		return nil, fmt.Errorf("encode fragments: %w", err)
	}

	row := &model.FeedbackReport{
		Source:        source,
		FileName:      fileName,
		Score:         in.Score,
		Label:         in.Label,
		IsExperienced: in.IsExperiencedProfile,
		Verdict:       string(report.Verdict),
		Track:         string(report.Track),
		Tier:          string(report.Tier),
		Approved:      report.Approval.Approved,
		Cutoff:        report.Approval.Cutoff,
		Subscores:     subscores,
		Fragments:     fragments,
	}
	if err := uc.reports.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	observability.ReportsTotal().WithLabelValues(row.Verdict, row.Track, row.Tier).Inc()
	uc.logger.Info().
		Str("report_id", row.ID.String()).
		Str("source", source).
		Float64("score", in.Score).
		Str("verdict", row.Verdict).
		Str("tier", row.Tier).
		Msg("report synthesized")
	return row, nil
}

// Fragments decodes the stored fragments of a report.
func Fragments(report *model.FeedbackReport) ([]feedback.Fragment, error) {
	var frags []feedback.Fragment
	if len(report.Fragments) == 0 {
		return frags, nil
	}
	if err := json.Unmarshal(report.Fragments, &frags); err != nil {
		return nil, fmt.Errorf("decode fragments: %w", err)
	}
	return frags, nil
}
