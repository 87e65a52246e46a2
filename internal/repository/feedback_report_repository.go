package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/cv-feedback/internal/model"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type FeedbackReportRepository struct {
	db *gorm.DB
}

func NewFeedbackReportRepository(db *gorm.DB) *FeedbackReportRepository {
	return &FeedbackReportRepository{db}
}

func (r *FeedbackReportRepository) Create(ctx context.Context, report *model.FeedbackReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *FeedbackReportRepository) FindByID(ctx context.Context, id string) (*model.FeedbackReport, error) {
	var report model.FeedbackReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns one page of reports, newest first, and the total count.
func (r *FeedbackReportRepository) List(ctx context.Context, page, pageSize int) ([]model.FeedbackReport, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.FeedbackReport{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.FeedbackReport
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}
