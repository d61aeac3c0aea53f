package submission

import (
	"context"

	"supplier-portal-backend/entities"

	"gorm.io/gorm"
)

type (
	SubmissionRepository interface {
		CreateSubmission(ctx context.Context, submission *entities.Submission) error
		GetSubmissionByID(ctx context.Context, id string) (*entities.Submission, error)
		GetSubmissions(ctx context.Context, supplierID, ingredientID string, page, limit int) ([]*entities.Submission, int64, error)
		UpdateSubmission(ctx context.Context, submission *entities.Submission) error
	}

	submissionRepository struct {
		db *gorm.DB
	}
)

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// CreateSubmission writes the submission and all its batch results in one
// transaction; either the whole submission is recorded or nothing is.
func (r *submissionRepository) CreateSubmission(ctx context.Context, submission *entities.Submission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(submission).Error
	})
}

func (r *submissionRepository) GetSubmissionByID(ctx context.Context, id string) (*entities.Submission, error) {
	var submission entities.Submission
	if err := r.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ?", id).
		First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) GetSubmissions(ctx context.Context, supplierID, ingredientID string, page, limit int) ([]*entities.Submission, int64, error) {
	var submissions []*entities.Submission
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Submission{})
	if supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if ingredientID != "" {
		query = query.Where("ingredient_id = ?", ingredientID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}

	return submissions, count, nil
}

func (r *submissionRepository) UpdateSubmission(ctx context.Context, submission *entities.Submission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}
