package qualitymodel

import (
	"context"

	"supplier-portal-backend/entities"

	"gorm.io/gorm"
)

type (
	ModelRepository interface {
		AddModel(ctx context.Context, model *entities.QualityModel) error
		GetModelByID(ctx context.Context, id string) (*entities.QualityModel, error)
		UpdateModel(ctx context.Context, model *entities.QualityModel) error
		DeleteModel(ctx context.Context, id string) error
		GetModels(ctx context.Context) ([]*entities.QualityModel, error)
		SetActiveExclusive(ctx context.Context, id string) error
		CountAssignmentsForModel(ctx context.Context, id string) (int64, error)
	}

	modelRepository struct {
		db *gorm.DB
	}
)

func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepository{db: db}
}

func (r *modelRepository) AddModel(ctx context.Context, model *entities.QualityModel) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *modelRepository) GetModelByID(ctx context.Context, id string) (*entities.QualityModel, error) {
	var model entities.QualityModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *modelRepository) UpdateModel(ctx context.Context, model *entities.QualityModel) error {
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *modelRepository) DeleteModel(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.QualityModel{}).Error
}

func (r *modelRepository) GetModels(ctx context.Context) ([]*entities.QualityModel, error) {
	var models []*entities.QualityModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// SetActiveExclusive marks one model active and clears the flag on every
// other model in the same transaction, so at most one model is ever active.
func (r *modelRepository) SetActiveExclusive(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.QualityModel{}).
			Where("id <> ?", id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&entities.QualityModel{}).
			Where("id = ?", id).
			Update("is_active", true).Error
	})
}

func (r *modelRepository) CountAssignmentsForModel(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ModelAssignment{}).
		Where("model_id = ?", id).
		Count(&count).Error
	return count, err
}
