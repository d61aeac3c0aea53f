package assignment

import (
	"context"

	"supplier-portal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AssignmentRepository interface {
		UpsertModelAssignment(ctx context.Context, ingredientID, modelID uuid.UUID) error
		DeleteModelAssignment(ctx context.Context, ingredientID string) error
		GetModelAssignment(ctx context.Context, ingredientID string) (*entities.ModelAssignment, error)
		ListModelAssignments(ctx context.Context) ([]*entities.ModelAssignment, error)

		UpsertSupplierAssignment(ctx context.Context, ingredientID, supplierID uuid.UUID, enabled bool) error
		GetSupplierAssignment(ctx context.Context, ingredientID, supplierID string) (*entities.SupplierAssignment, error)
		ListSupplierAssignments(ctx context.Context, ingredientID string) ([]*entities.SupplierAssignment, error)
		ListEnabledForSupplier(ctx context.Context, supplierID string) ([]*entities.SupplierAssignment, error)
	}

	assignmentRepository struct {
		db *gorm.DB
	}
)

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) UpsertModelAssignment(ctx context.Context, ingredientID, modelID uuid.UUID) error {
	assignment := &entities.ModelAssignment{
		IngredientID: ingredientID,
		ModelID:      modelID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"model_id", "updated_at"}),
	}).Create(assignment).Error
}

func (r *assignmentRepository) DeleteModelAssignment(ctx context.Context, ingredientID string) error {
	return r.db.WithContext(ctx).
		Where("ingredient_id = ?", ingredientID).
		Delete(&entities.ModelAssignment{}).Error
}

func (r *assignmentRepository) GetModelAssignment(ctx context.Context, ingredientID string) (*entities.ModelAssignment, error) {
	var assignment entities.ModelAssignment
	if err := r.db.WithContext(ctx).
		Where("ingredient_id = ?", ingredientID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) ListModelAssignments(ctx context.Context) ([]*entities.ModelAssignment, error) {
	var assignments []*entities.ModelAssignment
	if err := r.db.WithContext(ctx).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) UpsertSupplierAssignment(ctx context.Context, ingredientID, supplierID uuid.UUID, enabled bool) error {
	assignment := &entities.SupplierAssignment{
		IngredientID: ingredientID,
		SupplierID:   supplierID,
		Enabled:      enabled,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_id"}, {Name: "supplier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
	}).Create(assignment).Error
}

func (r *assignmentRepository) GetSupplierAssignment(ctx context.Context, ingredientID, supplierID string) (*entities.SupplierAssignment, error) {
	var assignment entities.SupplierAssignment
	if err := r.db.WithContext(ctx).
		Where("ingredient_id = ? AND supplier_id = ?", ingredientID, supplierID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) ListSupplierAssignments(ctx context.Context, ingredientID string) ([]*entities.SupplierAssignment, error) {
	var assignments []*entities.SupplierAssignment
	query := r.db.WithContext(ctx)
	if ingredientID != "" {
		query = query.Where("ingredient_id = ?", ingredientID)
	}
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) ListEnabledForSupplier(ctx context.Context, supplierID string) ([]*entities.SupplierAssignment, error) {
	var assignments []*entities.SupplierAssignment
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND enabled = ?", supplierID, true).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
