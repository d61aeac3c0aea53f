package entities

import (
	"github.com/google/uuid"
)

// ModelAssignment maps an ingredient to the single quality model that judges
// it. The unique index on IngredientID enforces "at most one model per
// ingredient"; assigning again replaces the row.
type ModelAssignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"ingredient_id"`
	ModelID      uuid.UUID `gorm:"type:uuid" json:"model_id"`

	Ingredient *Ingredient   `gorm:"foreignKey:IngredientID"`
	Model      *QualityModel `gorm:"foreignKey:ModelID"`
	Timestamp
}

// SupplierAssignment authorizes a supplier to submit batches for an
// ingredient. The (ingredient, supplier) pair is unique; enabling or
// disabling flips the flag on the existing row instead of duplicating it.
type SupplierAssignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ingredient_supplier" json:"ingredient_id"`
	SupplierID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ingredient_supplier" json:"supplier_id"`
	Enabled      bool      `gorm:"default:true" json:"enabled"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Supplier   *User       `gorm:"foreignKey:SupplierID"`
	Timestamp
}
