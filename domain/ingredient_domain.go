package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"

	ErrIngredientNotFound   = errors.New("ingredient not found")
	ErrIngredientReferenced = errors.New("ingredient is referenced by submissions")
	ErrNegativeProperty     = errors.New("measured property must be non-negative")
)

type (
	AddIngredientRequest struct {
		Name             string   `json:"name" validate:"required"`
		Purity           *float64 `json:"purity" validate:"omitempty,gte=0"`
		Foaming          *float64 `json:"foaming" validate:"omitempty,gte=0"`
		Detergency       *float64 `json:"detergency" validate:"omitempty,gte=0"`
		Biodegradability *float64 `json:"biodegradability" validate:"omitempty,gte=0"`
	}

	UpdateIngredientRequest struct {
		Name             string   `json:"name" validate:"omitempty"`
		Purity           *float64 `json:"purity" validate:"omitempty,gte=0"`
		Foaming          *float64 `json:"foaming" validate:"omitempty,gte=0"`
		Detergency       *float64 `json:"detergency" validate:"omitempty,gte=0"`
		Biodegradability *float64 `json:"biodegradability" validate:"omitempty,gte=0"`
	}

	IngredientResponse struct {
		ID               string    `json:"id"`
		Name             string    `json:"name"`
		Purity           *float64  `json:"purity,omitempty"`
		Foaming          *float64  `json:"foaming,omitempty"`
		Detergency       *float64  `json:"detergency,omitempty"`
		Biodegradability *float64  `json:"biodegradability,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
	}

	// AssignedIngredientResponse is the supplier-facing view: an ingredient
	// the caller is enabled for, with the thresholds that judge it (absent
	// when no model is assigned yet).
	AssignedIngredientResponse struct {
		Ingredient IngredientResponse `json:"ingredient"`
		Model      *ModelResponse     `json:"model,omitempty"`
	}
)
