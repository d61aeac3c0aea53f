package domain

import (
	"errors"
)

var (
	MessageSuccessAssignModel         = "model assigned successfully"
	MessageSuccessUnassignModel       = "model assignment removed"
	MessageSuccessGetModelAssignments = "model assignments retrieved successfully"
	MessageSuccessSetSupplier         = "supplier assignment updated"
	MessageSuccessReplaceSuppliers    = "supplier assignments replaced"
	MessageSuccessGetSuppliers        = "supplier assignments retrieved successfully"

	MessageFailedAssignModel         = "failed to assign model"
	MessageFailedUnassignModel       = "failed to remove model assignment"
	MessageFailedGetModelAssignments = "failed to retrieve model assignments"
	MessageFailedSetSupplier         = "failed to update supplier assignment"
	MessageFailedReplaceSuppliers    = "failed to replace supplier assignments"
	MessageFailedGetSuppliers        = "failed to retrieve supplier assignments"

	// ErrModelNotAssigned: the ingredient has no model yet. Distinct from
	// ErrSupplierNotAuthorized, which means the (ingredient, supplier) pair
	// is missing or disabled.
	ErrModelNotAssigned      = errors.New("no model assigned to ingredient")
	ErrSupplierNotAuthorized = errors.New("supplier not authorized for ingredient")
)

type (
	AssignModelRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		ModelID      string `json:"model_id" validate:"required,uuid"`
	}

	ModelAssignmentResponse struct {
		IngredientID string `json:"ingredient_id"`
		ModelID      string `json:"model_id"`
	}

	SetSupplierAssignmentRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		SupplierID   string `json:"supplier_id" validate:"required,uuid"`
		Enabled      *bool  `json:"enabled" validate:"required"`
	}

	ReplaceSupplierAssignmentsRequest struct {
		SupplierIDs []string `json:"supplier_ids" validate:"required,dive,uuid"`
	}

	SupplierAssignmentResponse struct {
		IngredientID string `json:"ingredient_id"`
		SupplierID   string `json:"supplier_id"`
		Enabled      bool   `json:"enabled"`
	}
)
