package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddModel      = "quality model added successfully"
	MessageSuccessUpdateModel   = "quality model updated successfully"
	MessageSuccessDeleteModel   = "quality model deleted successfully"
	MessageSuccessGetModels     = "quality models retrieved successfully"
	MessageSuccessActivateModel = "quality model activated successfully"

	MessageFailedAddModel      = "failed to add quality model"
	MessageFailedUpdateModel   = "failed to update quality model"
	MessageFailedDeleteModel   = "failed to delete quality model"
	MessageFailedGetModels     = "failed to retrieve quality models"
	MessageFailedActivateModel = "failed to activate quality model"

	ErrModelNotFound      = errors.New("quality model not found")
	ErrModelReferenced    = errors.New("quality model is referenced by an assignment")
	ErrInvalidThreshold   = errors.New("threshold must be a finite non-negative number")
	ErrInvalidScale       = errors.New("scale factor must be a finite positive number")
	ErrModelMisconfigured = errors.New("quality model has a non-finite threshold")
)

type (
	AddModelRequest struct {
		Name                  string   `json:"name" validate:"required"`
		PurityMin             float64  `json:"purity_min" validate:"gte=0"`
		FoamingMin            float64  `json:"foaming_min" validate:"gte=0"`
		DetergencyMin         float64  `json:"detergency_min" validate:"gte=0"`
		BiodegradabilityMin   float64  `json:"biodegradability_min" validate:"gte=0"`
		PurityScale           *float64 `json:"purity_scale" validate:"omitempty,gt=0"`
		FoamingScale          *float64 `json:"foaming_scale" validate:"omitempty,gt=0"`
		DetergencyScale       *float64 `json:"detergency_scale" validate:"omitempty,gt=0"`
		BiodegradabilityScale *float64 `json:"biodegradability_scale" validate:"omitempty,gt=0"`
	}

	UpdateModelRequest struct {
		Name                  string   `json:"name" validate:"omitempty"`
		PurityMin             *float64 `json:"purity_min" validate:"omitempty,gte=0"`
		FoamingMin            *float64 `json:"foaming_min" validate:"omitempty,gte=0"`
		DetergencyMin         *float64 `json:"detergency_min" validate:"omitempty,gte=0"`
		BiodegradabilityMin   *float64 `json:"biodegradability_min" validate:"omitempty,gte=0"`
		PurityScale           *float64 `json:"purity_scale" validate:"omitempty,gt=0"`
		FoamingScale          *float64 `json:"foaming_scale" validate:"omitempty,gt=0"`
		DetergencyScale       *float64 `json:"detergency_scale" validate:"omitempty,gt=0"`
		BiodegradabilityScale *float64 `json:"biodegradability_scale" validate:"omitempty,gt=0"`
	}

	ModelResponse struct {
		ID                    string    `json:"id"`
		Name                  string    `json:"name"`
		PurityMin             float64   `json:"purity_min"`
		FoamingMin            float64   `json:"foaming_min"`
		DetergencyMin         float64   `json:"detergency_min"`
		BiodegradabilityMin   float64   `json:"biodegradability_min"`
		PurityScale           float64   `json:"purity_scale"`
		FoamingScale          float64   `json:"foaming_scale"`
		DetergencyScale       float64   `json:"detergency_scale"`
		BiodegradabilityScale float64   `json:"biodegradability_scale"`
		IsActive              bool      `json:"is_active"`
		CreatedAt             time.Time `json:"created_at"`
	}
)
