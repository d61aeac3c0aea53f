package qualitymodel

import (
	"context"
	"errors"
	"fmt"
	"math"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"

	"gorm.io/gorm"
)

type (
	ModelService interface {
		AddModel(ctx context.Context, req domain.AddModelRequest) (domain.ModelResponse, error)
		UpdateModel(ctx context.Context, id string, req domain.UpdateModelRequest) error
		DeleteModel(ctx context.Context, id string) error
		GetModels(ctx context.Context) ([]domain.ModelResponse, error)
		GetModelByID(ctx context.Context, id string) (domain.ModelResponse, error)
		ActivateModel(ctx context.Context, id string) error
	}

	modelService struct {
		modelRepository ModelRepository
	}
)

func NewModelService(modelRepository ModelRepository) ModelService {
	return &modelService{modelRepository: modelRepository}
}

func checkThreshold(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidThreshold, field)
	}
	return nil
}

func checkScale(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidScale, field)
	}
	return nil
}

func validateModel(model *entities.QualityModel) error {
	thresholds := map[string]float64{
		"purity_min":           model.PurityMin,
		"foaming_min":          model.FoamingMin,
		"detergency_min":       model.DetergencyMin,
		"biodegradability_min": model.BiodegradabilityMin,
	}
	for _, field := range []string{"purity_min", "foaming_min", "detergency_min", "biodegradability_min"} {
		if err := checkThreshold(field, thresholds[field]); err != nil {
			return err
		}
	}

	scales := map[string]float64{
		"purity_scale":           model.PurityScale,
		"foaming_scale":          model.FoamingScale,
		"detergency_scale":       model.DetergencyScale,
		"biodegradability_scale": model.BiodegradabilityScale,
	}
	for _, field := range []string{"purity_scale", "foaming_scale", "detergency_scale", "biodegradability_scale"} {
		if err := checkScale(field, scales[field]); err != nil {
			return err
		}
	}

	return nil
}

func scaleOrDefault(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

func toModelResponse(model *entities.QualityModel) domain.ModelResponse {
	return domain.ModelResponse{
		ID:                    model.ID.String(),
		Name:                  model.Name,
		PurityMin:             model.PurityMin,
		FoamingMin:            model.FoamingMin,
		DetergencyMin:         model.DetergencyMin,
		BiodegradabilityMin:   model.BiodegradabilityMin,
		PurityScale:           model.PurityScale,
		FoamingScale:          model.FoamingScale,
		DetergencyScale:       model.DetergencyScale,
		BiodegradabilityScale: model.BiodegradabilityScale,
		IsActive:              model.IsActive,
		CreatedAt:             model.CreatedAt,
	}
}

func (s *modelService) AddModel(ctx context.Context, req domain.AddModelRequest) (domain.ModelResponse, error) {
	model := &entities.QualityModel{
		Name:                  req.Name,
		PurityMin:             req.PurityMin,
		FoamingMin:            req.FoamingMin,
		DetergencyMin:         req.DetergencyMin,
		BiodegradabilityMin:   req.BiodegradabilityMin,
		PurityScale:           scaleOrDefault(req.PurityScale),
		FoamingScale:          scaleOrDefault(req.FoamingScale),
		DetergencyScale:       scaleOrDefault(req.DetergencyScale),
		BiodegradabilityScale: scaleOrDefault(req.BiodegradabilityScale),
	}

	if err := validateModel(model); err != nil {
		return domain.ModelResponse{}, err
	}

	if err := s.modelRepository.AddModel(ctx, model); err != nil {
		return domain.ModelResponse{}, err
	}

	return toModelResponse(model), nil
}

func (s *modelService) UpdateModel(ctx context.Context, id string, req domain.UpdateModelRequest) error {
	model, err := s.modelRepository.GetModelByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrModelNotFound
		}
		return err
	}

	if req.Name != "" {
		model.Name = req.Name
	}
	if req.PurityMin != nil {
		model.PurityMin = *req.PurityMin
	}
	if req.FoamingMin != nil {
		model.FoamingMin = *req.FoamingMin
	}
	if req.DetergencyMin != nil {
		model.DetergencyMin = *req.DetergencyMin
	}
	if req.BiodegradabilityMin != nil {
		model.BiodegradabilityMin = *req.BiodegradabilityMin
	}
	if req.PurityScale != nil {
		model.PurityScale = *req.PurityScale
	}
	if req.FoamingScale != nil {
		model.FoamingScale = *req.FoamingScale
	}
	if req.DetergencyScale != nil {
		model.DetergencyScale = *req.DetergencyScale
	}
	if req.BiodegradabilityScale != nil {
		model.BiodegradabilityScale = *req.BiodegradabilityScale
	}

	if err := validateModel(model); err != nil {
		return err
	}

	return s.modelRepository.UpdateModel(ctx, model)
}

func (s *modelService) DeleteModel(ctx context.Context, id string) error {
	if _, err := s.modelRepository.GetModelByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrModelNotFound
		}
		return err
	}

	// A model still wired to an ingredient cannot disappear out from under
	// the assignment; the admin has to unassign first.
	count, err := s.modelRepository.CountAssignmentsForModel(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrModelReferenced
	}

	return s.modelRepository.DeleteModel(ctx, id)
}

func (s *modelService) GetModels(ctx context.Context) ([]domain.ModelResponse, error) {
	models, err := s.modelRepository.GetModels(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.ModelResponse
	for _, model := range models {
		response = append(response, toModelResponse(model))
	}
	return response, nil
}

func (s *modelService) GetModelByID(ctx context.Context, id string) (domain.ModelResponse, error) {
	model, err := s.modelRepository.GetModelByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ModelResponse{}, domain.ErrModelNotFound
		}
		return domain.ModelResponse{}, err
	}
	return toModelResponse(model), nil
}

func (s *modelService) ActivateModel(ctx context.Context, id string) error {
	if _, err := s.modelRepository.GetModelByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrModelNotFound
		}
		return err
	}

	return s.modelRepository.SetActiveExclusive(ctx, id)
}
