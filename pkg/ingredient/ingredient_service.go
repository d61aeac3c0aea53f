package ingredient

import (
	"context"
	"errors"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error
		DeleteIngredient(ctx context.Context, id string) error
		GetIngredients(ctx context.Context, page, limit int) ([]domain.IngredientResponse, int64, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:               ingredient.ID.String(),
		Name:             ingredient.Name,
		Purity:           ingredient.Purity,
		Foaming:          ingredient.Foaming,
		Detergency:       ingredient.Detergency,
		Biodegradability: ingredient.Biodegradability,
		CreatedAt:        ingredient.CreatedAt,
	}
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		Name:             req.Name,
		Purity:           req.Purity,
		Foaming:          req.Foaming,
		Detergency:       req.Detergency,
		Biodegradability: req.Biodegradability,
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.Purity != nil {
		ingredient.Purity = req.Purity
	}
	if req.Foaming != nil {
		ingredient.Foaming = req.Foaming
	}
	if req.Detergency != nil {
		ingredient.Detergency = req.Detergency
	}
	if req.Biodegradability != nil {
		ingredient.Biodegradability = req.Biodegradability
	}

	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	// Past verdicts must keep pointing at the ingredient they were judged
	// against, so a referenced ingredient cannot be removed.
	count, err := s.ingredientRepository.CountSubmissionsForIngredient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrIngredientReferenced
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) GetIngredients(ctx context.Context, page, limit int) ([]domain.IngredientResponse, int64, error) {
	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.IngredientResponse
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}

	return response, count, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}
