package assignment

import (
	"context"
	"errors"
	"sync"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"
	"supplier-portal-backend/pkg/ingredient"
	"supplier-portal-backend/pkg/qualitymodel"
	"supplier-portal-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// AssignmentService maintains the ingredient->model and
	// ingredient->supplier relations and answers "which thresholds apply to
	// this supplier". Writes are serialized so concurrent admin edits cannot
	// break the one-model-per-ingredient and unique-pair invariants; reads
	// run unsynchronized and may observe a pre-update snapshot.
	AssignmentService interface {
		AssignModel(ctx context.Context, req domain.AssignModelRequest) error
		UnassignModel(ctx context.Context, ingredientID string) error
		ListModelAssignments(ctx context.Context) ([]domain.ModelAssignmentResponse, error)

		SetSupplierEnabled(ctx context.Context, req domain.SetSupplierAssignmentRequest) error
		ReplaceSupplierAssignments(ctx context.Context, ingredientID string, supplierIDs []string) error
		ListSupplierAssignments(ctx context.Context, ingredientID string) ([]domain.SupplierAssignmentResponse, error)

		ResolveForSupplier(ctx context.Context, supplierID, ingredientID string) (*entities.QualityModel, error)
		ListAssignedIngredients(ctx context.Context, supplierID string) ([]domain.AssignedIngredientResponse, error)
	}

	assignmentService struct {
		assignmentRepository AssignmentRepository
		ingredientRepository ingredient.IngredientRepository
		modelRepository      qualitymodel.ModelRepository
		userRepository       user.UserRepository

		mu sync.Mutex
	}
)

func NewAssignmentService(
	assignmentRepository AssignmentRepository,
	ingredientRepository ingredient.IngredientRepository,
	modelRepository qualitymodel.ModelRepository,
	userRepository user.UserRepository,
) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		ingredientRepository: ingredientRepository,
		modelRepository:      modelRepository,
		userRepository:       userRepository,
	}
}

func (s *assignmentService) checkIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}

func (s *assignmentService) checkSupplier(ctx context.Context, id string) error {
	supplier, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSupplierNotFound
		}
		return err
	}
	if supplier.Role != domain.RoleSupplier {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (s *assignmentService) AssignModel(ctx context.Context, req domain.AssignModelRequest) error {
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ErrParseUUID
	}
	modelID, err := uuid.Parse(req.ModelID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.checkIngredient(ctx, req.IngredientID); err != nil {
		return err
	}
	if _, err := s.modelRepository.GetModelByID(ctx, req.ModelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrModelNotFound
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Upsert keyed on ingredient: a second assignment replaces the first,
	// and re-assigning the same model is a no-op in effect.
	return s.assignmentRepository.UpsertModelAssignment(ctx, ingredientID, modelID)
}

func (s *assignmentService) UnassignModel(ctx context.Context, ingredientID string) error {
	if err := s.checkIngredient(ctx, ingredientID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Deleting an absent assignment is a no-op, not an error.
	return s.assignmentRepository.DeleteModelAssignment(ctx, ingredientID)
}

func (s *assignmentService) ListModelAssignments(ctx context.Context) ([]domain.ModelAssignmentResponse, error) {
	assignments, err := s.assignmentRepository.ListModelAssignments(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.ModelAssignmentResponse
	for _, a := range assignments {
		response = append(response, domain.ModelAssignmentResponse{
			IngredientID: a.IngredientID.String(),
			ModelID:      a.ModelID.String(),
		})
	}
	return response, nil
}

func (s *assignmentService) SetSupplierEnabled(ctx context.Context, req domain.SetSupplierAssignmentRequest) error {
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ErrParseUUID
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.checkIngredient(ctx, req.IngredientID); err != nil {
		return err
	}
	if err := s.checkSupplier(ctx, req.SupplierID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.assignmentRepository.UpsertSupplierAssignment(ctx, ingredientID, supplierID, *req.Enabled)
}

// ReplaceSupplierAssignments makes the given suppliers the only enabled ones
// for the ingredient. It is a convenience built on the per-pair upsert:
// existing pairs missing from the list are disabled, never deleted, so the
// assignment history survives.
func (s *assignmentService) ReplaceSupplierAssignments(ctx context.Context, ingredientID string, supplierIDs []string) error {
	ingredientUUID, err := uuid.Parse(ingredientID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if err := s.checkIngredient(ctx, ingredientID); err != nil {
		return err
	}

	wanted := make(map[string]uuid.UUID, len(supplierIDs))
	for _, id := range supplierIDs {
		supplierUUID, err := uuid.Parse(id)
		if err != nil {
			return domain.ErrParseUUID
		}
		if err := s.checkSupplier(ctx, id); err != nil {
			return err
		}
		wanted[id] = supplierUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.assignmentRepository.ListSupplierAssignments(ctx, ingredientID)
	if err != nil {
		return err
	}

	for _, a := range existing {
		if _, keep := wanted[a.SupplierID.String()]; !keep && a.Enabled {
			if err := s.assignmentRepository.UpsertSupplierAssignment(ctx, ingredientUUID, a.SupplierID, false); err != nil {
				return err
			}
		}
	}

	for _, supplierUUID := range wanted {
		if err := s.assignmentRepository.UpsertSupplierAssignment(ctx, ingredientUUID, supplierUUID, true); err != nil {
			return err
		}
	}

	return nil
}

func (s *assignmentService) ListSupplierAssignments(ctx context.Context, ingredientID string) ([]domain.SupplierAssignmentResponse, error) {
	if ingredientID != "" {
		if err := s.checkIngredient(ctx, ingredientID); err != nil {
			return nil, err
		}
	}

	assignments, err := s.assignmentRepository.ListSupplierAssignments(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	var response []domain.SupplierAssignmentResponse
	for _, a := range assignments {
		response = append(response, domain.SupplierAssignmentResponse{
			IngredientID: a.IngredientID.String(),
			SupplierID:   a.SupplierID.String(),
			Enabled:      a.Enabled,
		})
	}
	return response, nil
}

// ResolveForSupplier returns the model judging an ingredient, but only when
// the supplier is enabled for it. A disabled or missing pair is an
// authorization failure; an enabled pair on an unmapped ingredient is
// ErrModelNotAssigned, which callers must keep distinct.
func (s *assignmentService) ResolveForSupplier(ctx context.Context, supplierID, ingredientID string) (*entities.QualityModel, error) {
	if err := s.checkIngredient(ctx, ingredientID); err != nil {
		return nil, err
	}

	pair, err := s.assignmentRepository.GetSupplierAssignment(ctx, ingredientID, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotAuthorized
		}
		return nil, err
	}
	if !pair.Enabled {
		return nil, domain.ErrSupplierNotAuthorized
	}

	assignment, err := s.assignmentRepository.GetModelAssignment(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModelNotAssigned
		}
		return nil, err
	}

	model, err := s.modelRepository.GetModelByID(ctx, assignment.ModelID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModelNotFound
		}
		return nil, err
	}

	return model, nil
}

func (s *assignmentService) ListAssignedIngredients(ctx context.Context, supplierID string) ([]domain.AssignedIngredientResponse, error) {
	pairs, err := s.assignmentRepository.ListEnabledForSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	var response []domain.AssignedIngredientResponse
	for _, pair := range pairs {
		ing, err := s.ingredientRepository.GetIngredientByID(ctx, pair.IngredientID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		entry := domain.AssignedIngredientResponse{
			Ingredient: domain.IngredientResponse{
				ID:               ing.ID.String(),
				Name:             ing.Name,
				Purity:           ing.Purity,
				Foaming:          ing.Foaming,
				Detergency:       ing.Detergency,
				Biodegradability: ing.Biodegradability,
				CreatedAt:        ing.CreatedAt,
			},
		}

		if assignment, err := s.assignmentRepository.GetModelAssignment(ctx, pair.IngredientID.String()); err == nil {
			if model, err := s.modelRepository.GetModelByID(ctx, assignment.ModelID.String()); err == nil {
				entry.Model = &domain.ModelResponse{
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
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		response = append(response, entry)
	}

	return response, nil
}
