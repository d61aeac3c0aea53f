package assignment

import (
	"context"
	"errors"
	"testing"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeAssignmentRepository struct {
	modelAssignments    map[string]*entities.ModelAssignment    // by ingredient id
	supplierAssignments map[string]*entities.SupplierAssignment // by ingredient id + "/" + supplier id
}

func newFakeAssignmentRepository() *fakeAssignmentRepository {
	return &fakeAssignmentRepository{
		modelAssignments:    map[string]*entities.ModelAssignment{},
		supplierAssignments: map[string]*entities.SupplierAssignment{},
	}
}

func pairKey(ingredientID, supplierID string) string {
	return ingredientID + "/" + supplierID
}

func (r *fakeAssignmentRepository) UpsertModelAssignment(_ context.Context, ingredientID, modelID uuid.UUID) error {
	if existing, ok := r.modelAssignments[ingredientID.String()]; ok {
		existing.ModelID = modelID
		return nil
	}
	r.modelAssignments[ingredientID.String()] = &entities.ModelAssignment{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		ModelID:      modelID,
	}
	return nil
}

func (r *fakeAssignmentRepository) DeleteModelAssignment(_ context.Context, ingredientID string) error {
	delete(r.modelAssignments, ingredientID)
	return nil
}

func (r *fakeAssignmentRepository) GetModelAssignment(_ context.Context, ingredientID string) (*entities.ModelAssignment, error) {
	a, ok := r.modelAssignments[ingredientID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAssignmentRepository) ListModelAssignments(_ context.Context) ([]*entities.ModelAssignment, error) {
	var out []*entities.ModelAssignment
	for _, a := range r.modelAssignments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAssignmentRepository) UpsertSupplierAssignment(_ context.Context, ingredientID, supplierID uuid.UUID, enabled bool) error {
	key := pairKey(ingredientID.String(), supplierID.String())
	if existing, ok := r.supplierAssignments[key]; ok {
		existing.Enabled = enabled
		return nil
	}
	r.supplierAssignments[key] = &entities.SupplierAssignment{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		SupplierID:   supplierID,
		Enabled:      enabled,
	}
	return nil
}

func (r *fakeAssignmentRepository) GetSupplierAssignment(_ context.Context, ingredientID, supplierID string) (*entities.SupplierAssignment, error) {
	a, ok := r.supplierAssignments[pairKey(ingredientID, supplierID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAssignmentRepository) ListSupplierAssignments(_ context.Context, ingredientID string) ([]*entities.SupplierAssignment, error) {
	var out []*entities.SupplierAssignment
	for _, a := range r.supplierAssignments {
		if ingredientID == "" || a.IngredientID.String() == ingredientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepository) ListEnabledForSupplier(_ context.Context, supplierID string) ([]*entities.SupplierAssignment, error) {
	var out []*entities.SupplierAssignment
	for _, a := range r.supplierAssignments {
		if a.SupplierID.String() == supplierID && a.Enabled {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeIngredientRepository struct {
	ingredients map[string]*entities.Ingredient
}

func (r *fakeIngredientRepository) AddIngredient(_ context.Context, i *entities.Ingredient) error {
	r.ingredients[i.ID.String()] = i
	return nil
}

func (r *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	i, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *fakeIngredientRepository) UpdateIngredient(_ context.Context, i *entities.Ingredient) error {
	r.ingredients[i.ID.String()] = i
	return nil
}

func (r *fakeIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	delete(r.ingredients, id)
	return nil
}

func (r *fakeIngredientRepository) GetIngredients(_ context.Context, _, _ int) ([]*entities.Ingredient, int64, error) {
	var out []*entities.Ingredient
	for _, i := range r.ingredients {
		out = append(out, i)
	}
	return out, int64(len(out)), nil
}

func (r *fakeIngredientRepository) CountSubmissionsForIngredient(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeModelRepository struct {
	models map[string]*entities.QualityModel
}

func (r *fakeModelRepository) AddModel(_ context.Context, m *entities.QualityModel) error {
	r.models[m.ID.String()] = m
	return nil
}

func (r *fakeModelRepository) GetModelByID(_ context.Context, id string) (*entities.QualityModel, error) {
	m, ok := r.models[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeModelRepository) UpdateModel(_ context.Context, m *entities.QualityModel) error {
	r.models[m.ID.String()] = m
	return nil
}

func (r *fakeModelRepository) DeleteModel(_ context.Context, id string) error {
	delete(r.models, id)
	return nil
}

func (r *fakeModelRepository) GetModels(_ context.Context) ([]*entities.QualityModel, error) {
	var out []*entities.QualityModel
	for _, m := range r.models {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeModelRepository) SetActiveExclusive(_ context.Context, id string) error {
	for mid, m := range r.models {
		m.IsActive = mid == id
	}
	return nil
}

func (r *fakeModelRepository) CountAssignmentsForModel(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) AddUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type graphFixture struct {
	service    AssignmentService
	repo       *fakeAssignmentRepository
	ingredient *entities.Ingredient
	model      *entities.QualityModel
	model2     *entities.QualityModel
	supplier   *entities.User
}

func newGraphFixture() *graphFixture {
	repo := newFakeAssignmentRepository()
	ingredients := &fakeIngredientRepository{ingredients: map[string]*entities.Ingredient{}}
	models := &fakeModelRepository{models: map[string]*entities.QualityModel{}}
	users := &fakeUserRepository{users: map[string]*entities.User{}}

	ing := &entities.Ingredient{ID: uuid.New(), Name: "LAS"}
	ingredients.ingredients[ing.ID.String()] = ing

	m1 := &entities.QualityModel{ID: uuid.New(), Name: "strict", PurityMin: 60}
	m2 := &entities.QualityModel{ID: uuid.New(), Name: "lenient", PurityMin: 40}
	models.models[m1.ID.String()] = m1
	models.models[m2.ID.String()] = m2

	supplier := &entities.User{ID: uuid.New(), Name: "Acme Chem", Role: domain.RoleSupplier}
	users.users[supplier.ID.String()] = supplier

	return &graphFixture{
		service:    NewAssignmentService(repo, ingredients, models, users),
		repo:       repo,
		ingredient: ing,
		model:      m1,
		model2:     m2,
		supplier:   supplier,
	}
}

func TestAssignModel_Idempotent(t *testing.T) {
	fx := newGraphFixture()
	req := domain.AssignModelRequest{
		IngredientID: fx.ingredient.ID.String(),
		ModelID:      fx.model.ID.String(),
	}

	if err := fx.service.AssignModel(context.Background(), req); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if err := fx.service.AssignModel(context.Background(), req); err != nil {
		t.Fatalf("second assign: %v", err)
	}

	if len(fx.repo.modelAssignments) != 1 {
		t.Fatalf("want exactly one assignment, got %d", len(fx.repo.modelAssignments))
	}
	got := fx.repo.modelAssignments[fx.ingredient.ID.String()]
	if got.ModelID != fx.model.ID {
		t.Errorf("assigned model: got %s, want %s", got.ModelID, fx.model.ID)
	}
}

func TestAssignModel_ReplacesPriorAssignment(t *testing.T) {
	fx := newGraphFixture()
	ctx := context.Background()

	if err := fx.service.AssignModel(ctx, domain.AssignModelRequest{
		IngredientID: fx.ingredient.ID.String(),
		ModelID:      fx.model.ID.String(),
	}); err != nil {
		t.Fatalf("assign m1: %v", err)
	}
	if err := fx.service.AssignModel(ctx, domain.AssignModelRequest{
		IngredientID: fx.ingredient.ID.String(),
		ModelID:      fx.model2.ID.String(),
	}); err != nil {
		t.Fatalf("assign m2: %v", err)
	}

	if len(fx.repo.modelAssignments) != 1 {
		t.Fatalf("want exactly one assignment, got %d", len(fx.repo.modelAssignments))
	}
	got := fx.repo.modelAssignments[fx.ingredient.ID.String()]
	if got.ModelID != fx.model2.ID {
		t.Errorf("assigned model: got %s, want %s", got.ModelID, fx.model2.ID)
	}
}

func TestAssignModel_UnknownIds(t *testing.T) {
	fx := newGraphFixture()
	ctx := context.Background()

	err := fx.service.AssignModel(ctx, domain.AssignModelRequest{
		IngredientID: uuid.NewString(),
		ModelID:      fx.model.ID.String(),
	})
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Errorf("unknown ingredient: got %v, want ErrIngredientNotFound", err)
	}

	err = fx.service.AssignModel(ctx, domain.AssignModelRequest{
		IngredientID: fx.ingredient.ID.String(),
		ModelID:      uuid.NewString(),
	})
	if !errors.Is(err, domain.ErrModelNotFound) {
		t.Errorf("unknown model: got %v, want ErrModelNotFound", err)
	}
}

func TestUnassignModel_AbsentIsNoop(t *testing.T) {
	fx := newGraphFixture()
	if err := fx.service.UnassignModel(context.Background(), fx.ingredient.ID.String()); err != nil {
		t.Errorf("unassign on unassigned ingredient must not fail: %v", err)
	}
}

func TestResolveForSupplier_DisabledPairIsNotAuthorized(t *testing.T) {
	fx := newGraphFixture()
	ctx := context.Background()
	enabled := false

	if err := fx.service.AssignModel(ctx, domain.AssignModelRequest{
		IngredientID: fx.ingredient.ID.String(),
		ModelID:      fx.model.ID.String(),
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := fx.service.SetSupplierEnabled(ctx, domain.SetSupplierAssignmentRequest{
		IngredientID: fx.ingredient.ID.String(),
		SupplierID:   fx.supplier.ID.String(),
		Enabled:      &enabled,
	}); err != nil {
		t.Fatalf("set supplier: %v", err)
	}

	_, err := fx.service.ResolveForSupplier(ctx, fx.supplier.ID.String(), fx.ingredient.ID.String())
	if !errors.Is(err, domain.ErrSupplierNotAuthorized) {
		t.Errorf("disabled pair: got %v, want ErrSupplierNotAuthorized", err)
	}
}

func TestResolveForSupplier_NoModelAssigned(t *testing.T) {
	fx := newGraphFixture()
	ctx := context.Background()
	enabled := true

	if err := fx.service.SetSupplierEnabled(ctx, domain.SetSupplierAssignmentRequest{
		IngredientID: fx.ingredient.ID.String(),
		SupplierID:   fx.supplier.ID.String(),
		Enabled:      &enabled,
	}); err != nil {
		t.Fatalf("set supplier: %v", err)
	}

	_, err := fx.service.ResolveForSupplier(ctx, fx.supplier.ID.String(), fx.ingredient.ID.String())
	if !errors.Is(err, domain.ErrModelNotAssigned) {
		t.Errorf("unmapped ingredient: got %v, want ErrModelNotAssigned", err)
	}
	if errors.Is(err, domain.ErrSupplierNotAuthorized) {
		t.Error("NotAssigned must stay distinct from an authorization failure")
	}
}

func TestResolveForSupplier_EnabledPairGetsModel(t *testing.T) {
	fx := newGraphFixture()
	ctx := context.Background()
	enabled := true

	if err := fx.service.AssignModel(ctx, domain.AssignModelRequest{
		IngredientID: fx.ingredient.ID.String(),
		ModelID:      fx.model.ID.String(),
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := fx.service.SetSupplierEnabled(ctx, domain.SetSupplierAssignmentRequest{
		IngredientID: fx.ingredient.ID.String(),
		SupplierID:   fx.supplier.ID.String(),
		Enabled:      &enabled,
	}); err != nil {
		t.Fatalf("set supplier: %v", err)
	}

	model, err := fx.service.ResolveForSupplier(ctx, fx.supplier.ID.String(), fx.ingredient.ID.String())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if model.ID != fx.model.ID {
		t.Errorf("resolved model: got %s, want %s", model.ID, fx.model.ID)
	}
}

func TestReplaceSupplierAssignments_DisablesMissingPairs(t *testing.T) {
	fx := newGraphFixture()
	ctx := context.Background()
	enabled := true

	other := &entities.User{ID: uuid.New(), Name: "Beta Chem", Role: domain.RoleSupplier}
	fx.service.(*assignmentService).userRepository.(*fakeUserRepository).users[other.ID.String()] = other

	for _, id := range []string{fx.supplier.ID.String(), other.ID.String()} {
		if err := fx.service.SetSupplierEnabled(ctx, domain.SetSupplierAssignmentRequest{
			IngredientID: fx.ingredient.ID.String(),
			SupplierID:   id,
			Enabled:      &enabled,
		}); err != nil {
			t.Fatalf("set supplier %s: %v", id, err)
		}
	}

	if err := fx.service.ReplaceSupplierAssignments(ctx, fx.ingredient.ID.String(), []string{other.ID.String()}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	// Both rows survive; only the flag changed.
	if len(fx.repo.supplierAssignments) != 2 {
		t.Fatalf("rows must not be deleted, got %d", len(fx.repo.supplierAssignments))
	}
	if fx.repo.supplierAssignments[pairKey(fx.ingredient.ID.String(), fx.supplier.ID.String())].Enabled {
		t.Error("missing supplier should be disabled")
	}
	if !fx.repo.supplierAssignments[pairKey(fx.ingredient.ID.String(), other.ID.String())].Enabled {
		t.Error("listed supplier should stay enabled")
	}
}
