package ingredient

import (
	"context"
	"errors"
	"testing"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeIngredientRepository struct {
	ingredients map[string]*entities.Ingredient
	submissions map[string]int64
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{
		ingredients: map[string]*entities.Ingredient{},
		submissions: map[string]int64{},
	}
}

func (r *fakeIngredientRepository) AddIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	r.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (r *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	ingredient, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ingredient, nil
}

func (r *fakeIngredientRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	r.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (r *fakeIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	delete(r.ingredients, id)
	return nil
}

func (r *fakeIngredientRepository) GetIngredients(_ context.Context, _, _ int) ([]*entities.Ingredient, int64, error) {
	var out []*entities.Ingredient
	for _, ingredient := range r.ingredients {
		out = append(out, ingredient)
	}
	return out, int64(len(out)), nil
}

func (r *fakeIngredientRepository) CountSubmissionsForIngredient(_ context.Context, id string) (int64, error) {
	return r.submissions[id], nil
}

func f(v float64) *float64 { return &v }

func TestDeleteIngredient_ReferencedIsRejected(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.AddIngredient(context.Background(), domain.AddIngredientRequest{
		Name:   "sodium lauryl sulfate",
		Purity: f(92.5),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	repo.submissions[res.ID] = 3

	if err := service.DeleteIngredient(context.Background(), res.ID); !errors.Is(err, domain.ErrIngredientReferenced) {
		t.Fatalf("delete referenced: got %v, want ErrIngredientReferenced", err)
	}
	if _, err := service.GetIngredientByID(context.Background(), res.ID); err != nil {
		t.Errorf("ingredient must survive a rejected delete: %v", err)
	}

	repo.submissions[res.ID] = 0
	if err := service.DeleteIngredient(context.Background(), res.ID); err != nil {
		t.Fatalf("delete unreferenced: %v", err)
	}
	if _, err := service.GetIngredientByID(context.Background(), res.ID); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Errorf("after delete: got %v, want ErrIngredientNotFound", err)
	}
}

func TestUpdateIngredient_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.AddIngredient(context.Background(), domain.AddIngredientRequest{
		Name:    "cocamide DEA",
		Purity:  f(88),
		Foaming: f(310),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := service.UpdateIngredient(context.Background(), res.ID, domain.UpdateIngredientRequest{
		Foaming: f(325),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := service.GetIngredientByID(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "cocamide DEA" || got.Purity == nil || *got.Purity != 88 {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if got.Foaming == nil || *got.Foaming != 325 {
		t.Errorf("foaming: got %v, want 325", got.Foaming)
	}
}

func TestGetIngredientByID_Unknown(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepository())

	if _, err := service.GetIngredientByID(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Errorf("got %v, want ErrIngredientNotFound", err)
	}
}
