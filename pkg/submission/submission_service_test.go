package submission

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"
	"supplier-portal-backend/pkg/evaluation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeSubmissionRepository struct {
	submissions map[string]*entities.Submission
	createErr   error
}

func newFakeSubmissionRepository() *fakeSubmissionRepository {
	return &fakeSubmissionRepository{submissions: map[string]*entities.Submission{}}
}

func (r *fakeSubmissionRepository) CreateSubmission(_ context.Context, sub *entities.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.CreatedAt = time.Now()
	r.submissions[sub.ID.String()] = sub
	return nil
}

func (r *fakeSubmissionRepository) GetSubmissionByID(_ context.Context, id string) (*entities.Submission, error) {
	sub, ok := r.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (r *fakeSubmissionRepository) GetSubmissions(_ context.Context, supplierID, ingredientID string, _, _ int) ([]*entities.Submission, int64, error) {
	var out []*entities.Submission
	for _, sub := range r.submissions {
		if supplierID != "" && sub.SupplierID.String() != supplierID {
			continue
		}
		if ingredientID != "" && sub.IngredientID.String() != ingredientID {
			continue
		}
		out = append(out, sub)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSubmissionRepository) UpdateSubmission(_ context.Context, sub *entities.Submission) error {
	r.submissions[sub.ID.String()] = sub
	return nil
}

// fakeAssignmentService resolves a fixed model, or fails with a fixed error.
type fakeAssignmentService struct {
	model      *entities.QualityModel
	resolveErr error
}

func (f *fakeAssignmentService) AssignModel(context.Context, domain.AssignModelRequest) error {
	return nil
}
func (f *fakeAssignmentService) UnassignModel(context.Context, string) error { return nil }
func (f *fakeAssignmentService) ListModelAssignments(context.Context) ([]domain.ModelAssignmentResponse, error) {
	return nil, nil
}
func (f *fakeAssignmentService) SetSupplierEnabled(context.Context, domain.SetSupplierAssignmentRequest) error {
	return nil
}
func (f *fakeAssignmentService) ReplaceSupplierAssignments(context.Context, string, []string) error {
	return nil
}
func (f *fakeAssignmentService) ListSupplierAssignments(context.Context, string) ([]domain.SupplierAssignmentResponse, error) {
	return nil, nil
}
func (f *fakeAssignmentService) ResolveForSupplier(context.Context, string, string) (*entities.QualityModel, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.model, nil
}
func (f *fakeAssignmentService) ListAssignedIngredients(context.Context, string) ([]domain.AssignedIngredientResponse, error) {
	return nil, nil
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

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}
func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}
func (fakeS3) DeleteFile(string) error              { return nil }
func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}
func (fakeS3) GetObjectKeyFromLink(string) string { return "" }

func f(v float64) *float64 { return &v }

type submissionFixture struct {
	service    SubmissionService
	repo       *fakeSubmissionRepository
	assignment *fakeAssignmentService
	supplier   *entities.User
	ingredient uuid.UUID
}

func newSubmissionFixture() *submissionFixture {
	repo := newFakeSubmissionRepository()
	supplier := &entities.User{ID: uuid.New(), Name: "Acme Chem", Email: "lab@acme.test", Role: domain.RoleSupplier}
	users := &fakeUserRepository{users: map[string]*entities.User{supplier.ID.String(): supplier}}
	assignmentSvc := &fakeAssignmentService{
		model: &entities.QualityModel{
			ID:                  uuid.New(),
			Name:                "reference",
			PurityMin:           60,
			FoamingMin:          300,
			BiodegradabilityMin: 600,
		},
	}

	return &submissionFixture{
		service:    NewSubmissionService(repo, assignmentSvc, users, fakeS3{}),
		repo:       repo,
		assignment: assignmentSvc,
		supplier:   supplier,
		ingredient: uuid.New(),
	}
}

func (fx *submissionFixture) request(batches ...domain.BatchRequest) domain.CreateSubmissionRequest {
	return domain.CreateSubmissionRequest{
		IngredientID:    fx.ingredient.String(),
		SubmissionLabel: "weekly QC",
		Batches:         batches,
	}
}

func TestCreateSubmission_CountsAndOrder(t *testing.T) {
	fx := newSubmissionFixture()

	passing := domain.BatchMetricsRequest{Purity: f(70), Foaming: f(400), Biodegradability: f(700)}
	failing := domain.BatchMetricsRequest{Purity: f(10)}

	res, err := fx.service.CreateSubmission(context.Background(), fx.request(
		domain.BatchRequest{BatchLabel: "b1", Metrics: passing},
		domain.BatchRequest{BatchLabel: "b2", Metrics: failing},
		domain.BatchRequest{BatchLabel: "b3", Metrics: failing},
		domain.BatchRequest{BatchLabel: "b4", Metrics: passing},
		domain.BatchRequest{BatchLabel: "b5", Metrics: failing},
	), fx.supplier.ID.String())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if res.TotalBatches != 5 || res.PassedBatches != 2 || res.FailedBatches != 3 {
		t.Errorf("counts: got %d/%d/%d, want 5/2/3", res.TotalBatches, res.PassedBatches, res.FailedBatches)
	}
	if res.TotalBatches != len(res.Results) {
		t.Errorf("total must equal results length")
	}

	// Results keep submission order, not status order.
	labels := []string{"b1", "b2", "b3", "b4", "b5"}
	for i, r := range res.Results {
		if r.BatchLabel != labels[i] {
			t.Errorf("result %d: got label %q, want %q", i, r.BatchLabel, labels[i])
		}
	}

	if res.Results[0].Status != evaluation.StatusPass || len(res.Results[0].FailureReasons) != 0 {
		t.Errorf("passing batch: %+v", res.Results[0])
	}
	if res.Results[1].Status != evaluation.StatusFail || len(res.Results[1].FailureReasons) == 0 {
		t.Errorf("failing batch: %+v", res.Results[1])
	}
}

func TestCreateSubmission_UnauthorizedPersistsNothing(t *testing.T) {
	fx := newSubmissionFixture()
	fx.assignment.resolveErr = domain.ErrSupplierNotAuthorized

	_, err := fx.service.CreateSubmission(context.Background(), fx.request(
		domain.BatchRequest{BatchLabel: "b1"},
	), fx.supplier.ID.String())
	if !errors.Is(err, domain.ErrSupplierNotAuthorized) {
		t.Fatalf("error: got %v, want ErrSupplierNotAuthorized", err)
	}
	if len(fx.repo.submissions) != 0 {
		t.Error("nothing must be persisted on authorization failure")
	}
}

func TestCreateSubmission_RepositoryFailureIsDistinguishable(t *testing.T) {
	fx := newSubmissionFixture()
	fx.repo.createErr = errors.New("connection reset")

	_, err := fx.service.CreateSubmission(context.Background(), fx.request(
		domain.BatchRequest{BatchLabel: "b1", Metrics: domain.BatchMetricsRequest{Purity: f(70), Foaming: f(400), Biodegradability: f(700)}},
	), fx.supplier.ID.String())
	if !errors.Is(err, domain.ErrRepository) {
		t.Errorf("error: got %v, want wrapped ErrRepository", err)
	}
}

func TestCreateSubmission_EmptyBatchListRejected(t *testing.T) {
	fx := newSubmissionFixture()

	_, err := fx.service.CreateSubmission(context.Background(), fx.request(), fx.supplier.ID.String())
	if !errors.Is(err, domain.ErrEmptySubmission) {
		t.Errorf("error: got %v, want ErrEmptySubmission", err)
	}
}

func TestGetSubmissionByID_OwnershipCheck(t *testing.T) {
	fx := newSubmissionFixture()

	res, err := fx.service.CreateSubmission(context.Background(), fx.request(
		domain.BatchRequest{BatchLabel: "b1", Metrics: domain.BatchMetricsRequest{Purity: f(70), Foaming: f(400), Biodegradability: f(700)}},
	), fx.supplier.ID.String())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := fx.service.GetSubmissionByID(context.Background(), res.SubmissionID, fx.supplier.ID.String(), domain.RoleSupplier); err != nil {
		t.Errorf("owner read: %v", err)
	}

	if _, err := fx.service.GetSubmissionByID(context.Background(), res.SubmissionID, uuid.NewString(), domain.RoleSupplier); !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Errorf("foreign supplier read: got %v, want ErrUserNotAllowed", err)
	}

	if _, err := fx.service.GetSubmissionByID(context.Background(), res.SubmissionID, uuid.NewString(), domain.RoleAdmin); err != nil {
		t.Errorf("admin read: %v", err)
	}
}

func TestCreateSubmission_MisconfiguredModelRejectsWholeSubmission(t *testing.T) {
	fx := newSubmissionFixture()
	fx.assignment.model.PurityMin = nan()

	_, err := fx.service.CreateSubmission(context.Background(), fx.request(
		domain.BatchRequest{BatchLabel: "b1", Metrics: domain.BatchMetricsRequest{Purity: f(99)}},
	), fx.supplier.ID.String())
	if !errors.Is(err, domain.ErrModelMisconfigured) {
		t.Fatalf("error: got %v, want ErrModelMisconfigured", err)
	}
	if len(fx.repo.submissions) != 0 {
		t.Error("nothing must be persisted for a misconfigured model")
	}
}

func nan() float64 {
	v := 0.0
	return v / v
}
