package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"
	"supplier-portal-backend/internal/utils/mailing"
	"supplier-portal-backend/internal/utils/storage"
	"supplier-portal-backend/pkg/assignment"
	"supplier-portal-backend/pkg/evaluation"
	"supplier-portal-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubmissionService interface {
		CreateSubmission(ctx context.Context, req domain.CreateSubmissionRequest, supplierID string) (domain.SubmissionResponse, error)
		GetSubmissions(ctx context.Context, supplierID, ingredientID string, page, limit int) ([]domain.SubmissionResponse, int64, error)
		GetSubmissionByID(ctx context.Context, id, callerID, role string) (domain.SubmissionResponse, error)
		UploadReport(ctx context.Context, submissionID, supplierID string, file *multipart.FileHeader) (domain.UploadReportResponse, error)
	}

	submissionService struct {
		submissionRepository SubmissionRepository
		assignmentService    assignment.AssignmentService
		userRepository       user.UserRepository
		s3                   storage.AwsS3
	}
)

func NewSubmissionService(
	submissionRepository SubmissionRepository,
	assignmentService assignment.AssignmentService,
	userRepository user.UserRepository,
	s3 storage.AwsS3,
) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		assignmentService:    assignmentService,
		userRepository:       userRepository,
		s3:                   s3,
	}
}

func (s *submissionService) CreateSubmission(ctx context.Context, req domain.CreateSubmissionRequest, supplierID string) (domain.SubmissionResponse, error) {
	supplierUUID, err := uuid.Parse(supplierID)
	if err != nil {
		return domain.SubmissionResponse{}, domain.ErrParseUUID
	}
	ingredientUUID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.SubmissionResponse{}, domain.ErrParseUUID
	}

	if len(req.Batches) == 0 {
		return domain.SubmissionResponse{}, domain.ErrEmptySubmission
	}

	model, err := s.assignmentService.ResolveForSupplier(ctx, supplierID, req.IngredientID)
	if err != nil {
		return domain.SubmissionResponse{}, err
	}

	results := make([]evaluation.BatchResult, 0, len(req.Batches))
	for _, b := range req.Batches {
		result, evalErr := evaluation.EvaluateBatch(evaluation.Batch{
			Label: b.BatchLabel,
			Metrics: evaluation.Metrics{
				Purity:           b.Metrics.Purity,
				Foaming:          b.Metrics.Foaming,
				Detergency:       b.Metrics.Detergency,
				Biodegradability: b.Metrics.Biodegradability,
			},
		}, model)
		if evalErr != nil {
			// A misconfigured model rejects the whole submission; nothing
			// is persisted.
			return domain.SubmissionResponse{}, evalErr
		}
		results = append(results, result)
	}

	summary := evaluation.Aggregate(results)

	sub := &entities.Submission{
		Label:         req.SubmissionLabel,
		SupplierID:    supplierUUID,
		IngredientID:  ingredientUUID,
		ModelID:       model.ID,
		TotalBatches:  summary.Total,
		PassedBatches: summary.Passed,
		FailedBatches: summary.Failed,
	}

	for i, result := range results {
		reasons := ""
		if len(result.FailureReasons) > 0 {
			raw, err := json.Marshal(result.FailureReasons)
			if err != nil {
				return domain.SubmissionResponse{}, err
			}
			reasons = string(raw)
		}
		sub.Results = append(sub.Results, &entities.BatchResult{
			Position:         i,
			BatchLabel:       result.BatchLabel,
			Status:           result.Status,
			Purity:           result.Purity,
			Foaming:          result.Foaming,
			Detergency:       result.Detergency,
			Biodegradability: result.Biodegradability,
			FailureReasons:   reasons,
		})
	}

	if err := s.submissionRepository.CreateSubmission(ctx, sub); err != nil {
		return domain.SubmissionResponse{}, fmt.Errorf("%w: %v", domain.ErrRepository, err)
	}

	go s.notifySupplier(sub)

	return toSubmissionResponse(sub)
}

func (s *submissionService) notifySupplier(sub *entities.Submission) {
	supplier, err := s.userRepository.GetUserByID(context.Background(), sub.SupplierID.String())
	if err != nil {
		log.Printf("submission %s: supplier lookup for mail failed: %v", sub.ID, err)
		return
	}

	subject := fmt.Sprintf("Submission result: %d/%d batches passed", sub.PassedBatches, sub.TotalBatches)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your submission <b>%s</b> has been evaluated.</p>"+
			"<p>Total batches: %d<br>Passed: %d<br>Failed: %d</p>",
		supplier.Name, sub.Label, sub.TotalBatches, sub.PassedBatches, sub.FailedBatches,
	)

	if err := mailing.SendMail(supplier.Email, subject, body); err != nil {
		log.Printf("submission %s: result mail failed: %v", sub.ID, err)
	}
}

func toSubmissionResponse(sub *entities.Submission) (domain.SubmissionResponse, error) {
	response := domain.SubmissionResponse{
		SubmissionID:    sub.ID.String(),
		SubmissionLabel: sub.Label,
		CreatedAt:       sub.CreatedAt.UTC().Format(time.RFC3339),
		SupplierID:      sub.SupplierID.String(),
		IngredientID:    sub.IngredientID.String(),
		ModelID:         sub.ModelID.String(),
		TotalBatches:    sub.TotalBatches,
		PassedBatches:   sub.PassedBatches,
		FailedBatches:   sub.FailedBatches,
		ReportURL:       sub.ReportURL,
		Results:         make([]domain.BatchResultResponse, 0, len(sub.Results)),
	}

	for _, r := range sub.Results {
		var reasons []string
		if r.FailureReasons != "" {
			if err := json.Unmarshal([]byte(r.FailureReasons), &reasons); err != nil {
				return domain.SubmissionResponse{}, err
			}
		}
		response.Results = append(response.Results, domain.BatchResultResponse{
			Status:     r.Status,
			BatchLabel: r.BatchLabel,
			Metrics: domain.BatchMetricsResponse{
				Purity:           r.Purity,
				Foaming:          r.Foaming,
				Detergency:       r.Detergency,
				Biodegradability: r.Biodegradability,
			},
			FailureReasons: reasons,
		})
	}

	return response, nil
}

func (s *submissionService) GetSubmissions(ctx context.Context, supplierID, ingredientID string, page, limit int) ([]domain.SubmissionResponse, int64, error) {
	submissions, count, err := s.submissionRepository.GetSubmissions(ctx, supplierID, ingredientID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.SubmissionResponse
	for _, sub := range submissions {
		res, err := toSubmissionResponse(sub)
		if err != nil {
			return nil, 0, err
		}
		response = append(response, res)
	}

	return response, count, nil
}

func (s *submissionService) GetSubmissionByID(ctx context.Context, id, callerID, role string) (domain.SubmissionResponse, error) {
	sub, err := s.submissionRepository.GetSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubmissionResponse{}, domain.ErrSubmissionNotFound
		}
		return domain.SubmissionResponse{}, err
	}

	if role != domain.RoleAdmin && sub.SupplierID.String() != callerID {
		return domain.SubmissionResponse{}, domain.ErrUserNotAllowed
	}

	return toSubmissionResponse(sub)
}

func (s *submissionService) UploadReport(ctx context.Context, submissionID, supplierID string, file *multipart.FileHeader) (domain.UploadReportResponse, error) {
	sub, err := s.submissionRepository.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadReportResponse{}, domain.ErrSubmissionNotFound
		}
		return domain.UploadReportResponse{}, err
	}

	if sub.SupplierID.String() != supplierID {
		return domain.UploadReportResponse{}, domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("lab-report-%s", sub.ID.String())

	var objectKey string
	if sub.ReportURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(sub.ReportURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, file, storage.AllowReport...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, file, "lab-reports", storage.AllowReport...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, file, "lab-reports", storage.AllowReport...)
	}
	if err != nil {
		return domain.UploadReportResponse{}, err
	}

	sub.ReportURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.submissionRepository.UpdateSubmission(ctx, sub); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReportResponse{}, fmt.Errorf("%w: %v", domain.ErrRepository, err)
	}

	return domain.UploadReportResponse{
		SubmissionID: sub.ID.String(),
		ReportURL:    sub.ReportURL,
	}, nil
}
