package domain

import (
	"errors"
)

var (
	MessageSuccessCreateSubmission = "submission evaluated and recorded"
	MessageSuccessGetSubmissions   = "submissions retrieved successfully"
	MessageSuccessUploadReport     = "lab report uploaded successfully"

	MessageFailedCreateSubmission = "failed to evaluate submission"
	MessageFailedGetSubmissions   = "failed to retrieve submissions"
	MessageFailedUploadReport     = "failed to upload lab report"
	MessageFailedNotAuthorized    = "supplier is not authorized for this ingredient"

	ErrSubmissionNotFound = errors.New("submission not found")
	ErrEmptySubmission    = errors.New("submission must contain at least one batch")
	ErrNegativeMetric     = errors.New("batch metric must be non-negative")
)

type (
	BatchMetricsRequest struct {
		Purity           *float64 `json:"purity" validate:"omitempty,gte=0"`
		Foaming          *float64 `json:"foaming" validate:"omitempty,gte=0"`
		Detergency       *float64 `json:"detergency" validate:"omitempty,gte=0"`
		Biodegradability *float64 `json:"biodegradability" validate:"omitempty,gte=0"`
	}

	BatchRequest struct {
		BatchLabel string              `json:"batch_label" validate:"omitempty"`
		Metrics    BatchMetricsRequest `json:"metrics"`
	}

	CreateSubmissionRequest struct {
		IngredientID    string         `json:"ingredient_id" validate:"required,uuid"`
		SubmissionLabel string         `json:"submission_label" validate:"omitempty"`
		Batches         []BatchRequest `json:"batches" validate:"required,min=1,dive"`
	}

	BatchMetricsResponse struct {
		Purity           float64 `json:"purity"`
		Foaming          float64 `json:"foaming"`
		Detergency       float64 `json:"detergency"`
		Biodegradability float64 `json:"biodegradability"`
	}

	BatchResultResponse struct {
		Status         string               `json:"status"`
		BatchLabel     string               `json:"batch_label"`
		Metrics        BatchMetricsResponse `json:"metrics"`
		FailureReasons []string             `json:"failure_reasons,omitempty"`
	}

	SubmissionResponse struct {
		SubmissionID    string                `json:"submissionid"`
		SubmissionLabel string                `json:"submission_label"`
		CreatedAt       string                `json:"created_at"`
		SupplierID      string                `json:"supplier_id"`
		IngredientID    string                `json:"ingredient_id"`
		ModelID         string                `json:"model_id"`
		TotalBatches    int                   `json:"total_batches"`
		PassedBatches   int                   `json:"passed_batches"`
		FailedBatches   int                   `json:"failed_batches"`
		ReportURL       string                `json:"report_url,omitempty"`
		Results         []BatchResultResponse `json:"results"`
	}

	UploadReportResponse struct {
		SubmissionID string `json:"submissionid"`
		ReportURL    string `json:"report_url"`
	}
)
