package entities

import (
	"github.com/google/uuid"
)

// Submission is a supplier's dated collection of batch results, immutable
// once created. The derived counts always satisfy
// TotalBatches = PassedBatches + FailedBatches = len(Results).
type Submission struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Label         string    `json:"label,omitempty"`
	SupplierID    uuid.UUID `gorm:"type:uuid" json:"supplier_id"`
	IngredientID  uuid.UUID `gorm:"type:uuid" json:"ingredient_id"`
	ModelID       uuid.UUID `gorm:"type:uuid" json:"model_id"`
	TotalBatches  int       `json:"total_batches"`
	PassedBatches int       `json:"passed_batches"`
	FailedBatches int       `json:"failed_batches"`
	ReportURL     string    `json:"report_url,omitempty"`

	Supplier   *User          `gorm:"foreignKey:SupplierID"`
	Ingredient *Ingredient    `gorm:"foreignKey:IngredientID"`
	Model      *QualityModel  `gorm:"foreignKey:ModelID"`
	Results    []*BatchResult `gorm:"foreignKey:SubmissionID"`
	Timestamp
}

// BatchResult stores one evaluated batch. Position preserves submission
// order; FailureReasons is a JSON array of strings, empty on PASS.
type BatchResult struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SubmissionID     uuid.UUID `gorm:"type:uuid;index" json:"submission_id"`
	Position         int       `json:"position"`
	BatchLabel       string    `json:"batch_label"`
	Status           string    `json:"status"` // "PASS", "FAIL"
	Purity           float64   `json:"purity"`
	Foaming          float64   `json:"foaming"`
	Detergency       float64   `json:"detergency"`
	Biodegradability float64   `json:"biodegradability"`
	FailureReasons   string    `gorm:"type:text" json:"failure_reasons,omitempty"`

	Submission *Submission `gorm:"foreignKey:SubmissionID"`
	Timestamp
}
