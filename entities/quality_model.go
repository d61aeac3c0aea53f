package entities

import (
	"github.com/google/uuid"
)

// QualityModel holds the minimum-acceptable threshold per measured property
// (0 means no requirement) and a display scale factor per property (weighting
// only, never part of the pass/fail decision).
type QualityModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                  string    `json:"name"`
	PurityMin             float64   `gorm:"default:0" json:"purity_min"`
	FoamingMin            float64   `gorm:"default:0" json:"foaming_min"`
	DetergencyMin         float64   `gorm:"default:0" json:"detergency_min"`
	BiodegradabilityMin   float64   `gorm:"default:0" json:"biodegradability_min"`
	PurityScale           float64   `gorm:"default:1" json:"purity_scale"`
	FoamingScale          float64   `gorm:"default:1" json:"foaming_scale"`
	DetergencyScale       float64   `gorm:"default:1" json:"detergency_scale"`
	BiodegradabilityScale float64   `gorm:"default:1" json:"biodegradability_scale"`
	IsActive              bool      `gorm:"default:false" json:"is_active"`

	Timestamp
}
