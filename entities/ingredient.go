package entities

import (
	"github.com/google/uuid"
)

// Ingredient is a raw material tracked with measured quality properties.
// The four properties are reference values and may be unknown; batch
// submissions carry their own measurements.
type Ingredient struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `json:"name"`
	Purity           *float64  `json:"purity,omitempty"`
	Foaming          *float64  `json:"foaming,omitempty"`
	Detergency       *float64  `json:"detergency,omitempty"`
	Biodegradability *float64  `json:"biodegradability,omitempty"`

	Timestamp
}
