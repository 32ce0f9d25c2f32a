package dto

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// AddEquipmentDTO is the create request. Length and width map to
// NUMERIC(10,2) columns; height and weight to NUMERIC(10,3).
type AddEquipmentDTO struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description null.String `json:"description" validate:"omitempty,max=1000"`
	Length      float64     `json:"length" validate:"required,gt=0,decimal=10.2"`
	Width       float64     `json:"width" validate:"required,gt=0,decimal=10.2"`
	Height      float64     `json:"height" validate:"gt=0,decimal=10.3"`
	Weight      float64     `json:"weight" validate:"gt=0,decimal=10.3"`
}

// EquipmentDTO is the full read view, audit fields included.
type EquipmentDTO struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Status      string      `json:"status"`
	Length      float64     `json:"length"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Weight      float64     `json:"weight"`
	CreatedAt   time.Time   `json:"createdAt"`
	CreatedBy   string      `json:"createdBy"`
	ModifiedAt  null.Time   `json:"modifiedAt"`
	ModifiedBy  null.String `json:"modifiedBy"`
}

// AddEquipmentResponseDTO is the create response: the created row without
// the audit identities.
type AddEquipmentResponseDTO struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Status      string      `json:"status"`
	Length      float64     `json:"length"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Weight      float64     `json:"weight"`
	CreatedAt   time.Time   `json:"createdAt"`
}
