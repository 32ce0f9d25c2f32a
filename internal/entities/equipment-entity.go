package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"inventive-admin/pkg/types"
)

// Equipment is the sole domain entity: a piece of inventory available for
// reservation. Field validation happens at the HTTP boundary; constructors
// and mutators assume pre-validated input.
type Equipment struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description null.String     `json:"description" db:"description"`
	Status      EquipmentStatus `json:"status" db:"status"`
	Length      float64         `json:"length" db:"length"`
	Width       float64         `json:"width" db:"width"`
	Height      float64         `json:"height" db:"height"`
	Weight      float64         `json:"weight" db:"weight"`

	types.SoftDelete
	types.AuditFields
}

// NewEquipment creates an equipment entry with a freshly generated id and
// status Available. Audit fields stay zero until the unit of work commits.
func NewEquipment(name string, description null.String, length, width, height, weight float64) *Equipment {
	return &Equipment{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Status:      StatusAvailable,
		Length:      length,
		Width:       width,
		Height:      height,
		Weight:      weight,
	}
}

// Update replaces the physical attributes in place. Status, audit and
// soft-delete fields are untouched.
func (e *Equipment) Update(name string, description null.String, length, width, height, weight float64) {
	e.Name = name
	e.Description = description
	e.Length = length
	e.Width = width
	e.Height = height
	e.Weight = weight
}

// ChangeStatus overwrites the status unconditionally. Transition legality is
// an open product question; callers wanting a state machine must enforce it
// themselves.
func (e *Equipment) ChangeStatus(newStatus EquipmentStatus) {
	e.Status = newStatus
}

// Delete soft-deletes the equipment. Calling it twice just re-stamps the
// deletion time.
func (e *Equipment) Delete() {
	e.IsDeleted = true
	e.DeletedAt = null.TimeFrom(time.Now().UTC())
}

// Restore clears the soft-delete marker.
func (e *Equipment) Restore() {
	e.IsDeleted = false
	e.DeletedAt = null.Time{}
}
