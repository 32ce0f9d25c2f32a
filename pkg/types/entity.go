package types

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// SystemUserID is the well-known identity used for audit stamping while no
// authenticated user context exists.
var SystemUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const SystemUserName = "System"

// AuditFields are populated by the persistence layer at commit time,
// never by application code.
type AuditFields struct {
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	CreatedByID  uuid.UUID     `json:"-" db:"created_by_id"`
	CreatedBy    string        `json:"createdBy" db:"created_by"`
	ModifiedAt   null.Time     `json:"modifiedAt" db:"modified_at"`
	ModifiedByID uuid.NullUUID `json:"-" db:"modified_by_id"`
	ModifiedBy   null.String   `json:"modifiedBy" db:"modified_by"`
}

// SoftDelete marks a row inactive instead of removing it. Rows with
// IsDeleted set are excluded from every standard read.
type SoftDelete struct {
	IsDeleted bool      `json:"-" db:"is_deleted"`
	DeletedAt null.Time `json:"-" db:"deleted_at"`
}
