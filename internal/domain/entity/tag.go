package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is an owned entity holding a free-text name. After reconciliation no
// two tags share the same (name, owner) pair; the storage layer carries a
// unique constraint on that pair so concurrent reconciliations serialize
// instead of duplicating rows.
type Tag struct {
	ID        uuid.UUID // The unique identifier for the tag.
	Name      string    // Free-text name.
	UserID    uuid.UUID // Owner reference.
	CreatedAt time.Time
	UpdatedAt time.Time
}
