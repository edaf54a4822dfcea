package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user-defined grouping of library entities.
type Collection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CollectionLink is the collection membership row. Membership inserts are
// conflict-tolerant: adding an existing member is a no-op.
type CollectionLink struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_links_identity"`
	OwnerType    OwnerType `gorm:"size:20;not null;uniqueIndex:idx_collection_links_identity"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_links_identity"`
	CreatedAt    time.Time
}
