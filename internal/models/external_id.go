package models

import (
	"time"

	"github.com/google/uuid"
)

// ExternalID links an entity row to its identifier in a third-party catalog.
// The unique index makes (source, source_id) globally unique per entity type,
// which is what the external-ID dedup tier relies on. Position preserves the
// order the references appeared in the scraper input.
type ExternalID struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerType OwnerType `gorm:"size:20;not null;uniqueIndex:idx_external_ids_identity;index:idx_external_ids_owner"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_external_ids_owner"`
	Source    string    `gorm:"size:100;not null;uniqueIndex:idx_external_ids_identity"`
	SourceID  string    `gorm:"size:255;not null;uniqueIndex:idx_external_ids_identity"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}
