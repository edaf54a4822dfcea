package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a global label, deduplicated by name. The NSFW flag belongs to the tag
// itself and is set on first creation only.
type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;uniqueIndex;not null"`
	NSFW      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagLink attaches a tag to an entity with per-attachment metadata.
// OwnerPosition is the tag's index in the owning entity's tag list; TagPosition
// is reserved for ordering from the tag side and is currently always written as 0.
type TagLink struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerType     OwnerType `gorm:"size:20;not null;uniqueIndex:idx_tag_links_identity"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tag_links_identity"`
	TagID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tag_links_identity"`
	IsSpoiler     bool      `gorm:"not null;default:false"`
	Note          string
	OwnerPosition int `gorm:"not null"`
	TagPosition   int `gorm:"not null"`
	CreatedAt     time.Time
}
