package models

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a developer, publisher or distributor.
type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	OriginalName string    `gorm:"size:255"`
	Description  string
	RelatedSites []RelatedSite `gorm:"serializer:json"`
	Logo         string        `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
