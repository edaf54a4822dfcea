package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a game in the library.
// The file columns (Cover, Backdrop, Logo, Icon) are filled in after commit by the
// asset flusher; the ingestion transaction itself never writes them.
type Game struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	OriginalName string    `gorm:"size:255"`
	Description  string
	ReleaseDate  string        `gorm:"size:32"`
	RelatedSites []RelatedSite `gorm:"serializer:json"`

	// Local install location; checked as a dedup signal before external IDs.
	LocalPath    string `gorm:"size:512;index"`
	LauncherPath string `gorm:"size:512"`

	Cover    string `gorm:"size:512"`
	Backdrop string `gorm:"size:512"`
	Logo     string `gorm:"size:512"`
	Icon     string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
