package models

import (
	"time"

	"github.com/google/uuid"
)

// Person represents a real-world person (staff, voice actor, artist...).
type Person struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	OriginalName string    `gorm:"size:255"`
	Description  string
	RelatedSites []RelatedSite `gorm:"serializer:json"`
	Photo        string        `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name; gorm would otherwise pluralize to "people".
func (Person) TableName() string {
	return "persons"
}
