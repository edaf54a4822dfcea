package models_test

import (
	"testing"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func TestRelatedSitesRoundTrip(t *testing.T) {
	db := newTestDB(t)

	person := models.Person{
		ID:   uuid.New(),
		Name: "Alice",
		RelatedSites: []models.RelatedSite{
			{Label: "Official", URL: "https://example.com/alice"},
			{Label: "Wiki", URL: "https://wiki.example.com/alice"},
		},
	}
	require.NoError(t, db.Create(&person).Error)

	var stored models.Person
	require.NoError(t, db.First(&stored, "id = ?", person.ID).Error)
	assert.Equal(t, person.RelatedSites, stored.RelatedSites)
}

func TestOwnerTypeMatchesEntityTables(t *testing.T) {
	db := newTestDB(t)

	// The asset flusher derives table names from the owner type, so every
	// constant must pluralize to an existing table.
	for owner, table := range map[models.OwnerType]string{
		models.OwnerGame:      "games",
		models.OwnerPerson:    "persons",
		models.OwnerCompany:   "companies",
		models.OwnerCharacter: "characters",
	} {
		assert.True(t, db.Migrator().HasTable(table), "owner %s has no %s table", owner, table)
	}
}
