package assets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestFlusher(t *testing.T) (*assets.Flusher, *gorm.DB, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models()...))

	dir := t.TempDir()
	return assets.NewFlusher(db, dir, logger.NewNop()), db, dir
}

func TestFlushStoresImageAndUpdatesColumn(t *testing.T) {
	flusher, db, dir := newTestFlusher(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	person := models.Person{ID: uuid.New(), Name: "Alice"}
	require.NoError(t, db.Create(&person).Error)

	flusher.Flush(context.Background(), []assets.Task{{
		OwnerType: models.OwnerPerson,
		OwnerID:   person.ID,
		Field:     assets.FieldPhoto,
		URL:       server.URL + "/alice",
	}})

	var stored models.Person
	require.NoError(t, db.First(&stored, "id = ?", person.ID).Error)
	require.NotEmpty(t, stored.Photo)
	assert.Equal(t, filepath.Join("person", person.ID.String(), "photo.png"), stored.Photo)

	data, err := os.ReadFile(filepath.Join(dir, stored.Photo))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFlushFailureLeavesSiblingsUnaffected(t *testing.T) {
	flusher, db, _ := newTestFlusher(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpg-bytes"))
	}))
	defer server.Close()

	game := models.Game{ID: uuid.New(), Name: "Clair"}
	require.NoError(t, db.Create(&game).Error)

	flusher.Flush(context.Background(), []assets.Task{
		{OwnerType: models.OwnerGame, OwnerID: game.ID, Field: assets.FieldCover, URL: server.URL + "/bad"},
		{OwnerType: models.OwnerGame, OwnerID: game.ID, Field: assets.FieldIcon, URL: server.URL + "/icon"},
	})

	var stored models.Game
	require.NoError(t, db.First(&stored, "id = ?", game.ID).Error)
	assert.Empty(t, stored.Cover)
	assert.NotEmpty(t, stored.Icon)
}

func TestFlushRejectsFieldInvalidForOwner(t *testing.T) {
	flusher, db, _ := newTestFlusher(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bytes"))
	}))
	defer server.Close()

	company := models.Company{ID: uuid.New(), Name: "Studio"}
	require.NoError(t, db.Create(&company).Error)

	// A company has no cover column; the task must fail quietly.
	flusher.Flush(context.Background(), []assets.Task{{
		OwnerType: models.OwnerCompany,
		OwnerID:   company.ID,
		Field:     assets.FieldCover,
		URL:       server.URL,
	}})

	var stored models.Company
	require.NoError(t, db.First(&stored, "id = ?", company.ID).Error)
	assert.Empty(t, stored.Logo)
}

func TestFlushUnreachableURL(t *testing.T) {
	flusher, db, _ := newTestFlusher(t)

	person := models.Person{ID: uuid.New(), Name: "Alice"}
	require.NoError(t, db.Create(&person).Error)

	// Must not panic or error; the failure is logged and dropped.
	flusher.Flush(context.Background(), []assets.Task{{
		OwnerType: models.OwnerPerson,
		OwnerID:   person.ID,
		Field:     assets.FieldPhoto,
		URL:       "http://127.0.0.1:1/nothing",
	}})

	var stored models.Person
	require.NoError(t, db.First(&stored, "id = ?", person.ID).Error)
	assert.Empty(t, stored.Photo)
}
