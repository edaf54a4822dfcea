package store_test

import (
	"context"
	"testing"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return store.New(db, logger.NewNop()), db
}

func TestInsertIfAbsentTolerateConflict(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	owner := uuid.New()
	row := models.ExternalID{
		ID:        uuid.New(),
		OwnerType: models.OwnerPerson,
		OwnerID:   owner,
		Source:    "steam",
		SourceID:  "1",
	}
	require.NoError(t, st.InsertIfAbsent(ctx, nil, &row))

	dup := models.ExternalID{
		ID:        uuid.New(),
		OwnerType: models.OwnerPerson,
		OwnerID:   uuid.New(),
		Source:    "steam",
		SourceID:  "1",
	}
	require.NoError(t, st.InsertIfAbsent(ctx, nil, &dup), "conflict must not surface as an error")

	var count int64
	require.NoError(t, db.Model(&models.ExternalID{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindOwnerByExternalRefsAnyMatch(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	owner := uuid.New()
	require.NoError(t, st.InsertIfAbsent(ctx, nil, &models.ExternalID{
		ID:        uuid.New(),
		OwnerType: models.OwnerPerson,
		OwnerID:   owner,
		Source:    "vndb",
		SourceID:  "s42",
	}))

	// One unknown ref plus one known ref still resolves.
	id, found, err := st.FindOwnerByExternalRefs(ctx, nil, models.OwnerPerson, []models.ExternalRef{
		{Source: "steam", ID: "nope"},
		{Source: "vndb", ID: "s42"},
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, owner, id)
}

func TestFindOwnerByExternalRefsScopedToType(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertIfAbsent(ctx, nil, &models.ExternalID{
		ID:        uuid.New(),
		OwnerType: models.OwnerGame,
		OwnerID:   uuid.New(),
		Source:    "steam",
		SourceID:  "1",
	}))

	_, found, err := st.FindOwnerByExternalRefs(ctx, nil, models.OwnerPerson, []models.ExternalRef{{Source: "steam", ID: "1"}})
	require.NoError(t, err)
	assert.False(t, found, "a game's external ID must not match a person lookup")
}

func TestFindOwnerByExternalRefsCaseSensitive(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertIfAbsent(ctx, nil, &models.ExternalID{
		ID:        uuid.New(),
		OwnerType: models.OwnerPerson,
		OwnerID:   uuid.New(),
		Source:    "steam",
		SourceID:  "AbC",
	}))

	_, found, err := st.FindOwnerByExternalRefs(ctx, nil, models.OwnerPerson, []models.ExternalRef{{Source: "steam", ID: "abc"}})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindOwnerByExternalRefsEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	_, found, err := st.FindOwnerByExternalRefs(context.Background(), nil, models.OwnerPerson, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindGameByPath(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	game := models.Game{ID: uuid.New(), Name: "Clair", LocalPath: "/games/clair"}
	require.NoError(t, db.Create(&game).Error)

	id, found, err := st.FindGameByPath(ctx, nil, "/games/clair")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, game.ID, id)

	_, found, err = st.FindGameByPath(ctx, nil, "/games/other")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindTagByName(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	tag := models.Tag{ID: uuid.New(), Name: "rpg"}
	require.NoError(t, db.Create(&tag).Error)

	stored, err := st.FindTagByName(ctx, nil, "rpg")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, stored.ID)

	_, err = st.FindTagByName(ctx, nil, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddToCollectionIdempotent(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	colID := uuid.New()
	ownerID := uuid.New()
	require.NoError(t, st.AddToCollection(ctx, nil, colID, models.OwnerGame, ownerID))
	require.NoError(t, st.AddToCollection(ctx, nil, colID, models.OwnerGame, ownerID))

	var count int64
	require.NoError(t, db.Model(&models.CollectionLink{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
