package store

import (
	"context"
	"errors"
	"strings"

	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store exposes the row-level operations the ingestion engine is built on.
// Every method accepts an optional open transaction; passing nil falls back to
// the store's own connection.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) *Store {
	return &Store{db: db, log: baseLog.With("component", "store")}
}

func (s *Store) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// Create inserts a row; any failure is structural and propagates to the caller.
func (s *Store) Create(ctx context.Context, tx *gorm.DB, value any) error {
	return s.conn(tx).WithContext(ctx).Create(value).Error
}

// InsertIfAbsent inserts a row, treating unique-constraint collisions as
// "already satisfied". It reports no error and no indication of whether the row
// was created or already present; callers that need the stored row (e.g. for
// its id) must look it up afterwards.
func (s *Store) InsertIfAbsent(ctx context.Context, tx *gorm.DB, value any) error {
	return s.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(value).Error
}

// FindOwnerByExternalRefs returns the id of an entity of the given type owning
// at least one external ID matching any of refs (case-sensitive, exact). The
// second return value is false when nothing matches.
func (s *Store) FindOwnerByExternalRefs(ctx context.Context, tx *gorm.DB, owner models.OwnerType, refs []models.ExternalRef) (uuid.UUID, bool, error) {
	if len(refs) == 0 {
		return uuid.Nil, false, nil
	}

	conds := make([]string, 0, len(refs))
	args := make([]any, 0, len(refs)*2)
	for _, r := range refs {
		conds = append(conds, "(source = ? AND source_id = ?)")
		args = append(args, r.Source, r.ID)
	}

	var row models.ExternalID
	err := s.conn(tx).WithContext(ctx).
		Where("owner_type = ?", owner).
		Where(strings.Join(conds, " OR "), args...).
		Order("position").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return row.OwnerID, true, nil
}

// FindGameByPath returns the id of the game associated with the exact local
// path, if any.
func (s *Store) FindGameByPath(ctx context.Context, tx *gorm.DB, path string) (uuid.UUID, bool, error) {
	var game models.Game
	err := s.conn(tx).WithContext(ctx).
		Where("local_path = ?", path).
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return game.ID, true, nil
}

// FindTagByName looks a tag up by its unique name.
func (s *Store) FindTagByName(ctx context.Context, tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.conn(tx).WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// AddToCollection inserts a collection-membership row; adding an existing
// member is a no-op.
func (s *Store) AddToCollection(ctx context.Context, tx *gorm.DB, collectionID uuid.UUID, owner models.OwnerType, ownerID uuid.UUID) error {
	link := models.CollectionLink{
		ID:           uuid.New(),
		CollectionID: collectionID,
		OwnerType:    owner,
		OwnerID:      ownerID,
	}
	return s.InsertIfAbsent(ctx, tx, &link)
}
