package ingest

import (
	"context"

	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tagSidePosition is what the tag-scoped ordering column is always written as.
// Ordering is only ever consumed from the entity side.
const tagSidePosition = 0

// attachTags ingests an entity's tag list in input order. A failing tag is
// logged and skipped; it never aborts the owning entity's ingestion.
func (s *Service) attachTags(ctx context.Context, tx *gorm.DB, owner models.OwnerType, ownerID uuid.UUID, tags []TagMeta) {
	for i, t := range tags {
		if err := s.attachTag(ctx, tx, owner, ownerID, t, i); err != nil {
			s.log.Warn("tag ingestion failed, skipping",
				"owner_type", owner,
				"owner_id", ownerID,
				"tag", t.Name,
				"error", err,
			)
		}
	}
}

func (s *Service) attachTag(ctx context.Context, tx *gorm.DB, owner models.OwnerType, ownerID uuid.UUID, t TagMeta, position int) error {
	if err := requireName(t.Name, "tag"); err != nil {
		return err
	}

	// Insert-or-ignore by name. On conflict the existing tag keeps its NSFW
	// flag and this insert reports nothing, so the id must be re-looked-up.
	tag := models.Tag{ID: uuid.New(), Name: t.Name, NSFW: t.NSFW}
	if err := s.store.InsertIfAbsent(ctx, tx, &tag); err != nil {
		return err
	}
	stored, err := s.store.FindTagByName(ctx, tx, t.Name)
	if err != nil {
		return err
	}

	link := models.TagLink{
		ID:            uuid.New(),
		OwnerType:     owner,
		OwnerID:       ownerID,
		TagID:         stored.ID,
		IsSpoiler:     t.IsSpoiler,
		Note:          t.Note,
		OwnerPosition: position,
		TagPosition:   tagSidePosition,
	}
	return s.store.InsertIfAbsent(ctx, tx, &link)
}
