package ingest

import (
	"context"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addCharacterTx upserts one character inside an open transaction. Cast persons
// are not handled here; the game composer links them so that they can be
// deduplicated across the whole input graph.
func (s *Service) addCharacterTx(ctx context.Context, tx *gorm.DB, meta CharacterMeta, opts AddOptions) (txResult, error) {
	if err := requireName(meta.Name, "character"); err != nil {
		return txResult{}, err
	}

	id, found, err := s.store.FindOwnerByExternalRefs(ctx, tx, models.OwnerCharacter, meta.ExternalIDs)
	if err != nil {
		return txResult{}, err
	}
	if found {
		if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerCharacter, id); err != nil {
			return txResult{}, err
		}
		return txResult{AddResult: AddResult{ID: id, ExistingReason: ReasonExternalID}}, nil
	}

	character := models.Character{
		ID:           uuid.New(),
		Name:         meta.Name,
		OriginalName: meta.OriginalName,
		Description:  meta.Description,
		RelatedSites: sites(meta.RelatedSites),
	}
	if err := s.store.Create(ctx, tx, &character); err != nil {
		return txResult{}, err
	}
	if err := s.insertExternalIDs(ctx, tx, models.OwnerCharacter, character.ID, meta.ExternalIDs); err != nil {
		return txResult{}, err
	}
	s.attachTags(ctx, tx, models.OwnerCharacter, character.ID, meta.Tags)

	res := txResult{AddResult: AddResult{ID: character.ID, IsNew: true}}
	if u, ok := firstURL(meta.PhotoURLs); ok {
		res.pending = append(res.pending, assets.Task{
			OwnerType: models.OwnerCharacter,
			OwnerID:   character.ID,
			Field:     assets.FieldPhoto,
			URL:       u,
		})
	}

	if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerCharacter, character.ID); err != nil {
		return txResult{}, err
	}
	return res, nil
}
