package ingest

import (
	"context"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addPersonTx upserts one person inside an open transaction. A dedup hit
// returns the stored id untouched: no field merge, no new rows beyond an
// optional collection link.
func (s *Service) addPersonTx(ctx context.Context, tx *gorm.DB, meta PersonMeta, opts AddOptions) (txResult, error) {
	if err := requireName(meta.Name, "person"); err != nil {
		return txResult{}, err
	}

	id, found, err := s.store.FindOwnerByExternalRefs(ctx, tx, models.OwnerPerson, meta.ExternalIDs)
	if err != nil {
		return txResult{}, err
	}
	if found {
		if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerPerson, id); err != nil {
			return txResult{}, err
		}
		return txResult{AddResult: AddResult{ID: id, ExistingReason: ReasonExternalID}}, nil
	}

	person := models.Person{
		ID:           uuid.New(),
		Name:         meta.Name,
		OriginalName: meta.OriginalName,
		Description:  meta.Description,
		RelatedSites: sites(meta.RelatedSites),
	}
	if err := s.store.Create(ctx, tx, &person); err != nil {
		return txResult{}, err
	}
	if err := s.insertExternalIDs(ctx, tx, models.OwnerPerson, person.ID, meta.ExternalIDs); err != nil {
		return txResult{}, err
	}
	s.attachTags(ctx, tx, models.OwnerPerson, person.ID, meta.Tags)

	res := txResult{AddResult: AddResult{ID: person.ID, IsNew: true}}
	if u, ok := firstURL(meta.PhotoURLs); ok {
		res.pending = append(res.pending, assets.Task{
			OwnerType: models.OwnerPerson,
			OwnerID:   person.ID,
			Field:     assets.FieldPhoto,
			URL:       u,
		})
	}

	if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerPerson, person.ID); err != nil {
		return txResult{}, err
	}
	return res, nil
}
