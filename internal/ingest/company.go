package ingest

import (
	"context"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addCompanyTx upserts one company inside an open transaction.
func (s *Service) addCompanyTx(ctx context.Context, tx *gorm.DB, meta CompanyMeta, opts AddOptions) (txResult, error) {
	if err := requireName(meta.Name, "company"); err != nil {
		return txResult{}, err
	}

	id, found, err := s.store.FindOwnerByExternalRefs(ctx, tx, models.OwnerCompany, meta.ExternalIDs)
	if err != nil {
		return txResult{}, err
	}
	if found {
		if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerCompany, id); err != nil {
			return txResult{}, err
		}
		return txResult{AddResult: AddResult{ID: id, ExistingReason: ReasonExternalID}}, nil
	}

	company := models.Company{
		ID:           uuid.New(),
		Name:         meta.Name,
		OriginalName: meta.OriginalName,
		Description:  meta.Description,
		RelatedSites: sites(meta.RelatedSites),
	}
	if err := s.store.Create(ctx, tx, &company); err != nil {
		return txResult{}, err
	}
	if err := s.insertExternalIDs(ctx, tx, models.OwnerCompany, company.ID, meta.ExternalIDs); err != nil {
		return txResult{}, err
	}
	s.attachTags(ctx, tx, models.OwnerCompany, company.ID, meta.Tags)

	res := txResult{AddResult: AddResult{ID: company.ID, IsNew: true}}
	if u, ok := firstURL(meta.LogoURLs); ok {
		res.pending = append(res.pending, assets.Task{
			OwnerType: models.OwnerCompany,
			OwnerID:   company.ID,
			Field:     assets.FieldLogo,
			URL:       u,
		})
	}

	if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerCompany, company.ID); err != nil {
		return txResult{}, err
	}
	return res, nil
}
