package ingest

import (
	"context"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// graphState is the per-call bookkeeping for one game ingestion: the identity
// map that collapses duplicate persons/characters across the input graph, and
// the per-type order counters for every link family. It lives for exactly one
// transaction and is never shared.
type graphState struct {
	persons    map[string]uuid.UUID
	characters map[string]uuid.UUID

	gamePersonOrder    map[models.GamePersonRelation]int
	gameCompanyOrder   map[models.GameCompanyRelation]int
	gameCharacterOrder map[models.GameCharacterRelation]int
	castOrder          map[castOrderKey]int
}

// castOrderKey scopes character↔person ordering to one character and relation.
type castOrderKey struct {
	characterID uuid.UUID
	relation    models.CharacterPersonRelation
}

func newGraphState() *graphState {
	return &graphState{
		persons:            make(map[string]uuid.UUID),
		characters:         make(map[string]uuid.UUID),
		gamePersonOrder:    make(map[models.GamePersonRelation]int),
		gameCompanyOrder:   make(map[models.GameCompanyRelation]int),
		gameCharacterOrder: make(map[models.GameCharacterRelation]int),
		castOrder:          make(map[castOrderKey]int),
	}
}

func (st *graphState) nextGamePerson(rel models.GamePersonRelation) int {
	pos := st.gamePersonOrder[rel]
	st.gamePersonOrder[rel]++
	return pos
}

func (st *graphState) nextGameCompany(rel models.GameCompanyRelation) int {
	pos := st.gameCompanyOrder[rel]
	st.gameCompanyOrder[rel]++
	return pos
}

func (st *graphState) nextGameCharacter(rel models.GameCharacterRelation) int {
	pos := st.gameCharacterOrder[rel]
	st.gameCharacterOrder[rel]++
	return pos
}

func (st *graphState) nextCast(characterID uuid.UUID, rel models.CharacterPersonRelation) int {
	key := castOrderKey{characterID: characterID, relation: rel}
	pos := st.castOrder[key]
	st.castOrder[key]++
	return pos
}

// addGameTx ingests a full game graph inside an open transaction.
//
// Dedup tiers, in order: local path (game only), then external IDs. A path hit
// returns without touching collections; an external-ID hit still performs the
// requested collection link. This asymmetry matches observed product behavior.
func (s *Service) addGameTx(ctx context.Context, tx *gorm.DB, meta GameMeta, opts GameOptions) (txResult, error) {
	if err := requireName(meta.Name, "game"); err != nil {
		return txResult{}, err
	}

	if opts.LocalPath != "" {
		id, found, err := s.store.FindGameByPath(ctx, tx, opts.LocalPath)
		if err != nil {
			return txResult{}, err
		}
		if found {
			return txResult{AddResult: AddResult{ID: id, ExistingReason: ReasonPath}}, nil
		}
	}

	id, found, err := s.store.FindOwnerByExternalRefs(ctx, tx, models.OwnerGame, meta.ExternalIDs)
	if err != nil {
		return txResult{}, err
	}
	if found {
		if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerGame, id); err != nil {
			return txResult{}, err
		}
		return txResult{AddResult: AddResult{ID: id, ExistingReason: ReasonExternalID}}, nil
	}

	game := models.Game{
		ID:           uuid.New(),
		Name:         meta.Name,
		OriginalName: meta.OriginalName,
		Description:  meta.Description,
		ReleaseDate:  meta.ReleaseDate,
		RelatedSites: sites(meta.RelatedSites),
		LocalPath:    opts.LocalPath,
		LauncherPath: opts.LauncherPath,
	}
	if err := s.store.Create(ctx, tx, &game); err != nil {
		return txResult{}, err
	}
	if err := s.insertExternalIDs(ctx, tx, models.OwnerGame, game.ID, meta.ExternalIDs); err != nil {
		return txResult{}, err
	}
	s.attachTags(ctx, tx, models.OwnerGame, game.ID, meta.Tags)

	res := txResult{AddResult: AddResult{ID: game.ID, IsNew: true}}
	for _, img := range []struct {
		field assets.Field
		urls  []string
	}{
		{assets.FieldCover, meta.CoverURLs},
		{assets.FieldBackdrop, meta.BackdropURLs},
		{assets.FieldLogo, meta.LogoURLs},
		{assets.FieldIcon, meta.IconURLs},
	} {
		if u, ok := firstURL(img.urls); ok {
			res.pending = append(res.pending, assets.Task{
				OwnerType: models.OwnerGame,
				OwnerID:   game.ID,
				Field:     img.field,
				URL:       u,
			})
		}
	}

	st := newGraphState()

	// Crew list: upsert each person (deduplicated across the whole graph) and
	// link it with a per-type order index.
	for _, crew := range meta.Persons {
		personID, pending, err := s.graphPerson(ctx, tx, st, crew.Person)
		if err != nil {
			return txResult{}, err
		}
		res.pending = append(res.pending, pending...)

		link := models.GamePersonLink{
			ID:        uuid.New(),
			GameID:    game.ID,
			PersonID:  personID,
			Type:      crew.Relation,
			IsSpoiler: crew.IsSpoiler,
			Note:      crew.Note,
			Position:  st.nextGamePerson(crew.Relation),
		}
		if err := s.store.Create(ctx, tx, &link); err != nil {
			return txResult{}, err
		}
	}

	for _, comp := range meta.Companies {
		r, err := s.addCompanyTx(ctx, tx, comp.Company, AddOptions{})
		if err != nil {
			return txResult{}, err
		}
		res.pending = append(res.pending, r.pending...)

		link := models.GameCompanyLink{
			ID:        uuid.New(),
			GameID:    game.ID,
			CompanyID: r.ID,
			Type:      comp.Relation,
			IsSpoiler: comp.IsSpoiler,
			Note:      comp.Note,
			Position:  st.nextGameCompany(comp.Relation),
		}
		if err := s.store.Create(ctx, tx, &link); err != nil {
			return txResult{}, err
		}
	}

	for _, cm := range meta.Characters {
		characterID, pending, err := s.graphCharacter(ctx, tx, st, cm.Character)
		if err != nil {
			return txResult{}, err
		}
		res.pending = append(res.pending, pending...)

		link := models.GameCharacterLink{
			ID:          uuid.New(),
			GameID:      game.ID,
			CharacterID: characterID,
			Type:        cm.Relation,
			IsSpoiler:   cm.IsSpoiler,
			Note:        cm.Note,
			Position:    st.nextGameCharacter(cm.Relation),
		}
		if err := s.store.Create(ctx, tx, &link); err != nil {
			return txResult{}, err
		}

		// Cast persons link twice: to the character with the relation verbatim,
		// and to the game with the relation mapped onto the game vocabulary.
		for _, cast := range cm.Cast {
			personID, pending, err := s.graphPerson(ctx, tx, st, cast.Person)
			if err != nil {
				return txResult{}, err
			}
			res.pending = append(res.pending, pending...)

			cpLink := models.CharacterPersonLink{
				ID:          uuid.New(),
				CharacterID: characterID,
				PersonID:    personID,
				Type:        cast.Relation,
				IsSpoiler:   cast.IsSpoiler,
				Note:        cast.Note,
				Position:    st.nextCast(characterID, cast.Relation),
			}
			if err := s.store.Create(ctx, tx, &cpLink); err != nil {
				return txResult{}, err
			}

			gameRel := cast.Relation.GameRelation()
			gpLink := models.GamePersonLink{
				ID:        uuid.New(),
				GameID:    game.ID,
				PersonID:  personID,
				Type:      gameRel,
				IsSpoiler: cast.IsSpoiler,
				Note:      cast.Note,
				Position:  st.nextGamePerson(gameRel),
			}
			if err := s.store.Create(ctx, tx, &gpLink); err != nil {
				return txResult{}, err
			}
		}
	}

	if err := s.linkCollection(ctx, tx, opts.CollectionID, models.OwnerGame, game.ID); err != nil {
		return txResult{}, err
	}
	return res, nil
}

// graphPerson upserts a person for the game composer, collapsing repeat
// appearances of the same logical person anywhere in the input graph onto one
// stored row. Repeat appearances yield the recorded id and no new asset tasks.
func (s *Service) graphPerson(ctx context.Context, tx *gorm.DB, st *graphState, meta PersonMeta) (uuid.UUID, []assets.Task, error) {
	key := identityKey(meta.Name, meta.OriginalName, meta.ExternalIDs)
	if id, ok := st.persons[key]; ok {
		return id, nil, nil
	}
	r, err := s.addPersonTx(ctx, tx, meta, AddOptions{})
	if err != nil {
		return uuid.Nil, nil, err
	}
	st.persons[key] = r.ID
	return r.ID, r.pending, nil
}

// graphCharacter is graphPerson's counterpart for characters.
func (s *Service) graphCharacter(ctx context.Context, tx *gorm.DB, st *graphState, meta CharacterMeta) (uuid.UUID, []assets.Task, error) {
	key := identityKey(meta.Name, meta.OriginalName, meta.ExternalIDs)
	if id, ok := st.characters[key]; ok {
		return id, nil, nil
	}
	r, err := s.addCharacterTx(ctx, tx, meta, AddOptions{})
	if err != nil {
		return uuid.Nil, nil, err
	}
	st.characters[key] = r.ID
	return r.ID, r.pending, nil
}
