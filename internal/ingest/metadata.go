package ingest

import (
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
)

// The Meta types mirror the metadata graph a scraper provider hands us.
// Slices are processed in input order; that order is what the stored position
// columns preserve.

// TagMeta is one tag attachment in an entity's tag list.
type TagMeta struct {
	Name      string `json:"name"`
	NSFW      bool   `json:"nsfw"`
	IsSpoiler bool   `json:"is_spoiler"`
	Note      string `json:"note"`
}

// PersonMeta describes a person to ingest.
type PersonMeta struct {
	Name         string               `json:"name"`
	OriginalName string               `json:"original_name"`
	Description  string               `json:"description"`
	RelatedSites []models.RelatedSite `json:"related_sites"`
	ExternalIDs  []models.ExternalRef `json:"external_ids"`
	Tags         []TagMeta            `json:"tags"`
	PhotoURLs    []string             `json:"photo_urls"`
}

// CompanyMeta describes a company to ingest.
type CompanyMeta struct {
	Name         string               `json:"name"`
	OriginalName string               `json:"original_name"`
	Description  string               `json:"description"`
	RelatedSites []models.RelatedSite `json:"related_sites"`
	ExternalIDs  []models.ExternalRef `json:"external_ids"`
	Tags         []TagMeta            `json:"tags"`
	LogoURLs     []string             `json:"logo_urls"`
}

// CharacterMeta describes a character to ingest. Cast persons are not part of
// the single-entity payload; they ride on GameCharacterMeta.
type CharacterMeta struct {
	Name         string               `json:"name"`
	OriginalName string               `json:"original_name"`
	Description  string               `json:"description"`
	RelatedSites []models.RelatedSite `json:"related_sites"`
	ExternalIDs  []models.ExternalRef `json:"external_ids"`
	Tags         []TagMeta            `json:"tags"`
	PhotoURLs    []string             `json:"photo_urls"`
}

// GamePersonMeta is one entry in a game's crew list.
type GamePersonMeta struct {
	Person    PersonMeta                `json:"person"`
	Relation  models.GamePersonRelation `json:"relation"`
	IsSpoiler bool                      `json:"is_spoiler"`
	Note      string                    `json:"note"`
}

// GameCompanyMeta is one entry in a game's company list.
type GameCompanyMeta struct {
	Company   CompanyMeta                `json:"company"`
	Relation  models.GameCompanyRelation `json:"relation"`
	IsSpoiler bool                       `json:"is_spoiler"`
	Note      string                     `json:"note"`
}

// CharacterPersonMeta is one entry in a character's cast list.
type CharacterPersonMeta struct {
	Person    PersonMeta                     `json:"person"`
	Relation  models.CharacterPersonRelation `json:"relation"`
	IsSpoiler bool                           `json:"is_spoiler"`
	Note      string                         `json:"note"`
}

// GameCharacterMeta is one entry in a game's character list, optionally
// carrying the character's own cast.
type GameCharacterMeta struct {
	Character CharacterMeta                `json:"character"`
	Cast      []CharacterPersonMeta        `json:"cast"`
	Relation  models.GameCharacterRelation `json:"relation"`
	IsSpoiler bool                         `json:"is_spoiler"`
	Note      string                       `json:"note"`
}

// GameMeta describes a full game input graph.
type GameMeta struct {
	Name         string               `json:"name"`
	OriginalName string               `json:"original_name"`
	Description  string               `json:"description"`
	ReleaseDate  string               `json:"release_date"`
	RelatedSites []models.RelatedSite `json:"related_sites"`
	ExternalIDs  []models.ExternalRef `json:"external_ids"`
	Tags         []TagMeta            `json:"tags"`

	CoverURLs    []string `json:"cover_urls"`
	BackdropURLs []string `json:"backdrop_urls"`
	LogoURLs     []string `json:"logo_urls"`
	IconURLs     []string `json:"icon_urls"`

	Persons    []GamePersonMeta    `json:"persons"`
	Companies  []GameCompanyMeta   `json:"companies"`
	Characters []GameCharacterMeta `json:"characters"`
}

// AddOptions applies to the single-entity add operations.
type AddOptions struct {
	CollectionID *uuid.UUID `json:"collection_id"`
}

// GameOptions applies to AddGame only.
type GameOptions struct {
	CollectionID *uuid.UUID `json:"collection_id"`
	LocalPath    string     `json:"local_path"`
	LauncherPath string     `json:"launcher_path"`
}

// ExistingReason reports which dedup tier resolved an existing entity.
type ExistingReason string

const (
	ReasonExternalID ExistingReason = "externalId"
	ReasonPath       ExistingReason = "path"
)

// AddResult is the public outcome of an add operation. ExistingReason is empty
// when IsNew is true.
type AddResult struct {
	ID             uuid.UUID      `json:"id"`
	IsNew          bool           `json:"is_new"`
	ExistingReason ExistingReason `json:"existing_reason,omitempty"`
}
