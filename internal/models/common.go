package models

// OwnerType discriminates which entity table a polymorphic row (external ID,
// tag link, collection link, asset task) points at.
type OwnerType string

const (
	OwnerGame      OwnerType = "game"
	OwnerPerson    OwnerType = "person"
	OwnerCompany   OwnerType = "company"
	OwnerCharacter OwnerType = "character"
)

// ExternalRef is a scraper-supplied identifier in a third-party catalog,
// e.g. {steam, 1262350}. Matching is case-sensitive on both parts.
type ExternalRef struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

// RelatedSite is a labeled link attached to an entity, stored as JSON on the
// entity row.
type RelatedSite struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
