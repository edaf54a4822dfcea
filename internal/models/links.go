package models

import (
	"time"

	"github.com/google/uuid"
)

// GamePersonRelation defines how a person is credited on a game.
type GamePersonRelation string

const (
	GamePersonDirector     GamePersonRelation = "director"
	GamePersonScenario     GamePersonRelation = "scenario"
	GamePersonIllustration GamePersonRelation = "illustration"
	GamePersonMusic        GamePersonRelation = "music"
	GamePersonProgrammer   GamePersonRelation = "programmer"
	GamePersonActor        GamePersonRelation = "actor"
	GamePersonOther        GamePersonRelation = "other"
)

// CharacterPersonRelation defines how a person is credited on a character.
// It carries the game-level vocabulary plus "designer", which only exists here.
type CharacterPersonRelation string

const (
	CharacterPersonDirector     CharacterPersonRelation = "director"
	CharacterPersonScenario     CharacterPersonRelation = "scenario"
	CharacterPersonIllustration CharacterPersonRelation = "illustration"
	CharacterPersonMusic        CharacterPersonRelation = "music"
	CharacterPersonProgrammer   CharacterPersonRelation = "programmer"
	CharacterPersonActor        CharacterPersonRelation = "actor"
	CharacterPersonDesigner     CharacterPersonRelation = "designer"
	CharacterPersonOther        CharacterPersonRelation = "other"
)

// GameRelation maps a character-level credit onto the game-level vocabulary.
// "designer" has no game-level counterpart and lands in the "other" bucket.
func (r CharacterPersonRelation) GameRelation() GamePersonRelation {
	switch r {
	case CharacterPersonDirector, CharacterPersonScenario, CharacterPersonIllustration,
		CharacterPersonMusic, CharacterPersonProgrammer, CharacterPersonActor:
		return GamePersonRelation(r)
	default:
		return GamePersonOther
	}
}

// GameCompanyRelation defines how a company is credited on a game.
type GameCompanyRelation string

const (
	GameCompanyDeveloper   GameCompanyRelation = "developer"
	GameCompanyPublisher   GameCompanyRelation = "publisher"
	GameCompanyDistributor GameCompanyRelation = "distributor"
	GameCompanyOther       GameCompanyRelation = "other"
)

// GameCharacterRelation defines a character's role in a game.
type GameCharacterRelation string

const (
	GameCharacterMain       GameCharacterRelation = "main"
	GameCharacterSupporting GameCharacterRelation = "supporting"
	GameCharacterOther      GameCharacterRelation = "other"
)

// GamePersonLink is the game↔person junction row. Position is the link's index
// among links of the same Type on the same game, counted in input order.
type GamePersonLink struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	GameID    uuid.UUID          `gorm:"type:uuid;not null;index:idx_game_person_links_game"`
	PersonID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Type      GamePersonRelation `gorm:"size:32;not null"`
	IsSpoiler bool               `gorm:"not null;default:false"`
	Note      string
	Position  int `gorm:"not null"`
	CreatedAt time.Time
}

// GameCompanyLink is the game↔company junction row.
type GameCompanyLink struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	GameID    uuid.UUID           `gorm:"type:uuid;not null;index:idx_game_company_links_game"`
	CompanyID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Type      GameCompanyRelation `gorm:"size:32;not null"`
	IsSpoiler bool                `gorm:"not null;default:false"`
	Note      string
	Position  int `gorm:"not null"`
	CreatedAt time.Time
}

// GameCharacterLink is the game↔character junction row.
type GameCharacterLink struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey"`
	GameID      uuid.UUID             `gorm:"type:uuid;not null;index:idx_game_character_links_game"`
	CharacterID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Type        GameCharacterRelation `gorm:"size:32;not null"`
	IsSpoiler   bool                  `gorm:"not null;default:false"`
	Note        string
	Position    int `gorm:"not null"`
	CreatedAt   time.Time
}

// CharacterPersonLink is the character↔person junction row. Position is scoped
// to (character, type), independent of any game-level crediting of the same person.
type CharacterPersonLink struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	CharacterID uuid.UUID               `gorm:"type:uuid;not null;index:idx_character_person_links_character"`
	PersonID    uuid.UUID               `gorm:"type:uuid;not null;index"`
	Type        CharacterPersonRelation `gorm:"size:32;not null"`
	IsSpoiler   bool                    `gorm:"not null;default:false"`
	Note        string
	Position    int `gorm:"not null"`
	CreatedAt   time.Time
}
