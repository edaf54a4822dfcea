package ingest

import (
	"context"
	"strings"
	"sync"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/hub"
	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the entity ingestion engine. Each public Add call owns exactly one
// transaction: identity resolution, row inserts and link rows all happen inside
// it, and the collected asset tasks are flushed asynchronously after commit.
type Service struct {
	db      *gorm.DB
	store   Store
	flusher *assets.Flusher
	events  *hub.Hub
	log     *logger.Logger

	flushWG sync.WaitGroup
}

// Store is the row-level contract the engine consumes. *store.Store satisfies
// it; tests may substitute their own.
type Store interface {
	Create(ctx context.Context, tx *gorm.DB, value any) error
	InsertIfAbsent(ctx context.Context, tx *gorm.DB, value any) error
	FindOwnerByExternalRefs(ctx context.Context, tx *gorm.DB, owner models.OwnerType, refs []models.ExternalRef) (uuid.UUID, bool, error)
	FindGameByPath(ctx context.Context, tx *gorm.DB, path string) (uuid.UUID, bool, error)
	FindTagByName(ctx context.Context, tx *gorm.DB, name string) (*models.Tag, error)
	AddToCollection(ctx context.Context, tx *gorm.DB, collectionID uuid.UUID, owner models.OwnerType, ownerID uuid.UUID) error
}

// NewService wires the engine. events may be nil when no one listens.
func NewService(db *gorm.DB, st Store, flusher *assets.Flusher, events *hub.Hub, baseLog *logger.Logger) *Service {
	return &Service{
		db:      db,
		store:   st,
		flusher: flusher,
		events:  events,
		log:     baseLog.With("component", "ingest"),
	}
}

// txResult is the internal outcome of an add step running inside an open
// transaction: the public result plus the asset tasks collected so far.
type txResult struct {
	AddResult
	pending []assets.Task
}

// AddPerson ingests a single person inside a fresh transaction.
func (s *Service) AddPerson(ctx context.Context, meta PersonMeta, opts AddOptions) (AddResult, error) {
	var res txResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.addPersonTx(ctx, tx, meta, opts)
		return err
	})
	if err != nil {
		return AddResult{}, err
	}
	s.finish("person.added", meta.Name, res)
	return res.AddResult, nil
}

// AddCompany ingests a single company inside a fresh transaction.
func (s *Service) AddCompany(ctx context.Context, meta CompanyMeta, opts AddOptions) (AddResult, error) {
	var res txResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.addCompanyTx(ctx, tx, meta, opts)
		return err
	})
	if err != nil {
		return AddResult{}, err
	}
	s.finish("company.added", meta.Name, res)
	return res.AddResult, nil
}

// AddCharacter ingests a single character inside a fresh transaction.
func (s *Service) AddCharacter(ctx context.Context, meta CharacterMeta, opts AddOptions) (AddResult, error) {
	var res txResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.addCharacterTx(ctx, tx, meta, opts)
		return err
	})
	if err != nil {
		return AddResult{}, err
	}
	s.finish("character.added", meta.Name, res)
	return res.AddResult, nil
}

// AddGame ingests a full game graph inside a fresh transaction.
func (s *Service) AddGame(ctx context.Context, meta GameMeta, opts GameOptions) (AddResult, error) {
	var res txResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.addGameTx(ctx, tx, meta, opts)
		return err
	})
	if err != nil {
		return AddResult{}, err
	}
	s.finish("game.added", meta.Name, res)
	return res.AddResult, nil
}

// WaitAssets blocks until every scheduled asset flush has finished. The public
// add calls never wait themselves; callers that need determinism (shutdown,
// tests) can.
func (s *Service) WaitAssets() {
	s.flushWG.Wait()
}

// finish runs the post-commit side of a successful add: asset fan-out and the
// library-changed notification. The flush deliberately detaches from the
// request context; an aborted request must not abort committed asset work.
func (s *Service) finish(event, name string, res txResult) {
	if len(res.pending) > 0 {
		tasks := res.pending
		s.flushWG.Add(1)
		go func() {
			defer s.flushWG.Done()
			s.flusher.Flush(context.Background(), tasks)
		}()
	}
	// Dedup hits change nothing in the library, so subscribers hear nothing.
	if s.events != nil && res.IsNew {
		s.events.Broadcast(hub.TopicLibrary, hub.Event{Type: event, Payload: map[string]any{
			"id":   res.ID,
			"name": name,
		}})
	}
}

// insertExternalIDs writes the entity's external-ID rows in input order,
// silently tolerating (source, id) pairs already present.
func (s *Service) insertExternalIDs(ctx context.Context, tx *gorm.DB, owner models.OwnerType, ownerID uuid.UUID, refs []models.ExternalRef) error {
	for i, r := range refs {
		row := models.ExternalID{
			ID:        uuid.New(),
			OwnerType: owner,
			OwnerID:   ownerID,
			Source:    r.Source,
			SourceID:  r.ID,
			Position:  i,
		}
		if err := s.store.InsertIfAbsent(ctx, tx, &row); err != nil {
			return err
		}
	}
	return nil
}

// linkCollection adds the entity to the requested collection, if any.
func (s *Service) linkCollection(ctx context.Context, tx *gorm.DB, collectionID *uuid.UUID, owner models.OwnerType, ownerID uuid.UUID) error {
	if collectionID == nil {
		return nil
	}
	return s.store.AddToCollection(ctx, tx, *collectionID, owner, ownerID)
}

// firstURL applies the first-candidate-only policy for image fields.
func firstURL(urls []string) (string, bool) {
	if len(urls) == 0 || urls[0] == "" {
		return "", false
	}
	return urls[0], true
}

// sites normalizes an absent related-sites list to the schema default.
func sites(in []models.RelatedSite) []models.RelatedSite {
	if in == nil {
		return []models.RelatedSite{}
	}
	return in
}

func requireName(name, what string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Entity: what}
	}
	return nil
}

// ValidationError reports a structurally invalid metadata input. It aborts the
// whole ingestion like any other fatal error.
type ValidationError struct {
	Entity string
	Field  string
}

func (e *ValidationError) Error() string {
	return e.Entity + ": " + e.Field + " is required"
}
