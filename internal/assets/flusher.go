package assets

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Field names an image-bearing column on an entity row.
type Field string

const (
	FieldCover    Field = "cover"
	FieldBackdrop Field = "backdrop"
	FieldLogo     Field = "logo"
	FieldIcon     Field = "icon"
	FieldPhoto    Field = "photo"
)

// Task is a deferred instruction to fetch a URL and store the result into one
// entity's image column. Tasks are collected during the ingestion transaction
// and executed only after it has committed.
type Task struct {
	OwnerType models.OwnerType
	OwnerID   uuid.UUID
	Field     Field
	URL       string
}

// Flusher materializes pending asset tasks. Every task is best-effort: a
// failure is logged and never affects sibling tasks or the committed rows.
type Flusher struct {
	db     *gorm.DB
	client *http.Client
	dir    string
	log    *logger.Logger
}

func NewFlusher(db *gorm.DB, mediaDir string, baseLog *logger.Logger) *Flusher {
	return &Flusher{
		db:     db,
		client: &http.Client{Timeout: 60 * time.Second},
		dir:    mediaDir,
		log:    baseLog.With("component", "assets"),
	}
}

// Flush runs all tasks concurrently and returns once every task has finished.
// It never returns an error; failed tasks are logged and dropped.
func (f *Flusher) Flush(ctx context.Context, tasks []Task) {
	if len(tasks) == 0 {
		return
	}

	// A plain group, not WithContext: one failed fetch must not cancel siblings.
	var g errgroup.Group
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			if err := f.materialize(ctx, t); err != nil {
				f.log.Warn("asset materialization failed",
					"owner_type", t.OwnerType,
					"owner_id", t.OwnerID,
					"field", t.Field,
					"url", t.URL,
					"error", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (f *Flusher) materialize(ctx context.Context, t Task) error {
	column, err := columnFor(t.OwnerType, t.Field)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	rel := filepath.Join(string(t.OwnerType), t.OwnerID.String(), string(t.Field)+fileExt(resp, t.URL))
	full := filepath.Join(f.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	out, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return f.db.WithContext(ctx).
		Table(tableFor(t.OwnerType)).
		Where("id = ?", t.OwnerID).
		Update(column, rel).Error
}

func tableFor(owner models.OwnerType) string {
	switch owner {
	case models.OwnerGame:
		return "games"
	case models.OwnerPerson:
		return "persons"
	case models.OwnerCompany:
		return "companies"
	default:
		return "characters"
	}
}

// columnFor validates that the field exists on the owner's table and returns
// the column to update.
func columnFor(owner models.OwnerType, field Field) (string, error) {
	valid := false
	switch owner {
	case models.OwnerGame:
		valid = field == FieldCover || field == FieldBackdrop || field == FieldLogo || field == FieldIcon
	case models.OwnerPerson, models.OwnerCharacter:
		valid = field == FieldPhoto
	case models.OwnerCompany:
		valid = field == FieldLogo
	}
	if !valid {
		return "", fmt.Errorf("field %q not valid for %s", field, owner)
	}
	return string(field), nil
}

// fileExt picks a file extension from the response content type, falling back
// to the URL path.
func fileExt(resp *http.Response, rawURL string) string {
	switch resp.Header.Get("Content-Type") {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			if exts, _ := mime.ExtensionsByType(mt); len(exts) > 0 {
				return exts[0]
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}
	return ""
}
