package ingest

import (
	"sort"
	"strings"

	"gamevault/backend/internal/models"
)

// identityKey derives the graph-local identity key used to collapse duplicate
// entities within a single ingestion call. It is never matched against the
// store. Priority: external IDs (lower-cased "source:id" pairs, sorted), then
// original name, then name.
func identityKey(name, originalName string, refs []models.ExternalRef) string {
	if len(refs) > 0 {
		pairs := make([]string, 0, len(refs))
		for _, r := range refs {
			pairs = append(pairs, strings.ToLower(r.Source+":"+r.ID))
		}
		sort.Strings(pairs)
		return strings.Join(pairs, "|")
	}
	if originalName != "" {
		return strings.ToLower(originalName)
	}
	return strings.ToLower(name)
}
