package handler

import "gamevault/backend/internal/ingest"

// IngestService is wired in main before the router starts serving.
var IngestService *ingest.Service

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}
