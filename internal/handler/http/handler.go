// Package http implements the development cloud service the gallery
// client syncs against: multipart uploads, a listing endpoint, deletes
// by remote location, and direct file serving.
package http

import (
	"gallerysync/internal/logger"
	"gallerysync/internal/store"
	"gallerysync/internal/utils"
	"gallerysync/internal/validators"
)

type Handler struct {
	objects  *store.ObjectStore
	baseURL  string
	ids      *utils.UUIDGenerator
	validate validators.Validator

	logger *logger.Logger
}

// NewHandler builds the cloud stub's HTTP handler. baseURL is the
// externally visible address used when assigning remote locations to
// uploaded objects.
func NewHandler(objects *store.ObjectStore, baseURL string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		objects:  objects,
		baseURL:  baseURL,
		ids:      utils.NewUUIDGenerator(),
		validate: validators.NewGalleryValidator(),
		logger:   logger,
	}
}
