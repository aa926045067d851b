package http

import (
	"errors"
	"net/http"

	"gallerysync/internal/app"
	"gallerysync/internal/utils"
	"gallerysync/internal/validators"
	"gallerysync/models"
)

// writeError sends the JSON error body the sync client parses for its
// failure detail.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: detail}, statusCode)
}

// uploadValidationMessage maps upload validation failures onto the
// response wording the client surfaces verbatim.
func uploadValidationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyContent):
		return app.MsgEmptyContent
	case errors.Is(err, validators.ErrInvalidCreatedAt):
		return app.MsgInvalidCreatedAt
	default:
		return err.Error()
	}
}
