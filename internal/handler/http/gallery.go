// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"gallerysync/internal/app"
	"gallerysync/internal/logger"
	"gallerysync/internal/store"
	"gallerysync/internal/utils"
	"gallerysync/models"
)

const maxUploadBytes = 256 << 20

func (h *Handler) uploadItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Str("func", "*Handler.uploadItem").Msg("invalid multipart body")
		writeError(w, app.MsgInvalidMultipartBody, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadItem").Msg("missing file field")
		writeError(w, app.MsgMissingFileField, http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadItem").Msg("error reading uploaded content")
		writeError(w, app.MsgErrorReadingContent, http.StatusInternalServerError)
		return
	}

	submission := models.UploadSubmission{
		ID:        r.FormValue("id"),
		FileName:  header.Filename,
		Content:   content,
		CreatedAt: r.FormValue("created_at"),
	}
	if err = h.validate.Validate(r.Context(), submission); err != nil {
		writeError(w, uploadValidationMessage(err), http.StatusBadRequest)
		return
	}

	if submission.ID == "" {
		submission.ID = h.ids.Generate()
	}

	var createdAt *time.Time
	if submission.CreatedAt != "" {
		at, err := time.Parse(time.RFC3339, submission.CreatedAt)
		if err != nil {
			writeError(w, app.MsgInvalidCreatedAt, http.StatusBadRequest)
			return
		}
		createdAt = &at
	}

	obj := store.StoredObject{
		ID:          submission.ID,
		FileName:    submission.FileName,
		ContentType: contentTypeFor(submission.FileName),
		Content:     submission.Content,
		CreatedAt:   createdAt,
		URL:         h.baseURL + "/files/" + submission.ID,
	}
	h.objects.Put(obj)

	log.Info().Str("id", submission.ID).Int("size", len(submission.Content)).Msg("object stored")
	utils.WriteJSON(w, models.UploadResponse{URL: obj.URL}, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items := make([]models.RemoteItem, 0, h.objects.Len())
	for _, obj := range h.objects.List() {
		items = append(items, models.RemoteItem{
			ID:          obj.ID,
			URL:         obj.URL,
			ContentType: obj.ContentType,
			Size:        int64(len(obj.Content)),
			CreatedAt:   obj.CreatedAt,
		})
	}

	utils.WriteJSON(w, models.ListingResponse{Items: items, Length: len(items)}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteItem").Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}
	if err := h.validate.Validate(r.Context(), req); err != nil {
		writeError(w, app.MsgMissingCloudURL, http.StatusBadRequest)
		return
	}

	if !h.objects.DeleteByURL(req.CloudURL) {
		writeError(w, app.MsgObjectNotFound, http.StatusNotFound)
		return
	}

	log.Info().Str("url", req.CloudURL).Msg("object deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	obj, ok := h.objects.Get(id)
	if !ok {
		writeError(w, app.MsgObjectNotFound, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", obj.ContentType)
	w.Write(obj.Content)
}

func contentTypeFor(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
