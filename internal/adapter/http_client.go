package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"gallerysync/models"
)

// HTTPClientConfig configures the resty-based cloud adapter.
type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type httpCloudAdapter struct {
	client  *resty.Client
	baseURL string

	mu    sync.RWMutex
	token string
}

// NewHTTPCloudAdapter builds a [CloudAdapter] speaking the cloud
// service's REST contract over HTTP.
func NewHTTPCloudAdapter(cfg HTTPClientConfig) CloudAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpCloudAdapter{client: cli, baseURL: baseURL, token: cfg.Token}
}

func (h *httpCloudAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCloudAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCloudAdapter) UploadItem(ctx context.Context, req UploadItemRequest) (string, error) {
	if len(req.Content) == 0 {
		return "", models.NewSyncError(models.ErrKindInvalidContent,
			fmt.Sprintf("asset %s has no readable content", req.ItemID))
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = req.ItemID
	}

	r := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(req.Content)).
		SetFormData(map[string]string{"id": req.ItemID})
	if req.CreatedAt != nil {
		r.SetFormData(map[string]string{"created_at": req.CreatedAt.Format(time.RFC3339)})
	}

	resp, err := r.Post("/api/gallery/upload")
	if err != nil {
		return "", networkError("upload request", err)
	}
	if err = mapHTTPError(resp, models.ErrKindUploadFailed); err != nil {
		return "", err
	}

	var body models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &body); err == nil && body.URL != "" {
		return body.URL, nil
	}

	// server gave a 2xx without a parseable URL; derive the canonical one
	return h.defaultLocation(req.ItemID), nil
}

func (h *httpCloudAdapter) ListItems(ctx context.Context) ([]models.RemoteItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/gallery/items")
	if err != nil {
		return nil, networkError("listing request", err)
	}
	if err = mapHTTPError(resp, models.ErrKindDownloadFailed); err != nil {
		return nil, err
	}

	var listing models.ListingResponse
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, models.NewSyncError(models.ErrKindDownloadFailed,
			fmt.Sprintf("decode listing response: %v", err))
	}

	return listing.Items, nil
}

func (h *httpCloudAdapter) DeleteItem(ctx context.Context, cloudURL string) error {
	if cloudURL == "" {
		return models.NewSyncError(models.ErrKindInvalidAsset, "delete requires a cloud location")
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteRequest{CloudURL: cloudURL}).
		Post("/api/gallery/delete")
	if err != nil {
		return networkError("delete request", err)
	}

	return mapHTTPError(resp, models.ErrKindDeleteFailed)
}

// defaultLocation is the deterministic fallback remote location for an
// item whose upload response carried no URL.
func (h *httpCloudAdapter) defaultLocation(itemID string) string {
	return h.baseURL + "/files/" + itemID
}

func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func networkError(op string, err error) *models.SyncError {
	return models.NewSyncError(models.ErrKindNetwork, fmt.Sprintf("%s: %v", op, err))
}

// mapHTTPError converts a non-2xx response into a SyncError of the
// given kind, preferring the server-supplied JSON detail over the raw
// body text.
func mapHTTPError(resp *resty.Response, kind models.ErrorKind) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		detail = body.Error
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	return models.NewSyncError(kind, fmt.Sprintf("http %d: %s", resp.StatusCode(), detail))
}
